// Package entity defines the domain models for the quotes feature.
package entity

import "time"

// Bar represents one daily OHLC observation for a ticker.
type Bar struct {
	Symbol string    // Ticker symbol (e.g., "BBCA.JK")
	Time   time.Time // Trading session date
	Open   float64   // Opening price
	High   float64   // Highest price during the session
	Low    float64   // Lowest price during the session
	Close  float64   // Closing price
	Volume int64     // Trading volume
}
