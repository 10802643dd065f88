// Package entity defines the domain models for the rawdata feature.
package entity

import "time"

// Row is one dated OHLC record with trailing returns. Return1Month and
// Return1Year are Undefined (NaN) while too little history exists; check
// timeseries.Defined before using them.
type Row struct {
	Date         time.Time
	Open         float64
	High         float64
	Low          float64
	Close        float64
	Volume       int64
	Return1Month float64
	Return1Year  float64
}

// RawTable is the tail of a symbol's full price history with returns.
type RawTable struct {
	Symbol string
	Rows   []Row
}
