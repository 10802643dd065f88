// Package entity defines the domain models for the compare feature.
package entity

import (
	"time"

	"lq45_backend/internal/shared/timeseries"
)

// PeerSection holds one ticker's normalized series measured against the
// mean of all other selected tickers.
type PeerSection struct {
	Ticker      string
	Values      []float64 // the ticker's own normalized values
	PeerAverage []float64 // mean of every other ticker at each date
	Delta       []float64 // Values - PeerAverage
}

// Comparison is the full result of one comparison pass: aligned normalized
// series, the best/worst ranking and per-ticker peer sections. All slices
// share the Dates axis.
type Comparison struct {
	Period     string
	Dates      []time.Time
	Tickers    []string // alphabetical
	Normalized map[string][]float64
	Best       timeseries.RankEntry
	Worst      timeseries.RankEntry
	Peers      []PeerSection // empty when fewer than two tickers are selected
	Notice     string        // set when the peer comparison was skipped
}
