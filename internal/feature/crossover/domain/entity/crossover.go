// Package entity defines the domain models for the crossover feature.
package entity

import "time"

// Point is one dated observation of the crossover analysis. ShortMA and
// LongMA are Undefined (NaN) while the trailing window has too little
// history; check timeseries.Defined before using them.
type Point struct {
	Date    time.Time
	Close   float64
	ShortMA float64
	LongMA  float64
	IsCross bool
}

// Analysis is the golden-cross result for one symbol over one period.
type Analysis struct {
	Symbol string
	Period string
	Points []Point
	Events []time.Time // dates where the short average crossed above the long one
}
