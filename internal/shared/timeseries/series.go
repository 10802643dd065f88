// Package timeseries implements the transformations behind the comparison
// dashboard: date-axis alignment, rebased normalization, peer averages,
// rolling means, lookback returns and golden-cross detection. All functions
// are pure and operate on in-memory slices.
package timeseries

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	// ErrEmptySeries indicates a series with no observations.
	ErrEmptySeries = errors.New("series has no observations")

	// ErrNoSharedDates indicates the aligned date axis is empty because the
	// input series have no trading dates in common.
	ErrNoSharedDates = errors.New("series share no dates")
)

// Series is an ordered sequence of (date, value) observations.
// Dates are strictly increasing; Dates and Values always have equal length.
type Series struct {
	Dates  []time.Time
	Values []float64
}

// NewSeries builds a Series after validating the ordering invariant.
func NewSeries(dates []time.Time, values []float64) (Series, error) {
	if len(dates) != len(values) {
		return Series{}, fmt.Errorf("dates/values length mismatch: %d != %d", len(dates), len(values))
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			return Series{}, fmt.Errorf("dates not strictly increasing at index %d (%s)", i, dates[i].Format("2006-01-02"))
		}
	}
	return Series{Dates: dates, Values: values}, nil
}

// Len returns the number of observations.
func (s Series) Len() int { return len(s.Dates) }

// AlignedSet holds one value slice per ticker over a single shared date axis.
// Every slice has the same length as Dates. Tickers is sorted alphabetically,
// which also fixes the tie-break order for ranking.
type AlignedSet struct {
	Dates   []time.Time
	Tickers []string
	Values  map[string][]float64
}

// Len returns the length of the shared date axis.
func (a AlignedSet) Len() int { return len(a.Dates) }

// Align builds the shared date axis for a set of per-ticker series.
// Policy: intersection — a date is kept only if every ticker observed it,
// so every downstream mean and delta is defined at every kept date.
func Align(series map[string]Series) (AlignedSet, error) {
	if len(series) == 0 {
		return AlignedSet{}, ErrEmptySeries
	}

	tickers := make([]string, 0, len(series))
	for t := range series {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	// Count how many tickers observed each date. Dates within one series are
	// unique, so a count equal to len(series) means the date is shared.
	counts := make(map[time.Time]int)
	for _, t := range tickers {
		s := series[t]
		if s.Len() == 0 {
			return AlignedSet{}, fmt.Errorf("%s: %w", t, ErrEmptySeries)
		}
		for _, d := range s.Dates {
			counts[d]++
		}
	}

	shared := make([]time.Time, 0, len(counts))
	for d, n := range counts {
		if n == len(series) {
			shared = append(shared, d)
		}
	}
	if len(shared) == 0 {
		return AlignedSet{}, ErrNoSharedDates
	}
	sort.Slice(shared, func(i, j int) bool { return shared[i].Before(shared[j]) })

	values := make(map[string][]float64, len(series))
	for _, t := range tickers {
		s := series[t]
		byDate := make(map[time.Time]float64, s.Len())
		for i, d := range s.Dates {
			byDate[d] = s.Values[i]
		}
		row := make([]float64, len(shared))
		for i, d := range shared {
			row[i] = byDate[d]
		}
		values[t] = row
	}

	return AlignedSet{Dates: shared, Tickers: tickers, Values: values}, nil
}
