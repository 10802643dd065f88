package timeseries

import (
	"fmt"
	"math"
)

// Undefined marks positions where a windowed value does not exist yet
// (fewer than window-1 prior observations). Callers must check Defined
// before using a value; undefined positions are never serialized as numbers.
var Undefined = math.NaN()

// Defined reports whether v is a defined observation.
func Defined(v float64) bool { return !math.IsNaN(v) }

// RollingMean computes the trailing simple moving average over the given
// window using a running sum, so the whole series costs O(n) regardless of
// window size. The first window-1 positions are Undefined.
func RollingMean(values []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("window must be positive, got %d", window)
	}
	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		} else {
			out[i] = Undefined
		}
	}
	return out, nil
}

// PctChange computes the trailing percent change over a fixed lookback:
// values[i]/values[i-lookback] - 1. The lookback counts observed trading
// sessions, not calendar days. The first lookback positions are Undefined.
func PctChange(values []float64, lookback int) ([]float64, error) {
	if lookback <= 0 {
		return nil, fmt.Errorf("lookback must be positive, got %d", lookback)
	}
	out := make([]float64, len(values))
	for i := range values {
		if i < lookback || values[i-lookback] == 0 {
			out[i] = Undefined
			continue
		}
		out[i] = values[i]/values[i-lookback] - 1
	}
	return out, nil
}

// GoldenCrosses returns the indices where the short moving average moves
// from at-or-below to strictly above the long moving average. A crossing
// fires exactly once per transition. Positions where either average is
// Undefined at i or i-1 never fire, and index 0 never fires.
func GoldenCrosses(short, long []float64) []int {
	var crosses []int
	n := len(short)
	if len(long) < n {
		n = len(long)
	}
	for i := 1; i < n; i++ {
		if !Defined(short[i]) || !Defined(long[i]) || !Defined(short[i-1]) || !Defined(long[i-1]) {
			continue
		}
		if short[i] > long[i] && short[i-1] <= long[i-1] {
			crosses = append(crosses, i)
		}
	}
	return crosses
}
