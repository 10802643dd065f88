package timeseries

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroBase indicates a series whose first value is zero, which cannot
	// be rebased to 1.0.
	ErrZeroBase = errors.New("first value is zero, cannot normalize")

	// ErrNeedTwoTickers indicates a peer computation over fewer than two
	// tickers, for which no peer average exists.
	ErrNeedTwoTickers = errors.New("need at least two tickers for a peer comparison")
)

// Normalize rebases every ticker's values to 1.0 at the first shared date by
// dividing each value by that ticker's own first value. The result is a new
// AlignedSet; the input is not modified.
func Normalize(set AlignedSet) (AlignedSet, error) {
	out := AlignedSet{
		Dates:   set.Dates,
		Tickers: set.Tickers,
		Values:  make(map[string][]float64, len(set.Values)),
	}
	for _, t := range set.Tickers {
		src := set.Values[t]
		if len(src) == 0 {
			return AlignedSet{}, fmt.Errorf("%s: %w", t, ErrEmptySeries)
		}
		base := src[0]
		if base == 0 {
			return AlignedSet{}, fmt.Errorf("%s: %w", t, ErrZeroBase)
		}
		row := make([]float64, len(src))
		for i, v := range src {
			row[i] = v / base
		}
		out.Values[t] = row
	}
	return out, nil
}

// RankEntry names a ticker together with its final normalized value.
type RankEntry struct {
	Ticker string
	Final  float64
}

// Rank returns the tickers with the highest and lowest final normalized
// values. Ties break alphabetically: Tickers is sorted and the comparisons
// below are strict, so the first (smallest) ticker at a tied value wins.
func Rank(set AlignedSet) (best, worst RankEntry, err error) {
	if set.Len() == 0 || len(set.Tickers) == 0 {
		return RankEntry{}, RankEntry{}, ErrEmptySeries
	}
	last := set.Len() - 1
	for i, t := range set.Tickers {
		v := set.Values[t][last]
		if i == 0 {
			best = RankEntry{Ticker: t, Final: v}
			worst = RankEntry{Ticker: t, Final: v}
			continue
		}
		if v > best.Final {
			best = RankEntry{Ticker: t, Final: v}
		}
		if v < worst.Final {
			worst = RankEntry{Ticker: t, Final: v}
		}
	}
	return best, worst, nil
}

// PeerComparison computes, for one ticker, the mean of all other tickers'
// values at each date and the signed difference between the ticker and that
// mean. The ticker itself is never part of its own average.
func PeerComparison(set AlignedSet, ticker string) (peerAvg, delta []float64, err error) {
	if len(set.Tickers) < 2 {
		return nil, nil, ErrNeedTwoTickers
	}
	own, ok := set.Values[ticker]
	if !ok {
		return nil, nil, fmt.Errorf("ticker %s not in aligned set", ticker)
	}

	peerAvg = make([]float64, set.Len())
	delta = make([]float64, set.Len())
	n := float64(len(set.Tickers) - 1)
	for _, t := range set.Tickers {
		if t == ticker {
			continue
		}
		row := set.Values[t]
		for i, v := range row {
			peerAvg[i] += v
		}
	}
	for i := range peerAvg {
		peerAvg[i] /= n
		delta[i] = own[i] - peerAvg[i]
	}
	return peerAvg, delta, nil
}
