// Package usecase implements the comparison pass: normalization, ranking and
// peer-average computation over a ticker selection.
package usecase

import (
	"context"

	"lq45_backend/internal/feature/compare/domain/entity"
	quotesdomain "lq45_backend/internal/feature/quotes/domain"
	quotesusecase "lq45_backend/internal/feature/quotes/usecase"
	"lq45_backend/internal/shared/timeseries"
)

// PeerNotice is surfaced instead of peer sections when only one ticker is
// selected: a single ticker has no peers to average.
const PeerNotice = "pick 2 or more tickers to compare them"

// QuoteReader fetches close-price series for a ticker selection.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (quotes usecase).
type QuoteReader interface {
	GetCloseSeries(ctx context.Context, tickers []string, period string) (map[string]timeseries.Series, error)
}

// compareUsecase runs the comparison pipeline over fetched close series.
type compareUsecase struct {
	quotes QuoteReader
}

// NewCompareUsecase creates a new compareUsecase with the given quote reader.
func NewCompareUsecase(quotes QuoteReader) *compareUsecase {
	return &compareUsecase{quotes: quotes}
}

// Compare fetches close series for the selection, aligns them on the shared
// date axis, rebases every series to 1.0 at the first shared date, ranks the
// final values (ties break alphabetically) and, when two or more tickers are
// selected, computes each ticker's peer average and delta. With exactly one
// ticker the peer computation is skipped entirely and Notice is set.
func (u *compareUsecase) Compare(ctx context.Context, tickers []string, period string) (*entity.Comparison, error) {
	tickers = quotesusecase.NormalizeTickers(tickers)
	if len(tickers) == 0 {
		return nil, quotesdomain.ErrNoTickersSelected
	}
	p, err := quotesusecase.NormalizePeriod(period)
	if err != nil {
		return nil, err
	}

	closes, err := u.quotes.GetCloseSeries(ctx, tickers, p)
	if err != nil {
		return nil, err
	}

	aligned, err := timeseries.Align(closes)
	if err != nil {
		return nil, err
	}
	norm, err := timeseries.Normalize(aligned)
	if err != nil {
		return nil, err
	}
	best, worst, err := timeseries.Rank(norm)
	if err != nil {
		return nil, err
	}

	out := &entity.Comparison{
		Period:     p,
		Dates:      norm.Dates,
		Tickers:    norm.Tickers,
		Normalized: norm.Values,
		Best:       best,
		Worst:      worst,
	}

	if len(norm.Tickers) < 2 {
		out.Notice = PeerNotice
		return out, nil
	}

	for _, t := range norm.Tickers {
		avg, delta, err := timeseries.PeerComparison(norm, t)
		if err != nil {
			return nil, err
		}
		out.Peers = append(out.Peers, entity.PeerSection{
			Ticker:      t,
			Values:      norm.Values[t],
			PeerAverage: avg,
			Delta:       delta,
		})
	}
	return out, nil
}
