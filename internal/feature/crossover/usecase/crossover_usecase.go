// Package usecase implements golden-cross detection over one ticker's
// daily close series.
package usecase

import (
	"context"

	"lq45_backend/internal/feature/crossover/domain/entity"
	quotesentity "lq45_backend/internal/feature/quotes/domain/entity"
	quotesusecase "lq45_backend/internal/feature/quotes/usecase"
	"lq45_backend/internal/shared/timeseries"
)

const (
	// ShortWindow is the short moving-average window in trading sessions.
	ShortWindow = 50
	// LongWindow is the long moving-average window in trading sessions.
	LongWindow = 200
)

// BarReader fetches daily bars for one symbol.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (quotes usecase).
type BarReader interface {
	GetDailyBars(ctx context.Context, symbol, period string) ([]quotesentity.Bar, error)
}

// crossoverUsecase computes the 50/200 moving averages and their crossings.
type crossoverUsecase struct {
	quotes BarReader
}

// NewCrossoverUsecase creates a new crossoverUsecase with the given bar reader.
func NewCrossoverUsecase(quotes BarReader) *crossoverUsecase {
	return &crossoverUsecase{quotes: quotes}
}

// Analyze fetches the symbol's daily closes, computes the short and long
// trailing averages and flags each date where the short average moves from
// at-or-below to strictly above the long one. A crossing is reported exactly
// once per transition.
func (u *crossoverUsecase) Analyze(ctx context.Context, symbol, period string) (*entity.Analysis, error) {
	period, err := quotesusecase.NormalizePeriod(period)
	if err != nil {
		return nil, err
	}
	bars, err := u.quotes.GetDailyBars(ctx, symbol, period)
	if err != nil {
		return nil, err
	}
	if len(bars) > 0 {
		symbol = bars[0].Symbol
	}

	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	short, err := timeseries.RollingMean(closes, ShortWindow)
	if err != nil {
		return nil, err
	}
	long, err := timeseries.RollingMean(closes, LongWindow)
	if err != nil {
		return nil, err
	}
	crosses := timeseries.GoldenCrosses(short, long)

	crossAt := make(map[int]struct{}, len(crosses))
	for _, i := range crosses {
		crossAt[i] = struct{}{}
	}

	out := &entity.Analysis{
		Symbol: symbol,
		Period: period,
		Points: make([]entity.Point, len(bars)),
	}
	for i, b := range bars {
		_, isCross := crossAt[i]
		out.Points[i] = entity.Point{
			Date:    b.Time,
			Close:   b.Close,
			ShortMA: short[i],
			LongMA:  long[i],
			IsCross: isCross,
		}
		if isCross {
			out.Events = append(out.Events, b.Time)
		}
	}
	return out, nil
}
