// Package usecase builds the raw price table with trailing returns for one
// symbol's full history.
package usecase

import (
	"context"

	quotesentity "lq45_backend/internal/feature/quotes/domain/entity"
	"lq45_backend/internal/feature/rawdata/domain/entity"
	"lq45_backend/internal/shared/timeseries"
)

const (
	// Lookback1Month is the "1 month" return lookback: 21 trading sessions,
	// a calendar approximation, not an exact month.
	Lookback1Month = 21
	// Lookback1Year is the "1 year" return lookback: 252 trading sessions.
	Lookback1Year = 252

	// DefaultTailRows is the number of most recent rows returned by default.
	DefaultTailRows = 50
	// MaxTailRows caps how many rows a single request may ask for.
	MaxTailRows = 1000
)

// HistoryReader fetches a symbol's full daily history.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (quotes usecase).
type HistoryReader interface {
	GetFullHistory(ctx context.Context, symbol string) ([]quotesentity.Bar, error)
}

// rawdataUsecase shapes full-history bars into the raw table.
type rawdataUsecase struct {
	quotes HistoryReader
}

// NewRawdataUsecase creates a new rawdataUsecase with the given history reader.
func NewRawdataUsecase(quotes HistoryReader) *rawdataUsecase {
	return &rawdataUsecase{quotes: quotes}
}

// GetRawTable fetches the symbol's full history, computes the 21- and
// 252-session trailing returns over the whole series and returns the most
// recent limit rows. Returns are pure ratios: close(d)/close(d-k) - 1,
// undefined where no observation k sessions back exists.
func (u *rawdataUsecase) GetRawTable(ctx context.Context, symbol string, limit int) (*entity.RawTable, error) {
	if limit <= 0 || limit > MaxTailRows {
		limit = DefaultTailRows
	}

	bars, err := u.quotes.GetFullHistory(ctx, symbol)
	if err != nil {
		return nil, err
	}

	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	// Returns are computed over the full history before trimming, so the
	// tail rows keep lookbacks that reach beyond the displayed window.
	r1m, err := timeseries.PctChange(closes, Lookback1Month)
	if err != nil {
		return nil, err
	}
	r1y, err := timeseries.PctChange(closes, Lookback1Year)
	if err != nil {
		return nil, err
	}

	start := len(bars) - limit
	if start < 0 {
		start = 0
	}
	out := &entity.RawTable{Rows: make([]entity.Row, 0, len(bars)-start)}
	if len(bars) > 0 {
		out.Symbol = bars[0].Symbol
	}
	for i := start; i < len(bars); i++ {
		out.Rows = append(out.Rows, entity.Row{
			Date:         bars[i].Time,
			Open:         bars[i].Open,
			High:         bars[i].High,
			Low:          bars[i].Low,
			Close:        bars[i].Close,
			Volume:       bars[i].Volume,
			Return1Month: r1m[i],
			Return1Year:  r1y[i],
		})
	}
	return out, nil
}
