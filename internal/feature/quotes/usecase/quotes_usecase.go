// Package usecase implements retrieval of daily price series for the
// comparison pipeline.
package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"lq45_backend/internal/feature/quotes/domain"
	"lq45_backend/internal/feature/quotes/domain/entity"
	"lq45_backend/internal/shared/timeseries"
)

const (
	// DefaultPeriod is the horizon used when the caller does not specify one.
	DefaultPeriod = "6mo"
	// PeriodMax selects the full available history for a ticker.
	PeriodMax = "max"
)

// validPeriods is the supported horizon set.
var validPeriods = map[string]struct{}{
	"1mo": {}, "3mo": {}, "6mo": {}, "1y": {},
	"5y": {}, "10y": {}, "20y": {}, PeriodMax: {},
}

// NormalizePeriod lowercases and validates a period, applying the default
// when empty.
func NormalizePeriod(period string) (string, error) {
	p := strings.ToLower(strings.TrimSpace(period))
	if p == "" {
		return DefaultPeriod, nil
	}
	if _, ok := validPeriods[p]; !ok {
		return "", domain.ErrUnknownPeriod
	}
	return p, nil
}

// NormalizeTickers trims, uppercases and de-duplicates a ticker selection,
// preserving first-seen order. Ticker input is case-insensitive; stored and
// reported form is uppercase.
func NormalizeTickers(tickers []string) []string {
	seen := make(map[string]struct{}, len(tickers))
	out := make([]string, 0, len(tickers))
	for _, t := range tickers {
		u := strings.ToUpper(strings.TrimSpace(t))
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// MarketRepository abstracts the upstream price series provider.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type MarketRepository interface {
	// GetDailyBars fetches daily OHLC bars for one symbol over a period.
	// An empty result means the provider has no data for the symbol.
	GetDailyBars(ctx context.Context, symbol, period string) ([]entity.Bar, error)
}

// quotesUsecase fetches and shapes raw price series for downstream
// transformations.
type quotesUsecase struct {
	market MarketRepository
}

// NewQuotesUsecase creates a new quotesUsecase with the given market repository.
func NewQuotesUsecase(market MarketRepository) *quotesUsecase {
	return &quotesUsecase{market: market}
}

// GetDailyBars fetches daily bars for a single symbol. An empty result is
// reported as a NoDataError naming the symbol.
func (u *quotesUsecase) GetDailyBars(ctx context.Context, symbol, period string) ([]entity.Bar, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, domain.ErrSymbolRequired
	}
	p, err := NormalizePeriod(period)
	if err != nil {
		return nil, err
	}
	bars, err := u.market.GetDailyBars(ctx, symbol, p)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, &domain.NoDataError{Tickers: []string{symbol}}
	}
	return bars, nil
}

// GetFullHistory fetches every available daily bar for a symbol.
func (u *quotesUsecase) GetFullHistory(ctx context.Context, symbol string) ([]entity.Bar, error) {
	return u.GetDailyBars(ctx, symbol, PeriodMax)
}

// GetCloseSeries fetches close-price series for a ticker selection over one
// period. Tickers with no data at all are collected and reported together;
// a rate-limit error aborts the whole request immediately.
func (u *quotesUsecase) GetCloseSeries(ctx context.Context, tickers []string, period string) (map[string]timeseries.Series, error) {
	tickers = NormalizeTickers(tickers)
	if len(tickers) == 0 {
		return nil, domain.ErrNoTickersSelected
	}
	p, err := NormalizePeriod(period)
	if err != nil {
		return nil, err
	}

	out := make(map[string]timeseries.Series, len(tickers))
	var missing []string
	for _, t := range tickers {
		bars, err := u.market.GetDailyBars(ctx, t, p)
		if err != nil {
			return nil, err
		}
		if len(bars) == 0 {
			missing = append(missing, t)
			continue
		}
		s, err := CloseSeries(bars)
		if err != nil {
			return nil, err
		}
		out[t] = s
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &domain.NoDataError{Tickers: missing}
	}
	return out, nil
}

// CloseSeries extracts the close-price time series from daily bars.
func CloseSeries(bars []entity.Bar) (timeseries.Series, error) {
	dates := make([]time.Time, len(bars))
	values := make([]float64, len(bars))
	for i, b := range bars {
		dates[i] = b.Time
		values[i] = b.Close
	}
	return timeseries.NewSeries(dates, values)
}
