package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"

	"lq45_backend/internal/feature/quotes/adapters/yahoo/dto"
	"lq45_backend/internal/feature/quotes/domain"
	"lq45_backend/internal/feature/quotes/domain/entity"
	"lq45_backend/internal/feature/quotes/usecase"
)

// YahooMarket is a MarketRepository implementation that fetches daily price
// series from the Yahoo Finance chart API.
type YahooMarket struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that YahooMarket implements MarketRepository.
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket creates a new YahooMarket with the given configuration and
// HTTP client.
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// chartRange maps a period to a chart API range parameter. The endpoint has
// no "20y" range, so that horizon falls back to the full history.
func chartRange(period string) string {
	if period == "20y" {
		return "max"
	}
	return period
}

// GetDailyBars fetches daily OHLC bars for one symbol over a period and
// returns them in chronological order. HTTP 429 is reported as the typed
// rate-limit condition so callers can invalidate caches and retry later.
func (m *YahooMarket) GetDailyBars(ctx context.Context, symbol, period string) ([]entity.Bar, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		m.cfg.BaseURL, url.PathEscape(symbol), chartRange(period))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", m.cfg.UserAgent)

	res, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch %s: %w", symbol, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, domain.ErrRateLimited)
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo %s: http %d", symbol, res.StatusCode)
	}

	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("yahoo decode %s: %w", symbol, err)
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo %s: %s", symbol, body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		// Provider answered but holds nothing for this symbol: empty, not an error.
		return nil, nil
	}

	result := body.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars := make([]entity.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		// Null bars (holidays, halted sessions) carry no close; skip them.
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		b := entity.Bar{
			Symbol: symbol,
			Time:   time.Unix(ts, 0).UTC().Truncate(24 * time.Hour),
			Close:  *quote.Close[i],
		}
		if i < len(quote.Open) && quote.Open[i] != nil {
			b.Open = *quote.Open[i]
		}
		if i < len(quote.High) && quote.High[i] != nil {
			b.High = *quote.High[i]
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			b.Low = *quote.Low[i]
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			b.Volume = *quote.Volume[i]
		}
		bars = append(bars, b)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
