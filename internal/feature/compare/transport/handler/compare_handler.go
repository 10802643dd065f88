// Package handler provides the HTTP handlers for the compare feature.
package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lq45_backend/internal/api"
	"lq45_backend/internal/feature/compare/domain/entity"
	quotesdomain "lq45_backend/internal/feature/quotes/domain"
	"lq45_backend/internal/shared/timeseries"
)

const dateLayout = "2006-01-02"

// CompareUsecase runs a full comparison pass over a ticker selection.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type CompareUsecase interface {
	Compare(ctx context.Context, tickers []string, period string) (*entity.Comparison, error)
}

// CompareHandler handles HTTP requests for stock comparisons.
type CompareHandler struct {
	uc       CompareUsecase
	defaults []string // ticker set used when the stocks parameter is absent
}

// NewCompareHandler creates a new CompareHandler with the given usecase and
// default ticker selection.
func NewCompareHandler(uc CompareUsecase, defaults []string) *CompareHandler {
	return &CompareHandler{uc: uc, defaults: defaults}
}

// GetCompareHandler runs the comparison for the selected tickers and horizon
// and returns chart-ready rows as JSON.
//
// Example:
// GET /compare?stocks=BBCA.JK,BBRI.JK&period=6mo
//
// The stocks parameter is comma-joined and case-insensitive; when absent the
// documented default selection is used. An explicitly empty selection is a
// user error, not a fallback to defaults.
func (h *CompareHandler) GetCompareHandler(c *gin.Context) {
	var tickers []string
	if raw, ok := c.GetQuery("stocks"); ok {
		tickers = strings.Split(raw, ",")
	} else {
		tickers = h.defaults
	}
	period := c.Query("period")

	cmp, err := h.uc.Compare(c.Request.Context(), tickers, period)
	if err != nil {
		writeQuotesError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCompareResponse(cmp))
}

// toCompareResponse flattens a Comparison into the wire shape: long-form
// normalized rows for the multi-series chart, wide-form rows per peer section.
func toCompareResponse(cmp *entity.Comparison) api.CompareResponse {
	out := api.CompareResponse{
		Period: cmp.Period,
		Stocks: cmp.Tickers,
		Best:   toMetric(cmp.Best),
		Worst:  toMetric(cmp.Worst),
		Notice: cmp.Notice,
	}

	out.Normalized = make([]api.NormalizedRow, 0, len(cmp.Dates)*len(cmp.Tickers))
	for _, t := range cmp.Tickers {
		row := cmp.Normalized[t]
		for i, d := range cmp.Dates {
			out.Normalized = append(out.Normalized, api.NormalizedRow{
				Date:  d.Format(dateLayout),
				Stock: t,
				Value: row[i],
			})
		}
	}

	for _, p := range cmp.Peers {
		sec := api.PeerSectionResponse{
			Stock: p.Ticker,
			Rows:  make([]api.PeerRow, len(cmp.Dates)),
		}
		for i, d := range cmp.Dates {
			sec.Rows[i] = api.PeerRow{
				Date:        d.Format(dateLayout),
				Price:       p.Values[i],
				PeerAverage: p.PeerAverage[i],
				Delta:       p.Delta[i],
			}
		}
		out.Peers = append(out.Peers, sec)
	}
	return out
}

func toMetric(e timeseries.RankEntry) api.MetricResponse {
	return api.MetricResponse{
		Stock:     e.Ticker,
		Final:     e.Final,
		ChangePct: int(math.Round(e.Final * 100)),
	}
}

// writeQuotesError maps pipeline errors onto HTTP statuses: user-actionable
// precondition failures are 400, partial data failures are 422 with the
// tickers named, upstream rate limiting is a retryable 503, anything else
// from the provider is 502.
func writeQuotesError(c *gin.Context, err error) {
	var noData *quotesdomain.NoDataError
	switch {
	case errors.Is(err, quotesdomain.ErrNoTickersSelected):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "pick some stocks to compare"})
	case errors.Is(err, quotesdomain.ErrSymbolRequired),
		errors.Is(err, quotesdomain.ErrUnknownPeriod):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.As(err, &noData):
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: noData.Error(), Tickers: noData.Tickers})
	case errors.Is(err, quotesdomain.ErrRateLimited):
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "price provider is rate limiting, try again later", Retryable: true})
	default:
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
	}
}
