// Package handler provides the HTTP handlers for the crossover feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lq45_backend/internal/api"
	"lq45_backend/internal/feature/crossover/domain/entity"
	quotesdomain "lq45_backend/internal/feature/quotes/domain"
	"lq45_backend/internal/shared/timeseries"
)

const dateLayout = "2006-01-02"

// CrossoverUsecase computes the golden-cross analysis for one symbol.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type CrossoverUsecase interface {
	Analyze(ctx context.Context, symbol, period string) (*entity.Analysis, error)
}

// CrossoverHandler handles HTTP requests for golden-cross analysis.
type CrossoverHandler struct {
	uc CrossoverUsecase
}

// NewCrossoverHandler creates a new CrossoverHandler with the given usecase.
func NewCrossoverHandler(uc CrossoverUsecase) *CrossoverHandler {
	return &CrossoverHandler{uc: uc}
}

// GetCrossoverHandler returns per-date rows of close price, 50/200 moving
// averages and cross flags, plus the list of event dates.
//
// Example:
// GET /crossover/BBCA.JK?period=1y
func (h *CrossoverHandler) GetCrossoverHandler(c *gin.Context) {
	symbol := c.Param("symbol")
	period := c.Query("period")

	analysis, err := h.uc.Analyze(c.Request.Context(), symbol, period)
	if err != nil {
		writeError(c, err)
		return
	}

	out := api.CrossoverResponse{
		Symbol: analysis.Symbol,
		Period: analysis.Period,
		Events: make([]string, 0, len(analysis.Events)),
		Rows:   make([]api.CrossoverRow, len(analysis.Points)),
	}
	for _, d := range analysis.Events {
		out.Events = append(out.Events, d.Format(dateLayout))
	}
	for i, p := range analysis.Points {
		out.Rows[i] = api.CrossoverRow{
			Date:        p.Date.Format(dateLayout),
			Close:       p.Close,
			MA50:        nullable(p.ShortMA),
			MA200:       nullable(p.LongMA),
			GoldenCross: p.IsCross,
		}
	}

	c.JSON(http.StatusOK, out)
}

// nullable converts an undefined value to a JSON null instead of a number.
func nullable(v float64) *float64 {
	if !timeseries.Defined(v) {
		return nil
	}
	return &v
}

func writeError(c *gin.Context, err error) {
	var noData *quotesdomain.NoDataError
	switch {
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
