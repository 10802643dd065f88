// Package handler provides the HTTP handlers for the rawdata feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lq45_backend/internal/api"
	quotesdomain "lq45_backend/internal/feature/quotes/domain"
	"lq45_backend/internal/feature/rawdata/domain/entity"
	"lq45_backend/internal/shared/timeseries"
)

const dateLayout = "2006-01-02"

// RawdataUsecase builds the raw table for one symbol.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type RawdataUsecase interface {
	GetRawTable(ctx context.Context, symbol string, limit int) (*entity.RawTable, error)
}

// RawdataHandler handles HTTP requests for the raw price table.
type RawdataHandler struct {
	uc RawdataUsecase
}

// NewRawdataHandler creates a new RawdataHandler with the given usecase.
func NewRawdataHandler(uc RawdataUsecase) *RawdataHandler {
	return &RawdataHandler{uc: uc}
}

// GetRawHandler returns the tail of a symbol's full history with the 1-month
// and 1-year trailing returns.
//
// Example:
// GET /raw/BBCA.JK?limit=50
func (h *RawdataHandler) GetRawHandler(c *gin.Context) {
	symbol := c.Param("symbol")
	limitStr := c.DefaultQuery("limit", "50")
	// Invalid limit strings fall back to the usecase default.
	limit, _ := strconv.Atoi(limitStr)

	table, err := h.uc.GetRawTable(c.Request.Context(), symbol, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]api.RawRow, len(table.Rows))
	for i, r := range table.Rows {
		out[i] = api.RawRow{
			Symbol:       table.Symbol,
			Date:         r.Date.Format(dateLayout),
			Open:         r.Open,
			High:         r.High,
			Low:          r.Low,
			Close:        r.Close,
			Volume:       r.Volume,
			Return1Month: nullable(r.Return1Month),
			Return1Year:  nullable(r.Return1Year),
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
	case errors.Is(err, quotesdomain.ErrSymbolRequired):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.As(err, &noData):
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: noData.Error(), Tickers: noData.Tickers})
	case errors.Is(err, quotesdomain.ErrRateLimited):
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "price provider is rate limiting, try again later", Retryable: true})
	default:
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
	}
}
