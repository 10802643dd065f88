// Package handler provides the HTTP handlers for the symbollist feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"lq45_backend/internal/api"
	"lq45_backend/internal/feature/symbollist/domain/entity"
)

// SymbolUsecase provides catalog queries.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type SymbolUsecase interface {
	ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error)
}

// SymbolHandler handles HTTP requests for the symbol catalog.
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler creates a new SymbolHandler with the given usecase.
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List returns the active catalog symbols as JSON.
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListActiveSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	out := make([]api.SymbolResponse, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, api.SymbolResponse{Code: s.Code, Name: s.Name, IsDefault: s.IsDefault})
	}
	c.JSON(http.StatusOK, out)
}
