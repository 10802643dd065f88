package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"lq45_backend/internal/feature/symbollist/domain/entity"
)

// mockSymbolUsecase is a mock implementation of the SymbolUsecase interface.
type mockSymbolUsecase struct {
	ListActiveSymbolsFunc func(ctx context.Context) ([]entity.Symbol, error)
}

func (m *mockSymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	if m.ListActiveSymbolsFunc != nil {
		return m.ListActiveSymbolsFunc(ctx)
	}
	return nil, nil
}

func TestNewSymbolHandler(t *testing.T) {
	t.Parallel()

	handler := NewSymbolHandler(&mockSymbolUsecase{})

	assert.NotNil(t, handler, "handler should not be nil")
	assert.NotNil(t, handler.uc, "usecase should not be nil")
}

func TestSymbolHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name               string
		mockListActiveFunc func(ctx context.Context) ([]entity.Symbol, error)
		expectedStatus     int
		expectedBody       string
	}{
		{
			name: "success: returns list of symbols",
			mockListActiveFunc: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{
					{ID: 1, Code: "BBCA.JK", Name: "Bank Central Asia", IsActive: true, IsDefault: true, SortKey: 1},
					{ID: 2, Code: "GOTO.JK", Name: "GoTo Gojek Tokopedia", IsActive: true, SortKey: 2},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"code":"BBCA.JK","name":"Bank Central Asia","is_default":true},{"code":"GOTO.JK","name":"GoTo Gojek Tokopedia","is_default":false}]`,
		},
		{
			name: "success: returns empty list when no symbols",
			mockListActiveFunc: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "success: returns nil from usecase",
			mockListActiveFunc: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "failure: usecase returns error",
			mockListActiveFunc: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, errors.New("database connection failed")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"database connection failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewSymbolHandler(&mockSymbolUsecase{
				ListActiveSymbolsFunc: tt.mockListActiveFunc,
			})

			router := gin.New()
			router.GET("/symbols", handler.List)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/symbols", nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestSymbolHandler_List_DTOConversion(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Parallel()

	// Only code, name and is_default cross the wire; internal fields stay out.
	handler := NewSymbolHandler(&mockSymbolUsecase{
		ListActiveSymbolsFunc: func(ctx context.Context) ([]entity.Symbol, error) {
			return []entity.Symbol{
				{ID: 999, Code: "TEST.JK", Name: "Test Company", IsActive: true, SortKey: 100},
			}, nil
		},
	})

	router := gin.New()
	router.GET("/symbols", handler.List)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/symbols", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"code":"TEST.JK","name":"Test Company","is_default":false}]`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "sort_key")
	assert.NotContains(t, w.Body.String(), "999")
}
