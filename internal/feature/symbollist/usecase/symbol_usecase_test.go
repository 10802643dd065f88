package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"lq45_backend/internal/feature/symbollist/domain/entity"
	"lq45_backend/internal/feature/symbollist/usecase"
)

// mockSymbolRepository is a mock implementation of the SymbolRepository interface.
type mockSymbolRepository struct {
	ListActiveFunc       func(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodesFunc  func(ctx context.Context) ([]string, error)
	ListDefaultCodesFunc func(ctx context.Context) ([]string, error)
}

func (m *mockSymbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockSymbolRepository) ListActiveCodes(ctx context.Context) ([]string, error) {
	if m.ListActiveCodesFunc != nil {
		return m.ListActiveCodesFunc(ctx)
	}
	return nil, nil
}

func (m *mockSymbolRepository) ListDefaultCodes(ctx context.Context) ([]string, error) {
	if m.ListDefaultCodesFunc != nil {
		return m.ListDefaultCodesFunc(ctx)
	}
	return nil, nil
}

func TestNewSymbolUsecase(t *testing.T) {
	t.Parallel()

	uc := usecase.NewSymbolUsecase(&mockSymbolRepository{})

	assert.NotNil(t, uc, "usecase should not be nil")
}

func TestSymbolUsecase_ListActiveSymbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		mockListActive  func(ctx context.Context) ([]entity.Symbol, error)
		expectedSymbols []entity.Symbol
		wantErr         bool
		errMsg          string
	}{
		{
			name: "success: returns list of active symbols",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{
					{ID: 1, Code: "BBCA.JK", Name: "Bank Central Asia", Market: "IDX", IsActive: true, SortKey: 1},
					{ID: 2, Code: "TLKM.JK", Name: "Telkom Indonesia", Market: "IDX", IsActive: true, SortKey: 2},
				}, nil
			},
			expectedSymbols: []entity.Symbol{
				{ID: 1, Code: "BBCA.JK", Name: "Bank Central Asia", Market: "IDX", IsActive: true, SortKey: 1},
				{ID: 2, Code: "TLKM.JK", Name: "Telkom Indonesia", Market: "IDX", IsActive: true, SortKey: 2},
			},
		},
		{
			name: "success: returns empty list when no active symbols",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{}, nil
			},
			expectedSymbols: []entity.Symbol{},
		},
		{
			name: "failure: repository returns error",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, errors.New("database connection failed")
			},
			wantErr: true,
			errMsg:  "database connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewSymbolUsecase(&mockSymbolRepository{
				ListActiveFunc: tt.mockListActive,
			})

			symbols, err := uc.ListActiveSymbols(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.EqualError(t, err, tt.errMsg)
				}
				assert.Nil(t, symbols)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSymbols, symbols)
			}
		})
	}
}

func TestSymbolUsecase_ListActiveCodes(t *testing.T) {
	t.Parallel()

	uc := usecase.NewSymbolUsecase(&mockSymbolRepository{
		ListActiveCodesFunc: func(ctx context.Context) ([]string, error) {
			return []string{"BBCA.JK", "TLKM.JK"}, nil
		},
	})

	codes, err := uc.ListActiveCodes(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"BBCA.JK", "TLKM.JK"}, codes)
}

func TestSymbolUsecase_DefaultSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		mockDefaultCodes func(ctx context.Context) ([]string, error)
		expected         []string
		wantErr          bool
	}{
		{
			name: "success: returns catalog defaults",
			mockDefaultCodes: func(ctx context.Context) ([]string, error) {
				return []string{"BBCA.JK", "BBRI.JK"}, nil
			},
			expected: []string{"BBCA.JK", "BBRI.JK"},
		},
		{
			name: "success: empty catalog falls back to built-in set",
			mockDefaultCodes: func(ctx context.Context) ([]string, error) {
				return nil, nil
			},
			expected: entity.DefaultCodes(),
		},
		{
			name: "failure: repository error propagates",
			mockDefaultCodes: func(ctx context.Context) ([]string, error) {
				return nil, errors.New("database connection failed")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewSymbolUsecase(&mockSymbolRepository{
				ListDefaultCodesFunc: tt.mockDefaultCodes,
			})

			codes, err := uc.DefaultSelection(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, codes)
			assert.NotEmpty(t, codes, "default selection must never be empty")
		})
	}
}

func TestDefaultCodes_SubsetOfCatalog(t *testing.T) {
	t.Parallel()

	catalog := make(map[string]bool)
	for _, s := range entity.LQ45() {
		catalog[s.Code] = true
	}

	defaults := entity.DefaultCodes()
	assert.NotEmpty(t, defaults)
	for _, code := range defaults {
		assert.True(t, catalog[code], "default %s missing from catalog", code)
	}
}
