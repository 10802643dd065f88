// Package usecase implements the business logic for catalog operations.
package usecase

import (
	"context"

	"lq45_backend/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts the persistence layer for the symbol catalog.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
	ListDefaultCodes(ctx context.Context) ([]string, error)
}

// SymbolUsecase provides business logic for catalog operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns all active catalog symbols.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// ListActiveCodes returns the codes of all active catalog symbols.
func (u *SymbolUsecase) ListActiveCodes(ctx context.Context) ([]string, error) {
	return u.repo.ListActiveCodes(ctx)
}

// DefaultSelection returns the default comparison set. When the catalog
// holds no defaults (fresh, unseeded database) the built-in set is used so
// the comparison endpoint always has a documented fallback.
func (u *SymbolUsecase) DefaultSelection(ctx context.Context) ([]string, error) {
	codes, err := u.repo.ListDefaultCodes(ctx)
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return entity.DefaultCodes(), nil
	}
	return codes, nil
}
