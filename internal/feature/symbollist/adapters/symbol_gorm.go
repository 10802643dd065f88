// Package adapters provides the repository implementations for the
// symbollist feature.
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lq45_backend/internal/feature/symbollist/domain/entity"
	"lq45_backend/internal/feature/symbollist/usecase"
)

// symbolGorm is the gorm-backed implementation of SymbolRepository.
type symbolGorm struct {
	db *gorm.DB
}

// Compile-time check that symbolGorm implements SymbolRepository.
var _ usecase.SymbolRepository = (*symbolGorm)(nil)

// NewSymbolRepository creates a new symbolGorm repository with the given
// database connection.
func NewSymbolRepository(db *gorm.DB) *symbolGorm {
	return &symbolGorm{db: db}
}

// ListActive returns all active symbols ordered by sort_key.
func (r *symbolGorm) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	var symbols []entity.Symbol
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// ListActiveCodes returns only the codes of active symbols ordered by sort_key.
func (r *symbolGorm) ListActiveCodes(ctx context.Context) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Symbol{}).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// ListDefaultCodes returns the codes of the default comparison set ordered
// by sort_key.
func (r *symbolGorm) ListDefaultCodes(ctx context.Context) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Symbol{}).
		Where("is_active = ? AND is_default = ?", true, true).
		Order("sort_key ASC").
		Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// Seed upserts the LQ45 catalog keyed by code, refreshing name, flags and
// ordering on conflict. Idempotent; safe to run on every start.
func (r *symbolGorm) Seed(ctx context.Context) error {
	symbols := entity.LQ45()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "market", "is_active", "is_default", "sort_key"}),
		}).
		Create(&symbols).Error
}
