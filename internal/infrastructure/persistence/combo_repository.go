package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// GormComboRepository implements catalog.ComboRepository using GORM
type GormComboRepository struct {
	db *gorm.DB
}

// NewGormComboRepository creates a new GormComboRepository
func NewGormComboRepository(db *gorm.DB) *GormComboRepository {
	return &GormComboRepository{db: db}
}

func (r *GormComboRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Variant")
}

// FindByID finds a combo with its items
func (r *GormComboRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Combo, error) {
	var combo catalog.Combo
	if err := r.withItems(ctx).First(&combo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &combo, nil
}

// FindBySlug finds a combo by its slug
func (r *GormComboRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Combo, error) {
	var combo catalog.Combo
	if err := r.withItems(ctx).First(&combo, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &combo, nil
}

// FindAll finds combos matching the filter
func (r *GormComboRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Combo, error) {
	var combos []catalog.Combo
	query := applySort(r.withItems(ctx).Model(&catalog.Combo{}), filter, CommonSortFields, "created_at")
	if err := applyPagination(query, filter).Find(&combos).Error; err != nil {
		return nil, err
	}
	return combos, nil
}

// FindActive finds combos inside their active window right now
func (r *GormComboRepository) FindActive(ctx context.Context) ([]catalog.Combo, error) {
	now := time.Now()
	var combos []catalog.Combo
	if err := r.withItems(ctx).
		Where("active = ? AND starts_at <= ? AND ends_at > ?", true, now, now).
		Order("starts_at DESC").
		Find(&combos).Error; err != nil {
		return nil, err
	}
	return combos, nil
}

// Save creates or updates a combo together with its items
func (r *GormComboRepository) Save(ctx context.Context, combo *catalog.Combo) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(combo).Error
}

// Delete deletes a combo; items cascade
func (r *GormComboRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Combo{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts combos
func (r *GormComboRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Combo{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
