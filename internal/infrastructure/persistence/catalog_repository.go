package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// GormCategoryRepository implements catalog.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindBySlug finds a category by its slug
func (r *GormCategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).First(&category, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll finds all categories matching the filter
func (r *GormCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	var categories []catalog.Category
	query := r.db.WithContext(ctx).Model(&catalog.Category{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	query = applySort(query, filter, CommonSortFields, "created_at")
	if err := applyPagination(query, filter).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindActive finds active categories in display order
func (r *GormCategoryRepository) FindActive(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("position ASC, name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Save creates or updates a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete deletes a category
func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts categories matching the filter
func (r *GormCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.Category{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormSizeRepository implements catalog.SizeRepository using GORM
type GormSizeRepository struct {
	db *gorm.DB
}

// NewGormSizeRepository creates a new GormSizeRepository
func NewGormSizeRepository(db *gorm.DB) *GormSizeRepository {
	return &GormSizeRepository{db: db}
}

// FindByID finds a size by its ID
func (r *GormSizeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Size, error) {
	var size catalog.Size
	if err := r.db.WithContext(ctx).First(&size, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &size, nil
}

// FindAll finds all sizes matching the filter
func (r *GormSizeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Size, error) {
	var sizes []catalog.Size
	query := applySort(r.db.WithContext(ctx).Model(&catalog.Size{}), filter, CommonSortFields, "created_at")
	if err := applyPagination(query, filter).Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

// FindAllOrdered finds all sizes in display order
func (r *GormSizeRepository) FindAllOrdered(ctx context.Context) ([]catalog.Size, error) {
	var sizes []catalog.Size
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

// Save creates or updates a size
func (r *GormSizeRepository) Save(ctx context.Context, size *catalog.Size) error {
	return r.db.WithContext(ctx).Save(size).Error
}

// Delete deletes a size
func (r *GormSizeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Size{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts sizes
func (r *GormSizeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Size{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormCrustRepository implements catalog.CrustRepository using GORM
type GormCrustRepository struct {
	db *gorm.DB
}

// NewGormCrustRepository creates a new GormCrustRepository
func NewGormCrustRepository(db *gorm.DB) *GormCrustRepository {
	return &GormCrustRepository{db: db}
}

// FindByID finds a crust by its ID
func (r *GormCrustRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Crust, error) {
	var crust catalog.Crust
	if err := r.db.WithContext(ctx).First(&crust, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &crust, nil
}

// FindAll finds all crusts matching the filter
func (r *GormCrustRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Crust, error) {
	var crusts []catalog.Crust
	query := applySort(r.db.WithContext(ctx).Model(&catalog.Crust{}), filter, CommonSortFields, "created_at")
	if err := applyPagination(query, filter).Find(&crusts).Error; err != nil {
		return nil, err
	}
	return crusts, nil
}

// FindAllOrdered finds all crusts in display order
func (r *GormCrustRepository) FindAllOrdered(ctx context.Context) ([]catalog.Crust, error) {
	var crusts []catalog.Crust
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&crusts).Error; err != nil {
		return nil, err
	}
	return crusts, nil
}

// Save creates or updates a crust
func (r *GormCrustRepository) Save(ctx context.Context, crust *catalog.Crust) error {
	return r.db.WithContext(ctx).Save(crust).Error
}

// Delete deletes a crust
func (r *GormCrustRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Crust{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts crusts
func (r *GormCrustRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Crust{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
