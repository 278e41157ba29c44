package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) withVariants(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Variants.Size").
		Preload("Variants.Crust")
}

// FindByID finds a product with its variants
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.withVariants(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindBySlug finds a product by its slug
func (r *GormProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.withVariants(ctx).First(&product, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll finds products matching the filter
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := r.withVariants(ctx).Model(&catalog.Product{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	query = applySort(query, filter, ProductSortFields, "created_at")
	if err := applyPagination(query, filter).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByCategory finds active products in a category, paginated
func (r *GormProductRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) (*shared.Paginated[catalog.Product], error) {
	query := r.withVariants(ctx).Model(&catalog.Product{}).
		Where("category_id = ? AND active = ?", categoryID, true)
	return paginate[catalog.Product](query, filter, ProductSortFields, "created_at")
}

// FindFeatured finds featured active products for the home page
func (r *GormProductRepository) FindFeatured(ctx context.Context, limit int) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.withVariants(ctx).
		Where("featured = ? AND active = ?", true, true).
		Order("updated_at DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Search finds active products matching the search term, paginated
func (r *GormProductRepository) Search(ctx context.Context, filter shared.Filter) (*shared.Paginated[catalog.Product], error) {
	query := r.withVariants(ctx).Model(&catalog.Product{}).Where("active = ?", true)
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", term, term)
	}
	if categoryID, ok := filter.Filters["category_id"]; ok {
		query = query.Where("category_id = ?", categoryID)
	}
	return paginate[catalog.Product](query, filter, ProductSortFields, "created_at")
}

// FindVariant loads a single variant with its size and crust
func (r *GormProductRepository) FindVariant(ctx context.Context, variantID uuid.UUID) (*catalog.Variant, error) {
	var variant catalog.Variant
	if err := r.db.WithContext(ctx).
		Preload("Size").
		Preload("Crust").
		First(&variant, "id = ?", variantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &variant, nil
}

// Save creates or updates a product together with its variants
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(product).Error
}

// Delete deletes a product; variants cascade
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts products matching the filter
func (r *GormProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.Product{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
