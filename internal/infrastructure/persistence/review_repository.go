package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pizzeria/backend/internal/domain/review"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// GormReviewRepository implements review.ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByID finds a review by its ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	var rev review.Review
	if err := r.db.WithContext(ctx).First(&rev, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

// FindAll finds reviews matching the filter
func (r *GormReviewRepository) FindAll(ctx context.Context, filter shared.Filter) ([]review.Review, error) {
	var reviews []review.Review
	query := r.db.WithContext(ctx).Model(&review.Review{})
	if productID, ok := filter.Filters["product_id"]; ok {
		query = query.Where("product_id = ?", productID)
	}
	query = applySort(query, filter, CommonSortFields, "created_at")
	if err := applyPagination(query, filter).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByProduct finds visible reviews for a product, newest first
func (r *GormReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) (*shared.Paginated[review.Review], error) {
	query := r.db.WithContext(ctx).Model(&review.Review{}).
		Where("product_id = ? AND visible = ?", productID, true)
	return paginate[review.Review](query, filter, CommonSortFields, "created_at")
}

// FindByCustomerAndProduct finds a customer's review of a product.
// Each customer reviews a product at most once.
func (r *GormReviewRepository) FindByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (*review.Review, error) {
	var rev review.Review
	if err := r.db.WithContext(ctx).
		First(&rev, "customer_id = ? AND product_id = ?", customerID, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

// Summarize computes the rating count and average for a product
func (r *GormReviewRepository) Summarize(ctx context.Context, productID uuid.UUID) (*review.Summary, error) {
	var result struct {
		Count   int64
		Average float64
	}
	if err := r.db.WithContext(ctx).
		Model(&review.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS average").
		Where("product_id = ? AND visible = ?", productID, true).
		Scan(&result).Error; err != nil {
		return nil, err
	}
	return &review.Summary{
		ProductID: productID,
		Count:     result.Count,
		Average:   result.Average,
	}, nil
}

// Save creates or updates a review
func (r *GormReviewRepository) Save(ctx context.Context, rev *review.Review) error {
	return r.db.WithContext(ctx).Save(rev).Error
}

// Delete deletes a review
func (r *GormReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&review.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts reviews
func (r *GormReviewRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&review.Review{})
	if productID, ok := filter.Filters["product_id"]; ok {
		query = query.Where("product_id = ?", productID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
