package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pizzeria/backend/internal/domain/promotion"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// GormCouponRepository implements promotion.CouponRepository using GORM
type GormCouponRepository struct {
	db *gorm.DB
}

// NewGormCouponRepository creates a new GormCouponRepository
func NewGormCouponRepository(db *gorm.DB) *GormCouponRepository {
	return &GormCouponRepository{db: db}
}

// FindByID finds a coupon by its ID
func (r *GormCouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*promotion.Coupon, error) {
	var coupon promotion.Coupon
	if err := r.db.WithContext(ctx).First(&coupon, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &coupon, nil
}

// FindByCode finds a coupon by its normalized code
func (r *GormCouponRepository) FindByCode(ctx context.Context, code string) (*promotion.Coupon, error) {
	var coupon promotion.Coupon
	if err := r.db.WithContext(ctx).
		First(&coupon, "code = ?", promotion.NormalizeCode(code)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &coupon, nil
}

// FindAll finds coupons matching the filter
func (r *GormCouponRepository) FindAll(ctx context.Context, filter shared.Filter) ([]promotion.Coupon, error) {
	var coupons []promotion.Coupon
	query := r.db.WithContext(ctx).Model(&promotion.Coupon{})
	if filter.Search != "" {
		query = query.Where("code ILIKE ?", "%"+filter.Search+"%")
	}
	query = applySort(query, filter, CommonSortFields, "created_at")
	if err := applyPagination(query, filter).Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}

// Save creates or updates a coupon
func (r *GormCouponRepository) Save(ctx context.Context, coupon *promotion.Coupon) error {
	return r.db.WithContext(ctx).Save(coupon).Error
}

// Delete deletes a coupon
func (r *GormCouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&promotion.Coupon{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts coupons
func (r *GormCouponRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&promotion.Coupon{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
