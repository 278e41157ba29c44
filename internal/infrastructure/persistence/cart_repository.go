package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pizzeria/backend/internal/domain/ordering"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// GormCartRepository implements ordering.CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	})
}

// FindByID finds a cart with its items
func (r *GormCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Cart, error) {
	var cart ordering.Cart
	if err := r.withItems(ctx).First(&cart, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// FindByCustomer finds the cart belonging to a customer
func (r *GormCartRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*ordering.Cart, error) {
	var cart ordering.Cart
	if err := r.withItems(ctx).First(&cart, "customer_id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// FindAll finds carts matching the filter
func (r *GormCartRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Cart, error) {
	var carts []ordering.Cart
	query := applySort(r.withItems(ctx).Model(&ordering.Cart{}), filter, CommonSortFields, "created_at")
	if err := applyPagination(query, filter).Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

// Save persists the cart and its items, removing lines deleted in memory
func (r *GormCartRepository) Save(ctx context.Context, cart *ordering.Cart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&ordering.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(cart).Error
	})
}

// Delete deletes a cart; items cascade
func (r *GormCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ordering.Cart{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts carts
func (r *GormCartRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ordering.Cart{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
