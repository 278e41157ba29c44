package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pizzeria/backend/internal/domain/ordering"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// GormOrderRepository implements ordering.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items")
}

// FindByID finds an order with its items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.withItems(ctx).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByCode finds an order by its human-readable code
func (r *GormOrderRepository) FindByCode(ctx context.Context, code string) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.withItems(ctx).First(&order, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds orders matching the filter
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Order, error) {
	var orders []ordering.Order
	query := r.withItems(ctx).Model(&ordering.Order{})
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if filter.Search != "" {
		query = query.Where("code ILIKE ?", "%"+filter.Search+"%")
	}
	query = applySort(query, filter, OrderSortFields, "placed_at")
	if err := applyPagination(query, filter).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByCustomer finds a customer's orders, newest first
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (*shared.Paginated[ordering.Order], error) {
	query := r.withItems(ctx).Model(&ordering.Order{}).Where("customer_id = ?", customerID)
	return paginate[ordering.Order](query, filter, OrderSortFields, "placed_at")
}

// FindByStatus finds orders in a given status, paginated
func (r *GormOrderRepository) FindByStatus(ctx context.Context, status ordering.OrderStatus, filter shared.Filter) (*shared.Paginated[ordering.Order], error) {
	query := r.withItems(ctx).Model(&ordering.Order{}).Where("status = ?", status)
	return paginate[ordering.Order](query, filter, OrderSortFields, "placed_at")
}

// CountByStatus counts orders grouped by status for the dashboard
func (r *GormOrderRepository) CountByStatus(ctx context.Context) (map[ordering.OrderStatus]int64, error) {
	type row struct {
		Status ordering.OrderStatus
		Count  int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&ordering.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[ordering.OrderStatus]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}

// FindPlacedBetween finds orders placed inside the window, for reports
func (r *GormOrderRepository) FindPlacedBetween(ctx context.Context, from, to time.Time) ([]ordering.Order, error) {
	var orders []ordering.Order
	if err := r.withItems(ctx).
		Where("placed_at >= ? AND placed_at < ?", from, to).
		Order("placed_at ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save persists an order with optimistic locking on the version column
func (r *GormOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if order.Version == 1 {
			return tx.Session(&gorm.Session{FullSaveAssociations: true}).Create(order).Error
		}
		currentVersion := order.Version
		order.Version++
		result := tx.Model(&ordering.Order{}).
			Where("id = ? AND version = ?", order.ID, currentVersion).
			Select("status", "version", "updated_at").
			Updates(order)
		if result.Error != nil {
			order.Version = currentVersion
			return result.Error
		}
		if result.RowsAffected == 0 {
			order.Version = currentVersion
			return shared.ErrConcurrencyConflict
		}
		return nil
	})
}

// Delete deletes an order; items cascade
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ordering.Order{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&ordering.Order{})
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormPaymentRepository implements ordering.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Payment, error) {
	var payment ordering.Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByOrder finds all payment attempts for an order
func (r *GormPaymentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]ordering.Payment, error) {
	var payments []ordering.Payment
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindAll finds payments matching the filter
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Payment, error) {
	var payments []ordering.Payment
	query := applySort(r.db.WithContext(ctx).Model(&ordering.Payment{}), filter, CommonSortFields, "created_at")
	if err := applyPagination(query, filter).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *ordering.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete deletes a payment
func (r *GormPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ordering.Payment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts payments
func (r *GormPaymentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ordering.Payment{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
