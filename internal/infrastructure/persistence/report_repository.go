package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/content"
	"github.com/pizzeria/backend/internal/domain/identity"
	"github.com/pizzeria/backend/internal/domain/ordering"
	"github.com/pizzeria/backend/internal/domain/reporting"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// GormReportRepository implements reporting.ReportRepository with
// aggregate queries over the order and catalog tables
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// DashboardStats computes the headline numbers for the dashboard
func (r *GormReportRepository) DashboardStats(ctx context.Context) (*reporting.DashboardStats, error) {
	stats := &reporting.DashboardStats{
		OrdersByStatus: make(map[ordering.OrderStatus]int64),
	}

	db := r.db.WithContext(ctx)
	if err := db.Model(&ordering.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	type statusRow struct {
		Status ordering.OrderStatus
		Count  int64
	}
	var rows []statusRow
	if err := db.Model(&ordering.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.OrdersByStatus[row.Status] = row.Count
	}

	if err := db.Model(&identity.User{}).
		Where("role = ?", identity.RoleCustomer).
		Count(&stats.TotalCustomers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&catalog.Product{}).
		Where("active = ?", true).
		Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}

	var revenue decimal.NullDecimal
	if err := db.Model(&ordering.Order{}).
		Select("SUM(total)").
		Where("status = ?", ordering.StatusDelivered).
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue.Valid {
		stats.Revenue = valueobject.NewMoneyVND(revenue.Decimal)
	} else {
		stats.Revenue = valueobject.ZeroVND()
	}

	if err := db.Model(&content.FAQ{}).
		Where("answer IS NULL OR TRIM(answer) = ''").
		Count(&stats.PendingQuestions).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// RevenueByDay buckets delivered-order revenue per day inside the window
func (r *GormReportRepository) RevenueByDay(ctx context.Context, from, to time.Time) ([]reporting.RevenuePoint, error) {
	type row struct {
		Day     time.Time
		Orders  int64
		Revenue decimal.Decimal
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&ordering.Order{}).
		Select("DATE_TRUNC('day', placed_at) AS day, COUNT(*) AS orders, SUM(total) AS revenue").
		Where("status = ? AND placed_at >= ? AND placed_at < ?", ordering.StatusDelivered, from, to).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	points := make([]reporting.RevenuePoint, len(rows))
	for i, rw := range rows {
		points[i] = reporting.RevenuePoint{
			Day:     rw.Day,
			Orders:  rw.Orders,
			Revenue: valueobject.NewMoneyVND(rw.Revenue),
		}
	}
	return points, nil
}

// TopProducts ranks products by quantity sold inside the window
func (r *GormReportRepository) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]reporting.TopProduct, error) {
	if limit < 1 {
		limit = 10
	}
	var tops []reporting.TopProduct
	if err := r.db.WithContext(ctx).
		Table("order_items").
		Select("product_variants.product_id AS product_id, MAX(order_items.name) AS name, SUM(order_items.quantity) AS quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN product_variants ON product_variants.id = order_items.variant_id").
		Where("order_items.variant_id IS NOT NULL").
		Where("orders.status = ? AND orders.placed_at >= ? AND orders.placed_at < ?", ordering.StatusDelivered, from, to).
		Group("product_variants.product_id").
		Order("quantity DESC").
		Limit(limit).
		Scan(&tops).Error; err != nil {
		return nil, err
	}
	return tops, nil
}
