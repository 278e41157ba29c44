package reporting

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/domain/ordering"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// DashboardStats is the headline block of the back-office dashboard.
// Revenue counts delivered orders only.
type DashboardStats struct {
	TotalOrders      int64                          `json:"total_orders"`
	OrdersByStatus   map[ordering.OrderStatus]int64 `json:"orders_by_status"`
	TotalCustomers   int64                          `json:"total_customers"`
	TotalProducts    int64                          `json:"total_products"`
	Revenue          valueobject.Money              `json:"revenue"`
	PendingQuestions int64                          `json:"pending_questions"`
}

// RevenuePoint is one day of the revenue chart
type RevenuePoint struct {
	Day     time.Time         `json:"day"`
	Orders  int64             `json:"orders"`
	Revenue valueobject.Money `json:"revenue"`
}

// TopProduct is one row of the best-sellers table
type TopProduct struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int64     `json:"quantity"`
}

// ReportRepository defines the read-side queries behind the dashboard
type ReportRepository interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	RevenueByDay(ctx context.Context, from, to time.Time) ([]RevenuePoint, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProduct, error)
}
