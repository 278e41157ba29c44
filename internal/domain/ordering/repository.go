package ordering

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// CartRepository defines the interface for cart persistence
type CartRepository interface {
	shared.Repository[Cart]
	FindByCustomer(ctx context.Context, customerID uuid.UUID) (*Cart, error)
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	shared.Repository[Order]
	FindByCode(ctx context.Context, code string) (*Order, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (*shared.Paginated[Order], error)
	FindByStatus(ctx context.Context, status OrderStatus, filter shared.Filter) (*shared.Paginated[Order], error)
	CountByStatus(ctx context.Context) (map[OrderStatus]int64, error)
	FindPlacedBetween(ctx context.Context, from, to time.Time) ([]Order, error)
}

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	shared.Repository[Payment]
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]Payment, error)
}
