package review

import (
	"context"

	"github.com/google/uuid"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// Summary aggregates ratings for a product page header
type Summary struct {
	ProductID uuid.UUID `json:"product_id"`
	Count     int64     `json:"count"`
	Average   float64   `json:"average"`
}

// ReviewRepository defines the interface for review persistence
type ReviewRepository interface {
	shared.Repository[Review]
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) (*shared.Paginated[Review], error)
	FindByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (*Review, error)
	Summarize(ctx context.Context, productID uuid.UUID) (*Summary, error)
}
