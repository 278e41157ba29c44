package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	shared.Repository[Category]
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindActive(ctx context.Context) ([]Category, error)
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	shared.Repository[Product]
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) (*shared.Paginated[Product], error)
	FindFeatured(ctx context.Context, limit int) ([]Product, error)
	Search(ctx context.Context, filter shared.Filter) (*shared.Paginated[Product], error)
	FindVariant(ctx context.Context, variantID uuid.UUID) (*Variant, error)
}

// ComboRepository defines the interface for combo persistence
type ComboRepository interface {
	shared.Repository[Combo]
	FindBySlug(ctx context.Context, slug string) (*Combo, error)
	FindActive(ctx context.Context) ([]Combo, error)
}

// SizeRepository defines the interface for size option persistence
type SizeRepository interface {
	shared.Repository[Size]
	FindAllOrdered(ctx context.Context) ([]Size, error)
}

// CrustRepository defines the interface for crust option persistence
type CrustRepository interface {
	shared.Repository[Crust]
	FindAllOrdered(ctx context.Context) ([]Crust, error)
}
