package content

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/shared"
)

// BannerRepository defines the interface for banner persistence
type BannerRepository interface {
	shared.Repository[Banner]
	FindActive(ctx context.Context) ([]Banner, error)
}

// NewsRepository defines the interface for news persistence
type NewsRepository interface {
	shared.Repository[News]
	FindBySlug(ctx context.Context, slug string) (*News, error)
	FindPublished(ctx context.Context, filter shared.Filter) (*shared.Paginated[News], error)
}

// FAQRepository defines the interface for FAQ persistence
type FAQRepository interface {
	shared.Repository[FAQ]
	FindPublished(ctx context.Context) ([]FAQ, error)
	FindUnanswered(ctx context.Context, filter shared.Filter) (*shared.Paginated[FAQ], error)
}
