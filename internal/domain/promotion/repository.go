package promotion

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/shared"
)

// CouponRepository defines the interface for coupon persistence
type CouponRepository interface {
	shared.Repository[Coupon]
	FindByCode(ctx context.Context, code string) (*Coupon, error)
}
