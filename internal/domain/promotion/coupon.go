package promotion

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// Coupon is a discount code applied at checkout. A coupon may carry a
// percentage, a fixed amount, or both; the percentage wins when both are
// set. MaxDiscount, when positive, caps a percentage discount.
type Coupon struct {
	shared.BaseAggregateRoot
	Code          string            `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description   string            `gorm:"type:varchar(300)"`
	Percentage    int               `gorm:"not null;default:0"`
	Amount        valueobject.Money `gorm:"type:decimal(15,2);not null"`
	MaxDiscount   valueobject.Money `gorm:"type:decimal(15,2);not null"`
	MinOrderValue valueobject.Money `gorm:"type:decimal(15,2);not null"`
	StartsAt      time.Time         `gorm:"not null"`
	ExpiresAt     time.Time         `gorm:"not null"`
	UsageLimit    int               `gorm:"not null;default:0"`
	UsedCount     int               `gorm:"not null;default:0"`
	Active        bool              `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Coupon) TableName() string {
	return "coupons"
}

// NewCoupon creates a coupon. Codes are stored uppercase and matched
// case-insensitively. A usage limit of zero means unlimited.
func NewCoupon(code, description string, percentage int, amount, maxDiscount, minOrderValue valueobject.Money, startsAt, expiresAt time.Time, usageLimit int) (*Coupon, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Coupon code cannot be empty")
	}
	if percentage < 0 || percentage > 100 {
		return nil, shared.NewDomainError("INVALID_PERCENTAGE", "Percentage must be between 0 and 100")
	}
	if percentage == 0 && !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Coupon must carry a percentage or a fixed amount")
	}
	if !expiresAt.After(startsAt) {
		return nil, shared.NewDomainError("INVALID_WINDOW", "Coupon expiry must be after start")
	}
	if usageLimit < 0 {
		usageLimit = 0
	}
	return &Coupon{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Description:       description,
		Percentage:        percentage,
		Amount:            amount,
		MaxDiscount:       maxDiscount,
		MinOrderValue:     minOrderValue,
		StartsAt:          startsAt,
		ExpiresAt:         expiresAt,
		UsageLimit:        usageLimit,
		Active:            true,
	}, nil
}

// NormalizeCode canonicalizes a user-entered coupon code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// UsableAt reports whether the coupon can be redeemed at the given
// instant, ignoring the order amount
func (c *Coupon) UsableAt(t time.Time) error {
	if !c.Active {
		return shared.NewDomainError("COUPON_INACTIVE", "Coupon is no longer active")
	}
	if t.Before(c.StartsAt) {
		return shared.NewDomainError("COUPON_NOT_STARTED", "Coupon is not active yet")
	}
	if !t.Before(c.ExpiresAt) {
		return shared.NewDomainError("COUPON_EXPIRED", "Coupon has expired")
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return shared.NewDomainError("COUPON_EXHAUSTED", "Coupon usage limit reached")
	}
	return nil
}

// Discount computes the discount for a subtotal at the given instant.
// A percentage takes precedence over the fixed amount and is capped by
// MaxDiscount when one is set. The result never exceeds the subtotal.
func (c *Coupon) Discount(subtotal valueobject.Money, at time.Time) (valueobject.Money, error) {
	if err := c.UsableAt(at); err != nil {
		return valueobject.ZeroVND(), err
	}
	if c.MinOrderValue.IsPositive() && subtotal.LessThan(c.MinOrderValue) {
		return valueobject.ZeroVND(), shared.NewDomainError("COUPON_MIN_ORDER",
			"Order subtotal is below the coupon minimum")
	}

	var discount valueobject.Money
	if c.Percentage > 0 {
		raw := subtotal.Amount().Mul(decimal.NewFromInt(int64(c.Percentage))).Div(decimal.NewFromInt(100))
		// VND has no subunits
		discount = valueobject.NewMoneyVND(raw.RoundDown(0))
		if c.MaxDiscount.IsPositive() && c.MaxDiscount.LessThan(discount) {
			discount = c.MaxDiscount
		}
	} else {
		discount = c.Amount
	}
	if subtotal.LessThan(discount) {
		discount = subtotal
	}
	return discount, nil
}

// MarkUsed bumps the redemption counter after a successful checkout
func (c *Coupon) MarkUsed() {
	c.UsedCount++
	c.Touch()
}

// Deactivate withdraws the coupon
func (c *Coupon) Deactivate() {
	c.Active = false
	c.Touch()
}
