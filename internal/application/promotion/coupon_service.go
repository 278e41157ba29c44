package promotion

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pizzeria/backend/internal/domain/promotion"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// CreateCouponRequest creates a discount code
type CreateCouponRequest struct {
	Code          string          `json:"code" binding:"required,max=50"`
	Description   string          `json:"description" binding:"max=300"`
	Percentage    int             `json:"percentage" binding:"min=0,max=100"`
	Amount        decimal.Decimal `json:"amount"`
	MaxDiscount   decimal.Decimal `json:"max_discount"`
	MinOrderValue decimal.Decimal `json:"min_order_value"`
	StartsAt      time.Time       `json:"starts_at" binding:"required"`
	ExpiresAt     time.Time       `json:"expires_at" binding:"required"`
	UsageLimit    int             `json:"usage_limit"`
}

// CouponResponse represents a coupon in API responses
type CouponResponse struct {
	ID            uuid.UUID         `json:"id"`
	Code          string            `json:"code"`
	Description   string            `json:"description,omitempty"`
	Percentage    int               `json:"percentage"`
	Amount        valueobject.Money `json:"amount"`
	MaxDiscount   valueobject.Money `json:"max_discount"`
	MinOrderValue valueobject.Money `json:"min_order_value"`
	StartsAt      time.Time         `json:"starts_at"`
	ExpiresAt     time.Time         `json:"expires_at"`
	UsageLimit    int               `json:"usage_limit"`
	UsedCount     int               `json:"used_count"`
	Active        bool              `json:"active"`
}

// ToCouponResponse maps a coupon aggregate to its response shape
func ToCouponResponse(c *promotion.Coupon) CouponResponse {
	return CouponResponse{
		ID:            c.ID,
		Code:          c.Code,
		Description:   c.Description,
		Percentage:    c.Percentage,
		Amount:        c.Amount,
		MaxDiscount:   c.MaxDiscount,
		MinOrderValue: c.MinOrderValue,
		StartsAt:      c.StartsAt,
		ExpiresAt:     c.ExpiresAt,
		UsageLimit:    c.UsageLimit,
		UsedCount:     c.UsedCount,
		Active:        c.Active,
	}
}

// PreviewResponse is the discount preview shown when a code is entered
// on the checkout page
type PreviewResponse struct {
	Code     string            `json:"code"`
	Discount valueobject.Money `json:"discount"`
}

// CouponService manages discount codes
type CouponService struct {
	couponRepo promotion.CouponRepository
}

// NewCouponService creates a new CouponService
func NewCouponService(couponRepo promotion.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// Create creates a coupon, rejecting duplicate codes
func (s *CouponService) Create(ctx context.Context, req CreateCouponRequest) (*CouponResponse, error) {
	coupon, err := promotion.NewCoupon(req.Code, req.Description, req.Percentage,
		valueobject.NewMoneyVND(req.Amount), valueobject.NewMoneyVND(req.MaxDiscount),
		valueobject.NewMoneyVND(req.MinOrderValue),
		req.StartsAt, req.ExpiresAt, req.UsageLimit)
	if err != nil {
		return nil, err
	}

	if _, err := s.couponRepo.FindByCode(ctx, coupon.Code); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Coupon with this code already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := s.couponRepo.Save(ctx, coupon); err != nil {
		return nil, err
	}
	resp := ToCouponResponse(coupon)
	return &resp, nil
}

// Deactivate withdraws a coupon
func (s *CouponService) Deactivate(ctx context.Context, id uuid.UUID) (*CouponResponse, error) {
	coupon, err := s.couponRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	coupon.Deactivate()
	if err := s.couponRepo.Save(ctx, coupon); err != nil {
		return nil, err
	}
	resp := ToCouponResponse(coupon)
	return &resp, nil
}

// Delete removes a coupon
func (s *CouponService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.couponRepo.Delete(ctx, id)
}

// Get retrieves a coupon
func (s *CouponService) Get(ctx context.Context, id uuid.UUID) (*CouponResponse, error) {
	coupon, err := s.couponRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCouponResponse(coupon)
	return &resp, nil
}

// List lists coupons for the back office
func (s *CouponService) List(ctx context.Context, filter shared.Filter) ([]CouponResponse, error) {
	coupons, err := s.couponRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]CouponResponse, len(coupons))
	for i := range coupons {
		responses[i] = ToCouponResponse(&coupons[i])
	}
	return responses, nil
}

// Preview computes the discount a code would give on a subtotal without
// redeeming it
func (s *CouponService) Preview(ctx context.Context, code string, subtotal valueobject.Money) (*PreviewResponse, error) {
	coupon, err := s.couponRepo.FindByCode(ctx, promotion.NormalizeCode(code))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("COUPON_NOT_FOUND", "Coupon code does not exist")
		}
		return nil, err
	}
	discount, err := coupon.Discount(subtotal, time.Now())
	if err != nil {
		return nil, err
	}
	return &PreviewResponse{Code: coupon.Code, Discount: discount}, nil
}
