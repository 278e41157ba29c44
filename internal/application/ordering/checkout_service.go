package ordering

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pizzeria/backend/internal/domain/ordering"
	"github.com/pizzeria/backend/internal/domain/promotion"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// CheckoutService turns the cart into an order. The address gate runs
// before any write; a failed gateway charge leaves the created order
// pending alongside a failed payment record.
type CheckoutService struct {
	cartRepo    ordering.CartRepository
	orderRepo   ordering.OrderRepository
	paymentRepo ordering.PaymentRepository
	couponRepo  promotion.CouponRepository
	gateway     ordering.PaymentGateway
	logger      *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	cartRepo ordering.CartRepository,
	orderRepo ordering.OrderRepository,
	paymentRepo ordering.PaymentRepository,
	couponRepo promotion.CouponRepository,
	gateway ordering.PaymentGateway,
	logger *zap.Logger,
) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		couponRepo:  couponRepo,
		gateway:     gateway,
		logger:      logger,
	}
}

// Quote previews the checkout amounts for the current cart without
// placing an order
func (s *CheckoutService) Quote(ctx context.Context, customerID uuid.UUID, couponCode string) (*QuoteResponse, error) {
	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, shared.NewDomainError("EMPTY_CART", "Cart is empty")
	}

	subtotal := cart.Subtotal
	discount := valueobject.ZeroVND()
	code := ""
	if strings.TrimSpace(couponCode) != "" {
		coupon, err := s.resolveCoupon(ctx, couponCode)
		if err != nil {
			return nil, err
		}
		discount, err = coupon.Discount(subtotal, time.Now())
		if err != nil {
			return nil, err
		}
		code = coupon.Code
	}

	total, err := subtotal.Sub(discount)
	if err != nil {
		return nil, err
	}
	return &QuoteResponse{
		Subtotal:   subtotal,
		Discount:   discount,
		Total:      total,
		CouponCode: code,
	}, nil
}

// PlaceOrder validates the shipping address, freezes the cart into an
// order and records the payment attempt. Gateway orders are charged
// synchronously; COD payments stay initiated until delivery.
func (s *CheckoutService) PlaceOrder(ctx context.Context, customerID uuid.UUID, req CheckoutRequest) (*PlaceOrderResponse, error) {
	address := req.Address.ToShippingAddress()
	if !address.Complete() {
		return nil, shared.NewDomainError("INCOMPLETE_ADDRESS",
			fmt.Sprintf("Shipping address is missing: %s", strings.Join(address.MissingFields(), ", ")))
	}

	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, shared.NewDomainError("EMPTY_CART", "Cart is empty")
	}

	subtotal := cart.Subtotal
	discount := valueobject.ZeroVND()
	var coupon *promotion.Coupon
	if strings.TrimSpace(req.CouponCode) != "" {
		coupon, err = s.resolveCoupon(ctx, req.CouponCode)
		if err != nil {
			return nil, err
		}
		discount, err = coupon.Discount(subtotal, time.Now())
		if err != nil {
			return nil, err
		}
	}
	total, err := subtotal.Sub(discount)
	if err != nil {
		return nil, err
	}

	couponCode := ""
	if coupon != nil {
		couponCode = coupon.Code
	}
	method := ordering.PaymentMethod(req.PaymentMethod)
	order, err := ordering.NewOrder(customerID, req.ReceiverName, req.ReceiverPhone,
		address, req.Note, method, couponCode, subtotal, discount, total)
	if err != nil {
		return nil, err
	}
	for _, line := range cart.Items {
		order.AddItem(line)
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	s.logger.Info("order placed",
		zap.String("order_code", order.Code),
		zap.String("customer_id", customerID.String()),
		zap.String("total", order.Total.Amount().String()),
		zap.String("payment_method", string(method)))

	if coupon != nil {
		coupon.MarkUsed()
		if err := s.couponRepo.Save(ctx, coupon); err != nil {
			s.logger.Warn("failed to record coupon redemption",
				zap.String("coupon_code", coupon.Code), zap.Error(err))
		}
	}

	cart.Clear()
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		s.logger.Warn("failed to clear cart after checkout",
			zap.String("order_code", order.Code), zap.Error(err))
	}

	payment, err := ordering.NewPayment(order.ID, method, total)
	if err != nil {
		return nil, err
	}
	if method == ordering.PaymentMethodGateway {
		s.charge(ctx, order, payment)
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	return &PlaceOrderResponse{
		Order:   ToOrderResponse(order),
		Payment: ToPaymentResponse(payment),
	}, nil
}

// charge runs the synchronous gateway attempt. Failures are recorded on
// the payment and never undo the order.
func (s *CheckoutService) charge(ctx context.Context, order *ordering.Order, payment *ordering.Payment) {
	result, err := s.gateway.Charge(ctx, ordering.ChargeRequest{
		OrderCode: order.Code,
		Amount:    order.Total,
	})
	if err != nil {
		s.logger.Error("payment gateway charge failed",
			zap.String("order_code", order.Code), zap.Error(err))
		_ = payment.MarkFailed("payment gateway unavailable")
		return
	}
	if !result.Approved {
		s.logger.Warn("payment declined",
			zap.String("order_code", order.Code), zap.String("reason", result.Reason))
		_ = payment.MarkFailed(result.Reason)
		return
	}
	_ = payment.MarkPaid(result.TransactionRef)
}

func (s *CheckoutService) resolveCoupon(ctx context.Context, code string) (*promotion.Coupon, error) {
	coupon, err := s.couponRepo.FindByCode(ctx, promotion.NormalizeCode(code))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("COUPON_NOT_FOUND", "Coupon code does not exist")
		}
		return nil, err
	}
	return coupon, nil
}
