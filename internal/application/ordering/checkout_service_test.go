package ordering

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pizzeria/backend/internal/domain/ordering"
	"github.com/pizzeria/backend/internal/domain/promotion"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// ============================================================================
// Mocks
// ============================================================================

// MockCartRepository is a mock implementation of CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Cart), args.Error(1)
}

func (m *MockCartRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Cart, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, entity *ordering.Cart) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*ordering.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Cart), args.Error(1)
}

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, entity *ordering.Order) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindByCode(ctx context.Context, code string) (*ordering.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (*shared.Paginated[ordering.Order], error) {
	args := m.Called(ctx, customerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[ordering.Order]), args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, status ordering.OrderStatus, filter shared.Filter) (*shared.Paginated[ordering.Order], error) {
	args := m.Called(ctx, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[ordering.Order]), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context) (map[ordering.OrderStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[ordering.OrderStatus]int64), args.Error(1)
}

func (m *MockOrderRepository) FindPlacedBetween(ctx context.Context, from, to time.Time) ([]ordering.Order, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Order), args.Error(1)
}

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Payment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, entity *ordering.Payment) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]ordering.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Payment), args.Error(1)
}

// MockCouponRepository is a mock implementation of CouponRepository
type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*promotion.Coupon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promotion.Coupon), args.Error(1)
}

func (m *MockCouponRepository) FindAll(ctx context.Context, filter shared.Filter) ([]promotion.Coupon, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]promotion.Coupon), args.Error(1)
}

func (m *MockCouponRepository) Save(ctx context.Context, entity *promotion.Coupon) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockCouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCouponRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCouponRepository) FindByCode(ctx context.Context, code string) (*promotion.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promotion.Coupon), args.Error(1)
}

// MockPaymentGateway is a mock implementation of PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) Charge(ctx context.Context, req ordering.ChargeRequest) (*ordering.ChargeResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.ChargeResult), args.Error(1)
}

// ============================================================================
// Helpers
// ============================================================================

func vnd(amount int64) valueobject.Money {
	return valueobject.NewMoneyVNDFromInt(amount)
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var de *shared.DomainError
	require.True(t, errors.As(err, &de))
	return de.Code
}

func buildCart(t *testing.T, customerID uuid.UUID) *ordering.Cart {
	t.Helper()
	cart, err := ordering.NewCart(customerID)
	require.NoError(t, err)
	require.NoError(t, cart.AddVariantLine(uuid.New(), "Pizza Hai San", "Medium, Thin", "", vnd(150000), 2))
	return cart
}

func validAddress() AddressRequest {
	return AddressRequest{
		ProvinceCode: "79", ProvinceName: "Ho Chi Minh",
		DistrictCode: "760", DistrictName: "Quan 1",
		WardCode: "26734", WardName: "Phuong Ben Nghe",
		Detail: "12 Le Loi",
	}
}

func validCheckout() CheckoutRequest {
	return CheckoutRequest{
		ReceiverName:  "Nguyen Van A",
		ReceiverPhone: "0901234567",
		Address:       validAddress(),
		PaymentMethod: "cod",
	}
}

type checkoutFixture struct {
	cartRepo    *MockCartRepository
	orderRepo   *MockOrderRepository
	paymentRepo *MockPaymentRepository
	couponRepo  *MockCouponRepository
	gateway     *MockPaymentGateway
	service     *CheckoutService
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		cartRepo:    new(MockCartRepository),
		orderRepo:   new(MockOrderRepository),
		paymentRepo: new(MockPaymentRepository),
		couponRepo:  new(MockCouponRepository),
		gateway:     new(MockPaymentGateway),
	}
	f.service = NewCheckoutService(f.cartRepo, f.orderRepo, f.paymentRepo, f.couponRepo, f.gateway, nil)
	return f
}

// ============================================================================
// Tests
// ============================================================================

func TestCheckoutService_PlaceOrder_AddressGate(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	cases := []struct {
		name   string
		mutate func(*AddressRequest)
	}{
		{"missing province", func(a *AddressRequest) { a.ProvinceCode = "" }},
		{"missing district", func(a *AddressRequest) { a.DistrictCode = "" }},
		{"missing ward", func(a *AddressRequest) { a.WardCode = "" }},
		{"blank detail", func(a *AddressRequest) { a.Detail = "   " }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newCheckoutFixture()
			req := validCheckout()
			tc.mutate(&req.Address)

			_, err := f.service.PlaceOrder(ctx, customerID, req)

			require.Error(t, err)
			assert.Equal(t, "INCOMPLETE_ADDRESS", domainCode(t, err))
			f.cartRepo.AssertNotCalled(t, "FindByCustomer", mock.Anything, mock.Anything)
			f.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestCheckoutService_PlaceOrder_COD(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	cart := buildCart(t, customerID)

	f := newCheckoutFixture()
	f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
	f.cartRepo.On("Save", ctx, cart).Return(nil)
	f.orderRepo.On("Save", ctx, mock.AnythingOfType("*ordering.Order")).Return(nil)
	f.paymentRepo.On("Save", ctx, mock.AnythingOfType("*ordering.Payment")).Return(nil)

	resp, err := f.service.PlaceOrder(ctx, customerID, validCheckout())

	require.NoError(t, err)
	assert.Equal(t, ordering.StatusPending, resp.Order.Status)
	assert.True(t, resp.Order.Subtotal.Equals(vnd(300000)))
	assert.True(t, resp.Order.Total.Equals(vnd(300000)))
	assert.Len(t, resp.Order.Items, 1)
	assert.Equal(t, ordering.PaymentInitiated, resp.Payment.Status)
	assert.True(t, cart.IsEmpty())
	f.gateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything)
}

func TestCheckoutService_PlaceOrder_CouponApplied(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	cart := buildCart(t, customerID)

	// 10 percent of 300000 is 30000, capped at 20000
	coupon, err := promotion.NewCoupon("Summer10", "", 10,
		valueobject.ZeroVND(), vnd(20000), vnd(100000),
		time.Now().Add(-time.Hour), time.Now().Add(24*time.Hour), 0)
	require.NoError(t, err)

	f := newCheckoutFixture()
	f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
	f.cartRepo.On("Save", ctx, cart).Return(nil)
	f.couponRepo.On("FindByCode", ctx, "SUMMER10").Return(coupon, nil)
	f.couponRepo.On("Save", ctx, coupon).Return(nil)
	f.orderRepo.On("Save", ctx, mock.AnythingOfType("*ordering.Order")).Return(nil)
	f.paymentRepo.On("Save", ctx, mock.AnythingOfType("*ordering.Payment")).Return(nil)

	req := validCheckout()
	req.CouponCode = "  summer10 "
	resp, err := f.service.PlaceOrder(ctx, customerID, req)

	require.NoError(t, err)
	assert.Equal(t, "SUMMER10", resp.Order.CouponCode)
	assert.True(t, resp.Order.Discount.Equals(vnd(20000)))
	assert.True(t, resp.Order.Total.Equals(vnd(280000)))
	assert.Equal(t, 1, coupon.UsedCount)
	assert.True(t, resp.Payment.Amount.Equals(vnd(280000)))
}

func TestCheckoutService_PlaceOrder_CouponBelowMinimum(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	cart := buildCart(t, customerID)

	coupon, err := promotion.NewCoupon("BIG50", "", 50,
		valueobject.ZeroVND(), valueobject.ZeroVND(), vnd(500000),
		time.Now().Add(-time.Hour), time.Now().Add(24*time.Hour), 0)
	require.NoError(t, err)

	f := newCheckoutFixture()
	f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
	f.couponRepo.On("FindByCode", ctx, "BIG50").Return(coupon, nil)

	req := validCheckout()
	req.CouponCode = "BIG50"
	_, placeErr := f.service.PlaceOrder(ctx, customerID, req)

	require.Error(t, placeErr)
	assert.Equal(t, "COUPON_MIN_ORDER", domainCode(t, placeErr))
	f.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	assert.False(t, cart.IsEmpty())
}

func TestCheckoutService_PlaceOrder_GatewayApproved(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	cart := buildCart(t, customerID)

	f := newCheckoutFixture()
	f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
	f.cartRepo.On("Save", ctx, cart).Return(nil)
	f.orderRepo.On("Save", ctx, mock.AnythingOfType("*ordering.Order")).Return(nil)
	f.paymentRepo.On("Save", ctx, mock.AnythingOfType("*ordering.Payment")).Return(nil)
	f.gateway.On("Charge", ctx, mock.MatchedBy(func(req ordering.ChargeRequest) bool {
		return req.Amount.Equals(vnd(300000))
	})).Return(&ordering.ChargeResult{Approved: true, TransactionRef: "txn-123"}, nil)

	req := validCheckout()
	req.PaymentMethod = "gateway"
	resp, err := f.service.PlaceOrder(ctx, customerID, req)

	require.NoError(t, err)
	assert.Equal(t, ordering.PaymentPaid, resp.Payment.Status)
	assert.Equal(t, "txn-123", resp.Payment.TransactionRef)
	f.gateway.AssertExpectations(t)
}

func TestCheckoutService_PlaceOrder_GatewayFailureKeepsOrder(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("gateway unavailable", func(t *testing.T) {
		cart := buildCart(t, customerID)
		f := newCheckoutFixture()
		f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
		f.cartRepo.On("Save", ctx, cart).Return(nil)
		f.orderRepo.On("Save", ctx, mock.AnythingOfType("*ordering.Order")).Return(nil)
		f.paymentRepo.On("Save", ctx, mock.AnythingOfType("*ordering.Payment")).Return(nil)
		f.gateway.On("Charge", ctx, mock.Anything).Return(nil, ordering.ErrGatewayUnavailable)

		req := validCheckout()
		req.PaymentMethod = "gateway"
		resp, err := f.service.PlaceOrder(ctx, customerID, req)

		require.NoError(t, err)
		assert.Equal(t, ordering.StatusPending, resp.Order.Status)
		assert.Equal(t, ordering.PaymentFailed, resp.Payment.Status)
		f.orderRepo.AssertExpectations(t)
		f.paymentRepo.AssertExpectations(t)
	})

	t.Run("charge declined", func(t *testing.T) {
		cart := buildCart(t, customerID)
		f := newCheckoutFixture()
		f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
		f.cartRepo.On("Save", ctx, cart).Return(nil)
		f.orderRepo.On("Save", ctx, mock.AnythingOfType("*ordering.Order")).Return(nil)
		f.paymentRepo.On("Save", ctx, mock.AnythingOfType("*ordering.Payment")).Return(nil)
		f.gateway.On("Charge", ctx, mock.Anything).
			Return(&ordering.ChargeResult{Approved: false, Reason: "insufficient funds"}, nil)

		req := validCheckout()
		req.PaymentMethod = "gateway"
		resp, err := f.service.PlaceOrder(ctx, customerID, req)

		require.NoError(t, err)
		assert.Equal(t, ordering.StatusPending, resp.Order.Status)
		assert.Equal(t, ordering.PaymentFailed, resp.Payment.Status)
		assert.Equal(t, "insufficient funds", resp.Payment.FailureReason)
	})
}

func TestCheckoutService_PlaceOrder_EmptyCart(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	cart, err := ordering.NewCart(customerID)
	require.NoError(t, err)

	f := newCheckoutFixture()
	f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)

	_, placeErr := f.service.PlaceOrder(ctx, customerID, validCheckout())

	require.Error(t, placeErr)
	assert.Equal(t, "EMPTY_CART", domainCode(t, placeErr))
}

func TestCheckoutService_Quote(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("without coupon", func(t *testing.T) {
		cart := buildCart(t, customerID)
		f := newCheckoutFixture()
		f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)

		quote, err := f.service.Quote(ctx, customerID, "")

		require.NoError(t, err)
		assert.True(t, quote.Subtotal.Equals(vnd(300000)))
		assert.True(t, quote.Discount.IsZero())
		assert.True(t, quote.Total.Equals(vnd(300000)))
	})

	t.Run("unknown coupon", func(t *testing.T) {
		cart := buildCart(t, customerID)
		f := newCheckoutFixture()
		f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
		f.couponRepo.On("FindByCode", ctx, "NOPE").Return(nil, shared.ErrNotFound)

		_, err := f.service.Quote(ctx, customerID, "nope")

		require.Error(t, err)
		assert.Equal(t, "COUPON_NOT_FOUND", domainCode(t, err))
	})
}
