package ordering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

func testAddress() valueobject.ShippingAddress {
	return valueobject.NewShippingAddress(
		valueobject.AdminUnit{Code: "79", Name: "Ho Chi Minh"},
		valueobject.AdminUnit{Code: "760", Name: "Quan 1"},
		valueobject.AdminUnit{Code: "26734", Name: "Phuong Ben Nghe"},
		"12 Le Loi",
	)
}

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder(uuid.New(), "Nguyen Van A", "0901234567", testAddress(), "",
		PaymentMethodCOD, "", vnd(300000), vnd(0), vnd(300000))
	require.NoError(t, err)
	return o
}

func TestOrderStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusShipped, false},
		{StatusPending, StatusDelivered, false},
		{StatusConfirmed, StatusShipped, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusDelivered, false},
		{StatusConfirmed, StatusPending, false},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusCancelled, false},
		{StatusShipped, StatusConfirmed, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusDelivered, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_NextStatuses(t *testing.T) {
	assert.ElementsMatch(t, []OrderStatus{StatusConfirmed, StatusCancelled}, StatusPending.NextStatuses())
	assert.ElementsMatch(t, []OrderStatus{StatusShipped, StatusCancelled}, StatusConfirmed.NextStatuses())
	assert.ElementsMatch(t, []OrderStatus{StatusDelivered}, StatusShipped.NextStatuses())
	assert.Empty(t, StatusDelivered.NextStatuses())
	assert.Empty(t, StatusCancelled.NextStatuses())
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusShipped.IsTerminal())
	assert.False(t, OrderStatus("bogus").IsTerminal())
}

func TestNewOrder_Validation(t *testing.T) {
	addr := testAddress()

	_, err := NewOrder(uuid.Nil, "A", "0901", addr, "", PaymentMethodCOD, "", vnd(1000), vnd(0), vnd(1000))
	assert.Error(t, err)

	_, err = NewOrder(uuid.New(), "  ", "0901", addr, "", PaymentMethodCOD, "", vnd(1000), vnd(0), vnd(1000))
	assert.Error(t, err)

	incomplete := addr
	incomplete.WardCode = ""
	_, err = NewOrder(uuid.New(), "A", "0901", incomplete, "", PaymentMethodCOD, "", vnd(1000), vnd(0), vnd(1000))
	assert.Error(t, err, "incomplete address must be rejected before any side effect")

	_, err = NewOrder(uuid.New(), "A", "0901", addr, "", PaymentMethod("wire"), "", vnd(1000), vnd(0), vnd(1000))
	assert.Error(t, err)

	_, err = NewOrder(uuid.New(), "A", "0901", addr, "", PaymentMethodCOD, "", vnd(1000), vnd(100), vnd(1000))
	assert.Error(t, err, "total must equal subtotal minus discount")
}

func TestNewOrder_Defaults(t *testing.T) {
	o := newTestOrder(t)
	assert.Equal(t, StatusPending, o.Status)
	assert.NotEmpty(t, o.Code)
	assert.True(t, o.CanBeCancelled())
}

func TestOrder_TransitionTo(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.TransitionTo(StatusConfirmed))
	require.NoError(t, o.TransitionTo(StatusShipped))
	assert.Error(t, o.TransitionTo(StatusCancelled), "the forward table has no shipped to cancelled edge")

	require.NoError(t, o.TransitionTo(StatusDelivered))
	assert.Error(t, o.TransitionTo(StatusShipped))
	assert.Error(t, o.TransitionTo(OrderStatus("bogus")))
}

func TestOrder_Cancel(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.Cancel())
	assert.Equal(t, StatusCancelled, o.Status)
	assert.Error(t, o.Cancel(), "cancelled is terminal")
}

func TestOrder_CancelAfterShipping(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.TransitionTo(StatusConfirmed))
	require.NoError(t, o.TransitionTo(StatusShipped))

	// Cancel is not bound to the forward transition table
	assert.True(t, o.CanBeCancelled())
	require.NoError(t, o.Cancel())
	assert.Equal(t, StatusCancelled, o.Status)

	delivered := newTestOrder(t)
	require.NoError(t, delivered.TransitionTo(StatusConfirmed))
	require.NoError(t, delivered.TransitionTo(StatusShipped))
	require.NoError(t, delivered.TransitionTo(StatusDelivered))
	assert.False(t, delivered.CanBeCancelled())
	assert.Error(t, delivered.Cancel())
}

func TestOrder_AddItem(t *testing.T) {
	o := newTestOrder(t)
	variantID := uuid.New()
	o.AddItem(CartItem{
		ItemType:  CartItemVariant,
		VariantID: &variantID,
		Name:      "Pizza Hai San (L, Thin)",
		UnitPrice: vnd(150000),
		Quantity:  2,
	})

	require.Len(t, o.Items, 1)
	assert.Equal(t, o.ID, o.Items[0].OrderID)
	assert.True(t, o.Items[0].LineTotal.Equals(vnd(300000)))
}

func TestPayment_Lifecycle(t *testing.T) {
	p, err := NewPayment(uuid.New(), PaymentMethodGateway, vnd(300000))
	require.NoError(t, err)
	assert.Equal(t, PaymentInitiated, p.Status)

	require.NoError(t, p.MarkPaid("TXN-123"))
	assert.Error(t, p.MarkFailed("late rejection"), "settled payments cannot change state")

	p2, err := NewPayment(uuid.New(), PaymentMethodGateway, vnd(300000))
	require.NoError(t, err)
	require.NoError(t, p2.MarkFailed("card declined"))
	assert.Equal(t, "card declined", p2.FailureReason)
	assert.Error(t, p2.MarkPaid("TXN-456"))

	_, err = NewPayment(uuid.Nil, PaymentMethodCOD, vnd(1000))
	assert.Error(t, err)
}
