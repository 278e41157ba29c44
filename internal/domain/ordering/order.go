package ordering

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// transitions is the complete state machine. Absent keys are terminal.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered},
}

// IsValid checks if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// NextStatuses lists the statuses reachable in one step. The back-office
// status dropdown is populated from this.
func (s OrderStatus) NextStatuses() []OrderStatus {
	next := transitions[s]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether no further transition is possible
func (s OrderStatus) IsTerminal() bool {
	return len(transitions[s]) == 0 && s.IsValid()
}

// PaymentMethod selects how the customer pays
type PaymentMethod string

const (
	PaymentMethodCOD     PaymentMethod = "cod"
	PaymentMethodGateway PaymentMethod = "gateway"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCOD || m == PaymentMethodGateway
}

// OrderItem is an immutable snapshot of a cart line at checkout time
type OrderItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	ItemType  CartItemType      `gorm:"type:varchar(20);not null"`
	VariantID *uuid.UUID        `gorm:"type:uuid"`
	ComboID   *uuid.UUID        `gorm:"type:uuid"`
	Name      string            `gorm:"type:varchar(250);not null"`
	Options   string            `gorm:"type:varchar(200)"`
	UnitPrice valueobject.Money `gorm:"type:decimal(15,2);not null"`
	Quantity  int               `gorm:"not null"`
	LineTotal valueobject.Money `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// Order is the checkout aggregate. Amounts and the shipping address are
// frozen at placement; only the status moves afterwards.
type Order struct {
	shared.BaseAggregateRoot
	Code            string                      `gorm:"type:varchar(30);not null;uniqueIndex"`
	CustomerID      uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Status          OrderStatus                 `gorm:"type:varchar(20);not null;index"`
	ReceiverName    string                      `gorm:"type:varchar(150);not null"`
	ReceiverPhone   string                      `gorm:"type:varchar(20);not null"`
	ShippingAddress valueobject.ShippingAddress `gorm:"embedded;embeddedPrefix:ship_"`
	Note            string                      `gorm:"type:varchar(500)"`
	PaymentMethod   PaymentMethod               `gorm:"type:varchar(20);not null"`
	CouponCode      string                      `gorm:"type:varchar(50)"`
	Subtotal        valueobject.Money           `gorm:"type:decimal(15,2);not null"`
	Discount        valueobject.Money           `gorm:"type:decimal(15,2);not null"`
	Total           valueobject.Money           `gorm:"type:decimal(15,2);not null"`
	PlacedAt        time.Time                   `gorm:"not null;index"`
	Items           []OrderItem                 `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder builds a pending order from checkout inputs. The address must
// be complete and the amounts must already satisfy
// total = subtotal - discount.
func NewOrder(customerID uuid.UUID, receiverName, receiverPhone string, address valueobject.ShippingAddress, note string, method PaymentMethod, couponCode string, subtotal, discount, total valueobject.Money) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Order must belong to a customer")
	}
	receiverName = strings.TrimSpace(receiverName)
	receiverPhone = strings.TrimSpace(receiverPhone)
	if receiverName == "" || receiverPhone == "" {
		return nil, shared.NewDomainError("INVALID_RECEIVER", "Receiver name and phone are required")
	}
	if !address.Complete() {
		return nil, shared.NewDomainError("INCOMPLETE_ADDRESS",
			fmt.Sprintf("Shipping address is missing: %s", strings.Join(address.MissingFields(), ", ")))
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}
	expected, err := subtotal.Sub(discount)
	if err != nil || !expected.Equals(total) {
		return nil, shared.NewDomainError("AMOUNT_MISMATCH", "Order total does not match subtotal minus discount")
	}
	now := time.Now()
	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              generateOrderCode(now),
		CustomerID:        customerID,
		Status:            StatusPending,
		ReceiverName:      receiverName,
		ReceiverPhone:     receiverPhone,
		ShippingAddress:   address,
		Note:              note,
		PaymentMethod:     method,
		CouponCode:        couponCode,
		Subtotal:          subtotal,
		Discount:          discount,
		Total:             total,
		PlacedAt:          now,
	}, nil
}

// AddItem snapshots a cart line onto the order
func (o *Order) AddItem(line CartItem) {
	o.Items = append(o.Items, OrderItem{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    o.ID,
		ItemType:   line.ItemType,
		VariantID:  line.VariantID,
		ComboID:    line.ComboID,
		Name:       line.Name,
		Options:    line.Options,
		UnitPrice:  line.UnitPrice,
		Quantity:   line.Quantity,
		LineTotal:  line.LineTotal(),
	})
}

// TransitionTo moves the order to the target status if the state machine
// allows it
func (o *Order) TransitionTo(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status: %s", target))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_TRANSITION",
			fmt.Sprintf("Cannot move order from %s to %s", o.Status, target))
	}
	o.Status = target
	o.Touch()
	return nil
}

// Cancel moves the order to cancelled. Unlike TransitionTo it is not
// bound to the forward transition table: cancellation stays available
// at any point before the order is delivered, shipped included.
func (o *Order) Cancel() error {
	if !o.CanBeCancelled() {
		return shared.NewDomainError("INVALID_TRANSITION",
			fmt.Sprintf("Cannot cancel an order that is %s", o.Status))
	}
	o.Status = StatusCancelled
	o.Touch()
	return nil
}

// CanBeCancelled reports whether cancellation is still possible
func (o *Order) CanBeCancelled() bool {
	return o.Status != StatusDelivered && o.Status != StatusCancelled
}

func generateOrderCode(t time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("PZ-%s-%s", t.Format("20060102"), suffix)
}
