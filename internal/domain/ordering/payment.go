package ordering

import (
	"github.com/google/uuid"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// PaymentStatus tracks the gateway attempt for an order
type PaymentStatus string

const (
	PaymentInitiated PaymentStatus = "initiated"
	PaymentPaid      PaymentStatus = "paid"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment records one payment attempt. A failed gateway attempt leaves
// the order in place; there is no compensation, the customer retries or
// contacts support.
type Payment struct {
	shared.BaseEntity
	OrderID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	Method         PaymentMethod     `gorm:"type:varchar(20);not null"`
	Status         PaymentStatus     `gorm:"type:varchar(20);not null"`
	Amount         valueobject.Money `gorm:"type:decimal(15,2);not null"`
	TransactionRef string            `gorm:"type:varchar(100)"`
	FailureReason  string            `gorm:"type:varchar(300)"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment opens a payment attempt for an order
func NewPayment(orderID uuid.UUID, method PaymentMethod, amount valueobject.Money) (*Payment, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Payment must reference an order")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}
	return &Payment{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		Method:     method,
		Status:     PaymentInitiated,
		Amount:     amount,
	}, nil
}

// MarkPaid records a successful gateway confirmation
func (p *Payment) MarkPaid(transactionRef string) error {
	if p.Status != PaymentInitiated {
		return shared.ErrInvalidState
	}
	p.Status = PaymentPaid
	p.TransactionRef = transactionRef
	p.Touch()
	return nil
}

// MarkFailed records a gateway rejection
func (p *Payment) MarkFailed(reason string) error {
	if p.Status != PaymentInitiated {
		return shared.ErrInvalidState
	}
	p.Status = PaymentFailed
	p.FailureReason = reason
	p.Touch()
	return nil
}
