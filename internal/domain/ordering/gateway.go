package ordering

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// ErrGatewayUnavailable indicates the payment gateway could not be
// reached or answered with a transport-level error
var ErrGatewayUnavailable = shared.NewDomainError("PAYMENT_GATEWAY_UNAVAILABLE", "payment gateway is unavailable")

// ChargeRequest asks the gateway to collect the order total
type ChargeRequest struct {
	OrderCode string
	Amount    valueobject.Money
}

// ChargeResult is the gateway's answer to a charge attempt. A declined
// charge is a result, not an error; errors are reserved for transport
// failures.
type ChargeResult struct {
	Approved       bool
	TransactionRef string
	Reason         string
}

// PaymentGateway collects online payments for orders
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
