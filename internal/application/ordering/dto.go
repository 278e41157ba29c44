package ordering

import (
	"time"

	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/domain/ordering"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// AddVariantRequest adds a product variant to the cart. SizeID and
// CrustID carry the selector state; both stay nil for variant-less
// products.
type AddVariantRequest struct {
	ProductID uuid.UUID  `json:"product_id" binding:"required"`
	SizeID    *uuid.UUID `json:"size_id"`
	CrustID   *uuid.UUID `json:"crust_id"`
	Quantity  int        `json:"quantity"`
}

// AddComboRequest adds a combo to the cart as a single line
type AddComboRequest struct {
	ComboID  uuid.UUID `json:"combo_id" binding:"required"`
	Quantity int       `json:"quantity"`
}

// UpdateQuantityRequest sets the quantity of a cart line
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// CartItemResponse represents one cart line in API responses
type CartItemResponse struct {
	ID        uuid.UUID             `json:"id"`
	ItemType  ordering.CartItemType `json:"item_type"`
	VariantID *uuid.UUID            `json:"variant_id,omitempty"`
	ComboID   *uuid.UUID            `json:"combo_id,omitempty"`
	Name      string                `json:"name"`
	Options   string                `json:"options,omitempty"`
	ImagePath string                `json:"image_path,omitempty"`
	UnitPrice valueobject.Money     `json:"unit_price"`
	Quantity  int                   `json:"quantity"`
	LineTotal valueobject.Money     `json:"line_total"`
}

// CartResponse represents the cart in API responses
type CartResponse struct {
	ID        uuid.UUID          `json:"id"`
	Items     []CartItemResponse `json:"items"`
	Subtotal  valueobject.Money  `json:"subtotal"`
	ItemCount int                `json:"item_count"`
}

// ToCartResponse maps the cart aggregate to its response shape
func ToCartResponse(c *ordering.Cart) CartResponse {
	resp := CartResponse{
		ID:        c.ID,
		Items:     make([]CartItemResponse, 0, len(c.Items)),
		Subtotal:  c.Subtotal,
		ItemCount: c.ItemCount(),
	}
	for _, item := range c.Items {
		resp.Items = append(resp.Items, CartItemResponse{
			ID:        item.ID,
			ItemType:  item.ItemType,
			VariantID: item.VariantID,
			ComboID:   item.ComboID,
			Name:      item.Name,
			Options:   item.Options,
			ImagePath: item.ImagePath,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
	}
	return resp
}

// AddressRequest carries the three cascading selector choices plus the
// free-form detail line
type AddressRequest struct {
	ProvinceCode string `json:"province_code"`
	ProvinceName string `json:"province_name"`
	DistrictCode string `json:"district_code"`
	DistrictName string `json:"district_name"`
	WardCode     string `json:"ward_code"`
	WardName     string `json:"ward_name"`
	Detail       string `json:"detail"`
}

// ToShippingAddress converts the request into the address value object
func (r AddressRequest) ToShippingAddress() valueobject.ShippingAddress {
	return valueobject.NewShippingAddress(
		valueobject.AdminUnit{Code: r.ProvinceCode, Name: r.ProvinceName},
		valueobject.AdminUnit{Code: r.DistrictCode, Name: r.DistrictName},
		valueobject.AdminUnit{Code: r.WardCode, Name: r.WardName},
		r.Detail,
	)
}

// QuoteRequest previews checkout amounts for the current cart
type QuoteRequest struct {
	CouponCode string `json:"coupon_code"`
}

// QuoteResponse carries the amounts shown on the checkout summary
type QuoteResponse struct {
	Subtotal   valueobject.Money `json:"subtotal"`
	Discount   valueobject.Money `json:"discount"`
	Total      valueobject.Money `json:"total"`
	CouponCode string            `json:"coupon_code,omitempty"`
}

// CheckoutRequest places an order from the current cart
type CheckoutRequest struct {
	ReceiverName  string         `json:"receiver_name" binding:"required,max=150"`
	ReceiverPhone string         `json:"receiver_phone" binding:"required,max=20"`
	Address       AddressRequest `json:"address" binding:"required"`
	Note          string         `json:"note" binding:"max=500"`
	PaymentMethod string         `json:"payment_method" binding:"required,oneof=cod gateway"`
	CouponCode    string         `json:"coupon_code"`
}

// OrderItemResponse represents one order line in API responses
type OrderItemResponse struct {
	ID        uuid.UUID             `json:"id"`
	ItemType  ordering.CartItemType `json:"item_type"`
	VariantID *uuid.UUID            `json:"variant_id,omitempty"`
	ComboID   *uuid.UUID            `json:"combo_id,omitempty"`
	Name      string                `json:"name"`
	Options   string                `json:"options,omitempty"`
	UnitPrice valueobject.Money     `json:"unit_price"`
	Quantity  int                   `json:"quantity"`
	LineTotal valueobject.Money     `json:"line_total"`
}

// OrderResponse represents an order in API responses. NextStatuses
// drives the back-office status dropdown.
type OrderResponse struct {
	ID            uuid.UUID                   `json:"id"`
	Code          string                      `json:"code"`
	CustomerID    uuid.UUID                   `json:"customer_id"`
	Status        ordering.OrderStatus        `json:"status"`
	ReceiverName  string                      `json:"receiver_name"`
	ReceiverPhone string                      `json:"receiver_phone"`
	Address       valueobject.ShippingAddress `json:"address"`
	AddressLine   string                      `json:"address_line"`
	Note          string                      `json:"note,omitempty"`
	PaymentMethod ordering.PaymentMethod      `json:"payment_method"`
	CouponCode    string                      `json:"coupon_code,omitempty"`
	Subtotal      valueobject.Money           `json:"subtotal"`
	Discount      valueobject.Money           `json:"discount"`
	Total         valueobject.Money           `json:"total"`
	PlacedAt      time.Time                   `json:"placed_at"`
	Items         []OrderItemResponse         `json:"items"`
	NextStatuses  []ordering.OrderStatus      `json:"next_statuses"`
	CanCancel     bool                        `json:"can_cancel"`
}

// ToOrderResponse maps an order aggregate to its response shape
func ToOrderResponse(o *ordering.Order) OrderResponse {
	resp := OrderResponse{
		ID:            o.ID,
		Code:          o.Code,
		CustomerID:    o.CustomerID,
		Status:        o.Status,
		ReceiverName:  o.ReceiverName,
		ReceiverPhone: o.ReceiverPhone,
		Address:       o.ShippingAddress,
		AddressLine:   o.ShippingAddress.String(),
		Note:          o.Note,
		PaymentMethod: o.PaymentMethod,
		CouponCode:    o.CouponCode,
		Subtotal:      o.Subtotal,
		Discount:      o.Discount,
		Total:         o.Total,
		PlacedAt:      o.PlacedAt,
		Items:         make([]OrderItemResponse, 0, len(o.Items)),
		NextStatuses:  o.Status.NextStatuses(),
		CanCancel:     o.CanBeCancelled(),
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:        item.ID,
			ItemType:  item.ItemType,
			VariantID: item.VariantID,
			ComboID:   item.ComboID,
			Name:      item.Name,
			Options:   item.Options,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}
	return resp
}

// PaymentResponse represents a payment attempt in API responses
type PaymentResponse struct {
	ID             uuid.UUID              `json:"id"`
	OrderID        uuid.UUID              `json:"order_id"`
	Method         ordering.PaymentMethod `json:"method"`
	Status         ordering.PaymentStatus `json:"status"`
	Amount         valueobject.Money      `json:"amount"`
	TransactionRef string                 `json:"transaction_ref,omitempty"`
	FailureReason  string                 `json:"failure_reason,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

// ToPaymentResponse maps a payment attempt to its response shape
func ToPaymentResponse(p *ordering.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             p.ID,
		OrderID:        p.OrderID,
		Method:         p.Method,
		Status:         p.Status,
		Amount:         p.Amount,
		TransactionRef: p.TransactionRef,
		FailureReason:  p.FailureReason,
		CreatedAt:      p.CreatedAt,
	}
}

// PlaceOrderResponse is the checkout result. Payment reflects the
// gateway attempt; a failed attempt still returns the created order.
type PlaceOrderResponse struct {
	Order   OrderResponse   `json:"order"`
	Payment PaymentResponse `json:"payment"`
}

// TransitionRequest moves an order to a new status
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// StatusCountResponse is one row of the back-office dashboard counters
type StatusCountResponse struct {
	Status ordering.OrderStatus `json:"status"`
	Count  int64                `json:"count"`
}
