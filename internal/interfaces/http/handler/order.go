package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pizzeria/backend/internal/application/ordering"
	domainordering "github.com/pizzeria/backend/internal/domain/ordering"
	"github.com/pizzeria/backend/internal/interfaces/http/dto"
)

// OrderHandler handles checkout and order HTTP requests
type OrderHandler struct {
	BaseHandler
	checkoutService *ordering.CheckoutService
	orderService    *ordering.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(checkoutService *ordering.CheckoutService, orderService *ordering.OrderService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}

// Quote prices the cart with an optional coupon before checkout
func (h *OrderHandler) Quote(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ordering.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	quote, err := h.checkoutService.Quote(c.Request.Context(), customerID, req.CouponCode)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, quote)
}

// PlaceOrder turns the cart into an order
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ordering.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.checkoutService.PlaceOrder(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// ListMine lists the customer's own orders, newest first
func (h *OrderHandler) ListMine(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.orderService.ListMine(c.Request.Context(), customerID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(page))
}

// Get returns one of the customer's own orders
func (h *OrderHandler) Get(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	orderID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), customerID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Cancel cancels one of the customer's own orders while still allowed
func (h *OrderHandler) Cancel(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	orderID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.Cancel(c.Request.Context(), customerID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// List lists orders for the back office, optionally by status
func (h *OrderHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	var status *domainordering.OrderStatus
	if s := c.Query("status"); s != "" {
		st := domainordering.OrderStatus(s)
		status = &st
	}

	page, err := h.orderService.List(c.Request.Context(), status, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(page))
}

// AdminGet returns an order with its payment attempts
func (h *OrderHandler) AdminGet(c *gin.Context) {
	orderID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, payments, err := h.orderService.AdminGet(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"order": order, "payments": payments})
}

// Transition advances an order along its status machine
func (h *OrderHandler) Transition(c *gin.Context) {
	orderID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req ordering.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	order, err := h.orderService.Transition(c.Request.Context(), orderID, domainordering.OrderStatus(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// CountByStatus returns the order counters on the dashboard
func (h *OrderHandler) CountByStatus(c *gin.Context) {
	counts, err := h.orderService.CountByStatus(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, counts)
}
