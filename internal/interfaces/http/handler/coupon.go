package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pizzeria/backend/internal/application/promotion"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
	"github.com/pizzeria/backend/internal/interfaces/http/dto"
)

// CouponHandler handles coupon HTTP requests
type CouponHandler struct {
	BaseHandler
	couponService *promotion.CouponService
}

// NewCouponHandler creates a new coupon handler
func NewCouponHandler(couponService *promotion.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// Preview shows the discount a code would grant on a subtotal
func (h *CouponHandler) Preview(c *gin.Context) {
	var req struct {
		Code     string          `json:"code" binding:"required"`
		Subtotal decimal.Decimal `json:"subtotal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	preview, err := h.couponService.Preview(c.Request.Context(), req.Code, valueobject.NewMoneyVND(req.Subtotal))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, preview)
}

// List lists coupons for the back office
func (h *CouponHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	coupons, err := h.couponService.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, coupons)
}

// Get returns one coupon
func (h *CouponHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid coupon ID")
		return
	}

	coupon, err := h.couponService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, coupon)
}

// Create creates a coupon
func (h *CouponHandler) Create(c *gin.Context) {
	var req promotion.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	coupon, err := h.couponService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, coupon)
}

// Deactivate pulls a coupon from circulation
func (h *CouponHandler) Deactivate(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid coupon ID")
		return
	}

	coupon, err := h.couponService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, coupon)
}

// Delete removes a coupon
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid coupon ID")
		return
	}

	if err := h.couponService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
