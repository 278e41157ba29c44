package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/application/review"
	"github.com/pizzeria/backend/internal/interfaces/http/dto"
)

// ReviewHandler handles product review HTTP requests
type ReviewHandler struct {
	BaseHandler
	reviewService *review.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *review.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Submit records the customer's rating for a product
func (h *ReviewHandler) Submit(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req review.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.reviewService.Submit(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// ListByProduct lists the visible reviews of a product, paginated
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.reviewService.ListByProduct(c.Request.Context(), productID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(page))
}

// Summary returns the rating count and average of a product
func (h *ReviewHandler) Summary(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	summary, err := h.reviewService.Summary(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// SetVisible hides or restores a review
func (h *ReviewHandler) SetVisible(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	var req struct {
		Visible *bool `json:"visible" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.reviewService.SetVisible(c.Request.Context(), id, *req.Visible)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete removes a review
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
