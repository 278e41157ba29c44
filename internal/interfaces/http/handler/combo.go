package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pizzeria/backend/internal/application/catalog"
	"github.com/pizzeria/backend/internal/interfaces/http/dto"
)

// ComboHandler handles combo HTTP requests
type ComboHandler struct {
	BaseHandler
	comboService *catalog.ComboService
}

// NewComboHandler creates a new combo handler
func NewComboHandler(comboService *catalog.ComboService) *ComboHandler {
	return &ComboHandler{comboService: comboService}
}

// ListActive lists the combos currently on sale
func (h *ComboHandler) ListActive(c *gin.Context) {
	combos, err := h.comboService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, combos)
}

// GetBySlug returns one combo for the detail page
func (h *ComboHandler) GetBySlug(c *gin.Context) {
	combo, err := h.comboService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, combo)
}

// ListAll lists combos for the back office
func (h *ComboHandler) ListAll(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	combos, err := h.comboService.ListAll(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, combos)
}

// Create creates a combo
func (h *ComboHandler) Create(c *gin.Context) {
	var req catalog.CreateComboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	combo, err := h.comboService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, combo)
}

// Deactivate pulls a combo from sale
func (h *ComboHandler) Deactivate(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid combo ID")
		return
	}

	if err := h.comboService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Combo deactivated"})
}

// Delete removes a combo
func (h *ComboHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid combo ID")
		return
	}

	if err := h.comboService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
