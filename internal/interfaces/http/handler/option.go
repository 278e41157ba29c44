package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pizzeria/backend/internal/application/catalog"
)

// OptionHandler handles the size and crust option lists
type OptionHandler struct {
	BaseHandler
	optionService *catalog.OptionService
}

// NewOptionHandler creates a new option handler
func NewOptionHandler(optionService *catalog.OptionService) *OptionHandler {
	return &OptionHandler{optionService: optionService}
}

// createOptionRequest names a new size or crust
type createOptionRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Position int    `json:"position"`
}

// ListSizes lists all sizes
func (h *OptionHandler) ListSizes(c *gin.Context) {
	sizes, err := h.optionService.ListSizes(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sizes)
}

// ListCrusts lists all crusts
func (h *OptionHandler) ListCrusts(c *gin.Context) {
	crusts, err := h.optionService.ListCrusts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, crusts)
}

// CreateSize adds a size option
func (h *OptionHandler) CreateSize(c *gin.Context) {
	var req createOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	size, err := h.optionService.CreateSize(c.Request.Context(), req.Name, req.Position)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, size)
}

// CreateCrust adds a crust option
func (h *OptionHandler) CreateCrust(c *gin.Context) {
	var req createOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	crust, err := h.optionService.CreateCrust(c.Request.Context(), req.Name, req.Position)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, crust)
}

// DeleteSize removes a size option
func (h *OptionHandler) DeleteSize(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid size ID")
		return
	}

	if err := h.optionService.DeleteSize(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// DeleteCrust removes a crust option
func (h *OptionHandler) DeleteCrust(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid crust ID")
		return
	}

	if err := h.optionService.DeleteCrust(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
