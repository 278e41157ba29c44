package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pizzeria/backend/internal/application/geography"
)

// GeographyHandler serves the cascading address selectors
type GeographyHandler struct {
	BaseHandler
	geographyService *geography.GeographyService
}

// NewGeographyHandler creates a new geography handler
func NewGeographyHandler(geographyService *geography.GeographyService) *GeographyHandler {
	return &GeographyHandler{geographyService: geographyService}
}

// Provinces lists all provinces
func (h *GeographyHandler) Provinces(c *gin.Context) {
	provinces, err := h.geographyService.Provinces(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, provinces)
}

// Districts lists the districts of a province
func (h *GeographyHandler) Districts(c *gin.Context) {
	districts, err := h.geographyService.Districts(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, districts)
}

// Wards lists the wards of a district
func (h *GeographyHandler) Wards(c *gin.Context) {
	wards, err := h.geographyService.Wards(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, wards)
}
