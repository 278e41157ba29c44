package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pizzeria/backend/internal/application/report"
)

// ReportHandler serves the back-office dashboard
type ReportHandler struct {
	BaseHandler
	reportService *report.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *report.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Dashboard returns the headline stats block
func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.reportService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// RevenueByDay returns the revenue chart
func (h *ReportHandler) RevenueByDay(c *gin.Context) {
	from, to, ok := h.parseRange(c)
	if !ok {
		return
	}

	points, err := h.reportService.RevenueByDay(c.Request.Context(), from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, points)
}

// TopProducts returns the best-sellers table
func (h *ReportHandler) TopProducts(c *gin.Context) {
	from, to, ok := h.parseRange(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	rows, err := h.reportService.TopProducts(c.Request.Context(), from, to, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// parseRange reads optional from/to query dates in RFC 3339 or
// YYYY-MM-DD form. Zero values mean service defaults.
func (h *ReportHandler) parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	from, ok := h.parseDate(c, "from")
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	to, ok := h.parseDate(c, "to")
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func (h *ReportHandler) parseDate(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	h.BadRequest(c, "Invalid "+name+" date")
	return time.Time{}, false
}
