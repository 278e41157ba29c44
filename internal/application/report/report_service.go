package report

import (
	"context"
	"time"

	"github.com/pizzeria/backend/internal/domain/reporting"
	"github.com/pizzeria/backend/internal/domain/shared"
)

const (
	defaultRangeDays = 30
	defaultTopLimit  = 10
	maxTopLimit      = 50
	maxRangeDuration = 366 * 24 * time.Hour
)

// ReportService serves the back-office dashboard read models
type ReportService struct {
	reportRepo reporting.ReportRepository
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo reporting.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// Dashboard returns the headline stats block
func (s *ReportService) Dashboard(ctx context.Context) (*reporting.DashboardStats, error) {
	return s.reportRepo.DashboardStats(ctx)
}

// RevenueByDay returns the revenue chart for the given range. A zero
// range defaults to the last thirty days.
func (s *ReportService) RevenueByDay(ctx context.Context, from, to time.Time) ([]reporting.RevenuePoint, error) {
	from, to, err := normalizeRange(from, to)
	if err != nil {
		return nil, err
	}
	return s.reportRepo.RevenueByDay(ctx, from, to)
}

// TopProducts returns the best-sellers table for the given range. A
// non-positive limit defaults to ten rows.
func (s *ReportService) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]reporting.TopProduct, error) {
	from, to, err := normalizeRange(from, to)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTopLimit
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}
	return s.reportRepo.TopProducts(ctx, from, to, limit)
}

func normalizeRange(from, to time.Time) (time.Time, time.Time, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -defaultRangeDays)
	}
	if from.After(to) {
		return from, to, shared.NewDomainError("INVALID_RANGE", "Report range start must not be after its end")
	}
	if to.Sub(from) > maxRangeDuration {
		return from, to, shared.NewDomainError("INVALID_RANGE", "Report range must not exceed one year")
	}
	return from, to, nil
}
