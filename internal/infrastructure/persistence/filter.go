package persistence

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pizzeria/backend/internal/domain/shared"
)

// ValidateSortOrder normalizes the sort order to ASC or DESC, defaulting
// to DESC
func ValidateSortOrder(orderDir string) string {
	if strings.ToUpper(strings.TrimSpace(orderDir)) == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist,
// returning defaultField when the input is not allowed
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" || !allowedFields[trimmed] {
		return defaultField
	}
	return trimmed
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"slug":       true,
}

// OrderSortFields contains allowed sort fields for orders
var OrderSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"status":     true,
	"placed_at":  true,
	"total":      true,
}

// applySort appends a validated ORDER BY clause
func applySort(query *gorm.DB, filter shared.Filter, allowedFields map[string]bool, defaultField string) *gorm.DB {
	field := ValidateSortField(filter.OrderBy, allowedFields, defaultField)
	return query.Order(fmt.Sprintf("%s %s", field, ValidateSortOrder(filter.OrderDir)))
}

// applyPagination appends LIMIT/OFFSET from the filter
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	return query.Offset(filter.Offset()).Limit(filter.Limit())
}

// paginate runs the count plus page query pattern shared by list endpoints
func paginate[T any](query *gorm.DB, filter shared.Filter, allowedFields map[string]bool, defaultField string) (*shared.Paginated[T], error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var items []T
	page := applyPagination(applySort(query, filter, allowedFields, defaultField), filter)
	if err := page.Find(&items).Error; err != nil {
		return nil, err
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.Limit())
	return &result, nil
}
