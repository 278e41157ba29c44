package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"ALREADY_EXISTS", http.StatusConflict},
		{"FORBIDDEN", http.StatusForbidden},
		{"TOKEN_EXPIRED", http.StatusUnauthorized},
		{"GEOGRAPHY_UPSTREAM_UNAVAILABLE", http.StatusBadGateway},
		{"INTERNAL_ERROR", http.StatusInternalServerError},
		{"EMPTY_CART", http.StatusUnprocessableEntity},
		{"INVALID_TRANSITION", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestListRequestToFilter(t *testing.T) {
	t.Run("empty request falls back to defaults", func(t *testing.T) {
		filter := ListRequest{}.ToFilter()
		assert.Equal(t, 1, filter.Page)
		assert.Equal(t, 20, filter.PageSize)
		assert.Equal(t, "created_at", filter.OrderBy)
		assert.Equal(t, "desc", filter.OrderDir)
	})

	t.Run("explicit values carry through", func(t *testing.T) {
		filter := ListRequest{Page: 3, PageSize: 50, OrderBy: "name", OrderDir: "asc", Search: "pizza"}.ToFilter()
		assert.Equal(t, 3, filter.Page)
		assert.Equal(t, 50, filter.PageSize)
		assert.Equal(t, "name", filter.OrderBy)
		assert.Equal(t, "asc", filter.OrderDir)
		assert.Equal(t, "pizza", filter.Search)
	})
}
