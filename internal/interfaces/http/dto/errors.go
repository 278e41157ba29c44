package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeValidation = "VALIDATION_ERROR"
)

// Authentication error codes
const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeRateLimited  = "RATE_LIMITED"
)

// domainErrorHTTPStatus maps domain error codes to HTTP status codes.
// Codes missing from the map fall back to 422 so new business rules
// surface as client errors rather than 500s.
var domainErrorHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	// Authentication and authorization
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_DISABLED":    http.StatusForbidden,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	"TOKEN_ERROR":         http.StatusUnauthorized,

	// Resources
	"NOT_FOUND":            http.StatusNotFound,
	"USER_NOT_FOUND":       http.StatusNotFound,
	"COUPON_NOT_FOUND":     http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"EMAIL_TAKEN":          http.StatusConflict,
	"ALREADY_REVIEWED":     http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Rate limiting
	ErrCodeRateLimited: http.StatusTooManyRequests,

	// Upstream dependencies
	"GEOGRAPHY_UPSTREAM_UNAVAILABLE": http.StatusBadGateway,
	"PAYMENT_GATEWAY_UNAVAILABLE":    http.StatusBadGateway,

	// Input validation
	"INVALID_INPUT":          http.StatusBadRequest,
	"INVALID_RESET_TOKEN":    http.StatusBadRequest,
	"INVALID_RESET_CODE":     http.StatusBadRequest,
	"INVALID_CODE":           http.StatusBadRequest,
	"INVALID_EMAIL":          http.StatusBadRequest,
	"INVALID_NAME":           http.StatusBadRequest,
	"INVALID_RANGE":          http.StatusBadRequest,
	"INVALID_RATING":         http.StatusBadRequest,
	"INVALID_ROLE":           http.StatusBadRequest,
	"INVALID_STATUS":         http.StatusBadRequest,
	"INVALID_PAYMENT_METHOD": http.StatusBadRequest,
	"WEAK_PASSWORD":          http.StatusBadRequest,
	"EMPTY_UPLOAD":           http.StatusBadRequest,
	"IMAGE_TOO_LARGE":        http.StatusBadRequest,
	"UNSUPPORTED_IMAGE_TYPE": http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for a domain error code
func GetHTTPStatus(code string) int {
	if status, ok := domainErrorHTTPStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}
