package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzeria/backend/internal/interfaces/http/dto"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestFormatValidationErrors(t *testing.T) {
	type registerInput struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}

	SetupValidator()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req registerInput
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("returns validation errors for invalid input", func(t *testing.T) {
		body := strings.NewReader(`{"email": "invalid", "password": "short"}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "Request validation failed", resp.Error.Message)
		assert.Len(t, resp.Error.Details, 2)
		// Field names come from the json tags, not the struct fields
		assert.Equal(t, "email", resp.Error.Details[0].Field)
	})

	t.Run("returns success for valid input", func(t *testing.T) {
		body := strings.NewReader(`{"email": "an@example.com", "password": "long-enough-password"}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetValidationMessage(t *testing.T) {
	type input struct {
		Required string `validate:"required"`
		Email    string `validate:"email"`
		Min      string `validate:"min=5"`
		Max      string `validate:"max=10"`
		Len      string `validate:"len=6"`
		UUID     string `validate:"uuid"`
		OneOf    string `validate:"oneof=cod gateway"`
	}

	v := validator.New()

	tests := []struct {
		field    string
		obj      input
		expected string
	}{
		{"Required", input{}, "This field is required"},
		{"Email", input{Email: "invalid"}, "Invalid email format"},
		{"Min", input{Min: "ab"}, "Must be at least 5 characters"},
		{"Max", input{Max: "this is way too long"}, "Must be at most 10 characters"},
		{"Len", input{Len: "ab"}, "Must be exactly 6 characters"},
		{"UUID", input{UUID: "invalid"}, "Invalid UUID format"},
		{"OneOf", input{OneOf: "card"}, "Must be one of: cod gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			err := v.Struct(tt.obj)
			require.Error(t, err)
			for _, e := range err.(validator.ValidationErrors) {
				if e.Field() == tt.field {
					assert.Equal(t, tt.expected, getValidationMessage(e))
					return
				}
			}
			t.Fatalf("no validation error for field %s", tt.field)
		})
	}
}
