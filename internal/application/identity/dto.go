package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/domain/identity"
)

// RegisterRequest creates a customer account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,max=150"`
	Phone    string `json:"phone" binding:"max=20"`
}

// LoginRequest authenticates by email and password
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest exchanges a refresh token for a new pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest changes the account display fields
type UpdateProfileRequest struct {
	FullName   string `json:"full_name" binding:"required,max=150"`
	Phone      string `json:"phone" binding:"max=20"`
	AvatarPath string `json:"avatar_path" binding:"max=500"`
}

// ChangePasswordRequest rotates the account password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// ChangeRoleRequest reassigns an account role. Admin only.
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=customer staff admin"`
}

// CreateStaffRequest provisions a back-office account. Admin only.
type CreateStaffRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,max=150"`
	Phone    string `json:"phone" binding:"max=20"`
	Role     string `json:"role" binding:"required,oneof=staff admin"`
}

// UserResponse represents an account in API responses
type UserResponse struct {
	ID         uuid.UUID     `json:"id"`
	Email      string        `json:"email"`
	FullName   string        `json:"full_name"`
	Phone      string        `json:"phone,omitempty"`
	AvatarPath string        `json:"avatar_path,omitempty"`
	Role       identity.Role `json:"role"`
	Active     bool          `json:"active"`
	CreatedAt  time.Time     `json:"created_at"`
}

// ToUserResponse maps a user aggregate to its response shape
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		Phone:      u.Phone,
		AvatarPath: u.AvatarPath,
		Role:       u.Role,
		Active:     u.Active,
		CreatedAt:  u.CreatedAt,
	}
}

// AuthResponse carries the authenticated user and the token pair
type AuthResponse struct {
	User                  UserResponse `json:"user"`
	AccessToken           string       `json:"access_token"`
	RefreshToken          string       `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time    `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time    `json:"refresh_token_expires_at"`
	TokenType             string       `json:"token_type"`
}
