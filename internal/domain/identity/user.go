package identity

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/pizzeria/backend/internal/domain/shared"
)

// Role determines which routes a user may reach. Staff see the
// back-office except user administration; admins see everything.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleStaff || r == RoleAdmin
}

// IsBackOffice reports whether the role may enter the admin area
func (r Role) IsBackOffice() bool {
	return r == RoleStaff || r == RoleAdmin
}

// User is the identity aggregate covering customers and back-office
// accounts alike.
type User struct {
	shared.BaseAggregateRoot
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string `gorm:"type:varchar(150);not null"`
	Phone        string `gorm:"type:varchar(20)"`
	AvatarPath   string `gorm:"type:varchar(500)"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'customer'"`
	Active       bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser registers an account with the given role
func NewUser(email, password, fullName, phone string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "A valid email is required")
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Full name is required")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role")
	}
	u := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		FullName:          fullName,
		Phone:             strings.TrimSpace(phone),
		Role:              role,
		Active:            true,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("WEAK_PASSWORD", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.Touch()
	return nil
}

// CheckPassword verifies a login attempt
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// UpdateProfile changes the display fields
func (u *User) UpdateProfile(fullName, phone, avatarPath string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return shared.NewDomainError("INVALID_NAME", "Full name is required")
	}
	u.FullName = fullName
	u.Phone = strings.TrimSpace(phone)
	if avatarPath != "" {
		u.AvatarPath = avatarPath
	}
	u.Touch()
	return nil
}

// ChangeRole reassigns the account role. Only admins may call this.
func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown role")
	}
	u.Role = role
	u.Touch()
	return nil
}

// Deactivate locks the account out
func (u *User) Deactivate() {
	u.Active = false
	u.Touch()
}

// Activate unlocks the account
func (u *User) Activate() {
	u.Active = true
	u.Touch()
}
