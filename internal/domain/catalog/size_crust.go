package catalog

import (
	"strings"

	"github.com/pizzeria/backend/internal/domain/shared"
)

// Size is a pizza size option (e.g. small, medium, large) that product
// variants reference.
type Size struct {
	shared.BaseEntity
	Name     string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Position int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Size) TableName() string {
	return "sizes"
}

// NewSize creates a new size option
func NewSize(name string, position int) (*Size, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Size name cannot be empty")
	}
	return &Size{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Position:   position,
	}, nil
}

// Crust is a pizza crust option (e.g. thin, thick, cheese-stuffed) that
// product variants reference.
type Crust struct {
	shared.BaseEntity
	Name     string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Position int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Crust) TableName() string {
	return "crusts"
}

// NewCrust creates a new crust option
func NewCrust(name string, position int) (*Crust, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Crust name cannot be empty")
	}
	return &Crust{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Position:   position,
	}, nil
}
