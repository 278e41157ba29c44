package identity

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/shared"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	shared.Repository[User]
	FindByEmail(ctx context.Context, email string) (*User, error)
	CountByRole(ctx context.Context, role Role) (int64, error)
}
