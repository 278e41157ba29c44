package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/domain/identity"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// UserService serves profile management and back-office user
// administration
type UserService struct {
	userRepo identity.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Profile retrieves the account behind the current session
func (s *UserService) Profile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// UpdateProfile changes the account display fields
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := user.UpdateProfile(req.FullName, req.Phone, req.AvatarPath); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// CreateStaff provisions a back-office account
func (s *UserService) CreateStaff(ctx context.Context, req CreateStaffRequest) (*UserResponse, error) {
	user, err := identity.NewUser(req.Email, req.Password, req.FullName, req.Phone, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByEmail(ctx, user.Email); err == nil {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// List lists accounts for the back office
func (s *UserService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[UserResponse], error) {
	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]UserResponse, len(users))
	for i := range users {
		items[i] = ToUserResponse(&users[i])
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.Limit())
	return &page, nil
}

// ChangeRole reassigns an account role. The last admin cannot be demoted.
func (s *UserService) ChangeRole(ctx context.Context, id uuid.UUID, role identity.Role) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role == identity.RoleAdmin && role != identity.RoleAdmin {
		if err := s.ensureNotLastAdmin(ctx); err != nil {
			return nil, err
		}
	}
	if err := user.ChangeRole(role); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// SetActive locks or unlocks an account. The last admin cannot be locked.
func (s *UserService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !active && user.Role == identity.RoleAdmin {
		if err := s.ensureNotLastAdmin(ctx); err != nil {
			return nil, err
		}
	}
	if active {
		user.Activate()
	} else {
		user.Deactivate()
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *UserService) ensureNotLastAdmin(ctx context.Context) error {
	admins, err := s.userRepo.CountByRole(ctx, identity.RoleAdmin)
	if err != nil {
		return err
	}
	if admins <= 1 {
		return shared.NewDomainError("LAST_ADMIN", "At least one admin account must remain")
	}
	return nil
}
