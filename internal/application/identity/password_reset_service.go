package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pizzeria/backend/internal/domain/identity"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/infrastructure/cache"
)

const (
	resetKeyPrefix   = "pwreset:"
	resetTTL         = 10 * time.Minute
	maxResetAttempts = 5
)

// ForgotPasswordRequest starts a password reset for the account
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPasswordResponse carries the opaque token the client must
// present together with the emailed code
type ForgotPasswordResponse struct {
	ResetToken string `json:"reset_token"`
	ExpiresIn  int    `json:"expires_in"`
}

// ResetPasswordRequest completes a reset with the token and code
type ResetPasswordRequest struct {
	ResetToken  string `json:"reset_token" binding:"required"`
	Code        string `json:"code" binding:"required,len=6"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type resetRecord struct {
	UserID   uuid.UUID `json:"user_id"`
	Code     string    `json:"code"`
	Attempts int       `json:"attempts"`
}

// PasswordResetService handles the forgot-password flow. Reset state
// lives in the cache store under a short TTL; the verification code is
// logged because no delivery channel is wired up yet.
// TODO: send the code by email once a mail provider is configured.
type PasswordResetService struct {
	userRepo identity.UserRepository
	store    cache.Store
	logger   *zap.Logger
}

// NewPasswordResetService creates a new password reset service
func NewPasswordResetService(userRepo identity.UserRepository, store cache.Store, logger *zap.Logger) *PasswordResetService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PasswordResetService{
		userRepo: userRepo,
		store:    store,
		logger:   logger,
	}
}

// Forgot generates a reset token and a six digit code for the account
func (s *PasswordResetService) Forgot(ctx context.Context, req ForgotPasswordRequest) (*ForgotPasswordResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "No account with this email")
		}
		return nil, err
	}
	if !user.Active {
		return nil, shared.NewDomainError("ACCOUNT_DISABLED", "Account has been disabled")
	}

	token, err := newResetToken()
	if err != nil {
		return nil, err
	}
	code, err := newResetCode()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(resetRecord{UserID: user.ID, Code: code})
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, resetKeyPrefix+token, payload, resetTTL); err != nil {
		return nil, err
	}

	s.logger.Info("password reset code issued",
		zap.String("user_id", user.ID.String()),
		zap.String("code", code))

	return &ForgotPasswordResponse{
		ResetToken: token,
		ExpiresIn:  int(resetTTL.Seconds()),
	}, nil
}

// Reset verifies the token and code and sets the new password. All
// outstanding tokens of the account stay valid only until their TTL;
// the used one is deleted immediately.
func (s *PasswordResetService) Reset(ctx context.Context, req ResetPasswordRequest) error {
	key := resetKeyPrefix + req.ResetToken

	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return shared.NewDomainError("INVALID_RESET_TOKEN", "Reset token is invalid or has expired")
	}

	var record resetRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		_ = s.store.Delete(ctx, key)
		return shared.NewDomainError("INVALID_RESET_TOKEN", "Reset token is invalid or has expired")
	}

	if record.Code != req.Code {
		record.Attempts++
		if record.Attempts >= maxResetAttempts {
			_ = s.store.Delete(ctx, key)
		} else if payload, err := json.Marshal(record); err == nil {
			_ = s.store.Set(ctx, key, payload, resetTTL)
		}
		return shared.NewDomainError("INVALID_RESET_CODE", "Verification code does not match")
	}

	user, err := s.userRepo.FindByID(ctx, record.UserID)
	if err != nil {
		return err
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}
	_ = s.store.Delete(ctx, key)

	s.logger.Info("password reset completed", zap.String("user_id", user.ID.String()))
	return nil
}

func newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func newResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
