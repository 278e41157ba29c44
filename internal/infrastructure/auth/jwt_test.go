package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzeria/backend/internal/domain/identity"
	"github.com/pizzeria/backend/internal/infrastructure/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-that-is-long-enough",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "pizzeria-test",
	})
}

func newTestUser(t *testing.T, role identity.Role) *identity.User {
	t.Helper()
	u, err := identity.NewUser("test@example.com", "password123", "Test User", "0901234567", role)
	require.NoError(t, err)
	return u
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService()
	user := newTestUser(t, identity.RoleCustomer)

	pair, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, identity.RoleCustomer, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	uid, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, uid)
}

func TestJWTService_TokenTypeMismatch(t *testing.T) {
	svc := newTestJWTService()
	user := newTestUser(t, identity.RoleAdmin)

	pair, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewJWTService(config.JWTConfig{
		Secret:                 "a-completely-different-secret-key-here",
		AccessTokenExpiration:  time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "other",
	})
	pair, err := other.GenerateTokenPair(newTestUser(t, identity.RoleCustomer))
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-that-is-long-enough",
		AccessTokenExpiration:  -time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "pizzeria-test",
	})
	pair, err := svc.GenerateTokenPair(newTestUser(t, identity.RoleCustomer))
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_RefreshTokenPair(t *testing.T) {
	svc := newTestJWTService()
	user := newTestUser(t, identity.RoleStaff)

	pair, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)

	newPair, err := svc.RefreshTokenPair(pair.RefreshToken, user)
	require.NoError(t, err)
	assert.NotEmpty(t, newPair.AccessToken)

	otherUser := newTestUser(t, identity.RoleStaff)
	_, err = svc.RefreshTokenPair(pair.RefreshToken, otherUser)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestInMemoryTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	bl := NewInMemoryTokenBlacklist()

	blacklisted, err := bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, bl.AddToBlacklist(ctx, "jti-1", time.Minute))
	blacklisted, err = bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	// Expired entries fall out of the blacklist.
	require.NoError(t, bl.AddToBlacklist(ctx, "jti-2", -time.Second))
	blacklisted, err = bl.IsBlacklisted(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestInMemoryTokenBlacklist_UserInvalidation(t *testing.T) {
	ctx := context.Background()
	bl := NewInMemoryTokenBlacklist()

	issuedBefore := time.Now().Add(-time.Minute)
	require.NoError(t, bl.InvalidateUserTokens(ctx, "user-1", time.Hour))

	invalid, err := bl.IsUserTokenInvalidated(ctx, "user-1", issuedBefore)
	require.NoError(t, err)
	assert.True(t, invalid)

	invalid, err = bl.IsUserTokenInvalidated(ctx, "user-1", time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, invalid)

	invalid, err = bl.IsUserTokenInvalidated(ctx, "user-2", issuedBefore)
	require.NoError(t, err)
	assert.False(t, invalid)
}
