package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/motorph/payroll-engine-go/internal/config"
	"github.com/motorph/payroll-engine-go/internal/domain/auth"
	"github.com/motorph/payroll-engine-go/internal/pkg/jwt"
	"github.com/motorph/payroll-engine-go/internal/pkg/validator"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
	testUsername   = "payroll-admin"
	testPassword   = "password123"
)

func newTestAuthService(t *testing.T) auth.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(config.AdminConfig{
		Username:     testUsername,
		PasswordHash: string(hash),
	}, jwtService)
}

// Test Login with valid credentials
func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	authService := newTestAuthService(t)

	// Act
	response, err := authService.Login(ctx, auth.LoginRequest{Username: testUsername, Password: testPassword})

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
	assert.Greater(t, response.AccessTokenExpiresIn, int64(0))
	assert.Greater(t, response.RefreshTokenExpiresIn, response.AccessTokenExpiresIn)
}

// Test Login with invalid password
func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	authService := newTestAuthService(t)

	// Act
	_, err := authService.Login(ctx, auth.LoginRequest{Username: testUsername, Password: "wrong-password"})

	// Assert
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

// Test Login with an unknown username
func TestAuthService_Login_UnknownUsername(t *testing.T) {
	ctx := context.Background()
	authService := newTestAuthService(t)

	// Act
	_, err := authService.Login(ctx, auth.LoginRequest{Username: "somebody-else", Password: testPassword})

	// Assert
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

// Test Login with missing fields
func TestAuthService_Login_MissingFields(t *testing.T) {
	ctx := context.Background()
	authService := newTestAuthService(t)

	// Act
	_, err := authService.Login(ctx, auth.LoginRequest{})

	// Assert
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

// Test RefreshToken issues a fresh access token
func TestAuthService_RefreshToken_Success(t *testing.T) {
	ctx := context.Background()
	authService := newTestAuthService(t)

	// Setup
	loginResp, err := authService.Login(ctx, auth.LoginRequest{Username: testUsername, Password: testPassword})
	require.NoError(t, err)

	// Act
	refreshResp, err := authService.RefreshToken(ctx, loginResp.RefreshToken)

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshResp.AccessToken)
	assert.Greater(t, refreshResp.AccessTokenExpiresIn, int64(0))
}

// Test RefreshToken rejects an access token
func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	authService := newTestAuthService(t)

	// Setup
	loginResp, err := authService.Login(ctx, auth.LoginRequest{Username: testUsername, Password: testPassword})
	require.NoError(t, err)

	// Act
	_, err = authService.RefreshToken(ctx, loginResp.AccessToken)

	// Assert
	assert.Equal(t, auth.ErrInvalidToken, err)
}

// Test RefreshToken rejects garbage
func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	ctx := context.Background()
	authService := newTestAuthService(t)

	// Act
	_, err := authService.RefreshToken(ctx, "not-a-token")

	// Assert
	assert.Equal(t, auth.ErrInvalidToken, err)
}

// Test RefreshToken after logout
func TestAuthService_RefreshToken_Revoked(t *testing.T) {
	ctx := context.Background()
	authService := newTestAuthService(t)

	// Setup
	loginResp, err := authService.Login(ctx, auth.LoginRequest{Username: testUsername, Password: testPassword})
	require.NoError(t, err)
	require.NoError(t, authService.Logout(ctx, loginResp.RefreshToken))

	// Act
	_, err = authService.RefreshToken(ctx, loginResp.RefreshToken)

	// Assert
	assert.Equal(t, auth.ErrRefreshTokenRevoked, err)
}

// Test RefreshToken minted for a previous credential
func TestAuthService_RefreshToken_RotatedCredential(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	require.NoError(t, err)

	// Both services share the signing key, but the configured username changed.
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	oldService := NewAuthService(config.AdminConfig{Username: testUsername, PasswordHash: string(hash)}, jwtService)
	newService := NewAuthService(config.AdminConfig{Username: "rotated-admin", PasswordHash: string(hash)}, jwtService)

	loginResp, err := oldService.Login(ctx, auth.LoginRequest{Username: testUsername, Password: testPassword})
	require.NoError(t, err)

	// Act
	_, err = newService.RefreshToken(ctx, loginResp.RefreshToken)

	// Assert
	assert.Equal(t, auth.ErrInvalidToken, err)
}

// Test Logout revokes and is idempotent
func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	authService := newTestAuthService(t)

	// Setup
	loginResp, err := authService.Login(ctx, auth.LoginRequest{Username: testUsername, Password: testPassword})
	require.NoError(t, err)

	// Act + Assert
	assert.NoError(t, authService.Logout(ctx, loginResp.RefreshToken))
	assert.NoError(t, authService.Logout(ctx, loginResp.RefreshToken))
	assert.Equal(t, auth.ErrInvalidToken, authService.Logout(ctx, "not-a-token"))
}
