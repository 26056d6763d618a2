package auth

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/motorph/payroll-engine-go/internal/config"
	"github.com/motorph/payroll-engine-go/internal/domain/auth"
	"github.com/motorph/payroll-engine-go/internal/pkg/jwt"
)

// AuthServiceImpl authenticates the single service credential configured in
// the environment. There is no user store; the bcrypt hash comes from
// configuration and refresh-token revocation lives in the JWT service.
type AuthServiceImpl struct {
	admin config.AdminConfig
	jwt.Service
}

func NewAuthService(admin config.AdminConfig, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		admin:   admin,
		Service: jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if req.Username != a.admin.Username {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.admin.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.GenerateAccessToken(req.Username)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.GenerateRefreshToken(req.Username)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return tokenResponse, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.AccessTokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.JWTAuth(), refreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	if a.IsTokenRevoked(refreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	// A token minted for a previous credential stops working once the
	// configured username changes.
	username, ok := claims["username"].(string)
	if !ok || username != a.admin.Username {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	var accessTokenResponse auth.AccessTokenResponse
	accessTokenResponse.AccessToken, accessTokenResponse.AccessTokenExpiresIn, err = a.GenerateAccessToken(username)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessTokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := jwtauth.VerifyToken(a.JWTAuth(), refreshToken); err != nil {
		return auth.ErrInvalidToken
	}

	a.RevokeToken(refreshToken)
	return nil
}
