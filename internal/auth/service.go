package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the token_type claim
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID    string `json:"user_id" example:"7d9f4c2e-1b3a-4f5e-9c8d-2a1b3c4d5e6f"`
	Username  string `json:"username" example:"alice"`
	IsStaff   bool   `json:"is_staff" example:"false"`
	TokenType string `json:"token_type" example:"access"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenPair is an access token together with the refresh token that renews it
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthService issues, validates and revokes JWTs
type AuthService struct {
	config  *AuthConfig
	revoked RevocationStore
	now     func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, revoked RevocationStore) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	if revoked == nil {
		revoked = NewMemoryRevocationStore()
	}

	return &AuthService{
		config:  config,
		revoked: revoked,
		now:     time.Now,
	}, nil
}

// GenerateTokenPair issues a fresh access and refresh token for the user
func (s *AuthService) GenerateTokenPair(user *models.User) (*TokenPair, error) {
	access, err := s.issue(user.ID.String(), user.Username, user.IsStaff, TokenTypeAccess, s.config.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.issue(user.ID.String(), user.Username, user.IsStaff, TokenTypeRefresh, s.config.RefreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *AuthService) issue(userID, username string, isStaff bool, tokenType string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:    userID,
		Username:  username,
		IsStaff:   isStaff,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			Issuer:    s.config.Issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateToken parses the token and checks its signature, lifetime and type
func (s *AuthService) ValidateToken(tokenString, tokenType string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("expected %s token, got %q", tokenType, claims.TokenType)
	}
	if claims.ID == "" {
		return nil, errors.New("token has no id")
	}
	return claims, nil
}

// ValidateAccessToken validates a token presented in the Authorization header
func (s *AuthService) ValidateAccessToken(tokenString string) (*AuthClaims, error) {
	return s.ValidateToken(tokenString, TokenTypeAccess)
}

// RefreshAccessToken exchanges a valid, unrevoked refresh token for a new access token
func (s *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.ValidateToken(refreshToken, TokenTypeRefresh)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return "", apperrors.ErrInvalidRefreshToken
	}

	return s.issue(claims.UserID, claims.Username, claims.IsStaff, TokenTypeAccess, s.config.AccessTTL)
}

// RevokeRefreshToken blacklists a refresh token for the rest of its lifetime
func (s *AuthService) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	invalid := apperrors.NewValidationError("refresh", "Invalid or expired token")

	claims, err := s.ValidateToken(refreshToken, TokenTypeRefresh)
	if err != nil {
		return invalid
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return invalid
	}

	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if ttl <= 0 {
		return invalid
	}
	return s.revoked.Revoke(ctx, claims.ID, ttl)
}
