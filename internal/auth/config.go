package auth

import (
	"fmt"
	"time"

	"teampulse-backend/internal/config"
	apperrors "teampulse-backend/internal/errors"
)

// AuthConfig holds the token settings used by the auth service
type AuthConfig struct {
	JWTSecret  string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// NewAuthConfig derives the auth configuration from the application config
func NewAuthConfig(cfg *config.Config) (*AuthConfig, error) {
	c := &AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  cfg.JWTAccessTTL,
		RefreshTTL: cfg.JWTRefreshTTL,
	}
	if err := c.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}
	return c, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return apperrors.ErrJWTSecretMissing
	}
	if c.AccessTTL <= 0 {
		return fmt.Errorf("access token lifetime must be positive")
	}
	if c.RefreshTTL <= 0 {
		return fmt.Errorf("refresh token lifetime must be positive")
	}
	return nil
}
