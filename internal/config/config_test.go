package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Environment:   "development",
		DatabaseName:  "teampulse",
		JWTSecret:     defaultJWTSecret,
		JWTAccessTTL:  time.Hour,
		JWTRefreshTTL: 24 * time.Hour,
	}
}

func TestValidate(t *testing.T) {
	t.Run("development accepts default secret", func(t *testing.T) {
		assert.NoError(t, validate(validConfig()))
	})

	t.Run("production rejects default secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "production"

		err := validate(cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET must be set in production")
	})

	t.Run("missing database name", func(t *testing.T) {
		cfg := validConfig()
		cfg.DatabaseName = ""

		err := validate(cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "database name is required")
	})

	t.Run("refresh shorter than access", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTRefreshTTL = time.Minute

		assert.Error(t, validate(cfg))
	})
}

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "postgres",
		DatabasePassword: "secret",
		DatabaseHost:     "db",
		DatabasePort:     "5432",
		DatabaseName:     "teampulse",
		DatabaseSSLMode:  "disable",
	}

	assert.Equal(t, "postgres://postgres:secret@db:5432/teampulse?sslmode=disable", buildDatabaseURL(cfg))
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := &Config{Environment: "production"}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}
