package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDevConfig() *Config {
	return &Config{
		Port:         "8460",
		JWTSecret:    "your-secret-key-change-in-production",
		DBPassword:   "password",
		FeedPageSize: 5,
		Env:          "development",
	}
}

func TestValidate(t *testing.T) {
	t.Run("development defaults pass", func(t *testing.T) {
		require.NoError(t, validDevConfig().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := validDevConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := validDevConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive page size", func(t *testing.T) {
		cfg := validDevConfig()
		cfg.FeedPageSize = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestValidateProduction(t *testing.T) {
	strongSecret := "a-very-long-production-secret-of-32-plus-chars"

	t.Run("default jwt secret rejected", func(t *testing.T) {
		cfg := validDevConfig()
		cfg.Env = "production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("short jwt secret rejected", func(t *testing.T) {
		cfg := validDevConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "short-secret"
		assert.Error(t, cfg.Validate())
	})

	t.Run("weak db password rejected", func(t *testing.T) {
		cfg := validDevConfig()
		cfg.Env = "production"
		cfg.JWTSecret = strongSecret
		assert.Error(t, cfg.Validate())
	})

	t.Run("hardened config passes", func(t *testing.T) {
		cfg := validDevConfig()
		cfg.Env = "prod"
		cfg.JWTSecret = strongSecret
		cfg.DBPassword = "genuinely-strong-password"
		cfg.DBSSLMode = "require"
		assert.NoError(t, cfg.Validate())
	})
}
