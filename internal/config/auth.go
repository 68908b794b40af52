// Package config provides authentication configuration functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// AuthConfig holds configuration for API token generation and validation.
type AuthConfig struct {
	Secret          string
	ExpirationHours int
}

// NewAuthConfig creates auth configuration from environment variables.
// It reads ROADMAP_AUTH_SECRET and ROADMAP_AUTH_EXPIRATION_HOURS (default: 24).
// When ROADMAP_AUTH_SECRET is unset the server runs without authentication,
// so a nil config with a nil error is returned.
func NewAuthConfig() (*AuthConfig, error) {
	secret := os.Getenv("ROADMAP_AUTH_SECRET")
	if secret == "" {
		return nil, nil
	}

	expirationStr := os.Getenv("ROADMAP_AUTH_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24"
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid ROADMAP_AUTH_EXPIRATION_HOURS: %v", err)
	}

	config := &AuthConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *AuthConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("ROADMAP_AUTH_SECRET cannot be empty")
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("ROADMAP_AUTH_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}
