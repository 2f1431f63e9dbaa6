package auth

import (
	"fmt"

	"compliance-portal-backend/internal/config"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret    string
	CookieDomain string
	CookieSecure bool
}

// NewAuthConfig derives auth settings from the application configuration.
// Cookies are marked Secure outside development so browser sessions only
// travel over TLS.
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:    cfg.JWTSecret,
		CookieSecure: !cfg.IsDevelopment(),
	}
}

// Validate checks that required settings are present
func (c *AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT secret must be at least 16 characters")
	}
	return nil
}
