package config

import (
	"fmt"
	"os"
	"time"
)

const (
	EnvAuthUsername   = "REGULA_AUTH_USERNAME"
	EnvAuthPassword   = "REGULA_AUTH_PASSWORD"
	EnvAuthSessionTTL = "REGULA_AUTH_SESSION_TTL"
)

// AuthConfig holds the login credential pair and session lifetime.
// Credentials are compared with exact string equality; there is no hashing,
// rate limiting, or lockout. This matches the single-user deployment model
// and is documented as a known weakness for anything beyond it.
type AuthConfig struct {
	Username   string `toml:"username"`
	Password   string `toml:"password"`
	SessionTTL string `toml:"session_ttl"`
}

// SessionTTLDuration returns SessionTTL as a time.Duration.
func (c *AuthConfig) SessionTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.SessionTTL)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
// Missing credentials are a startup failure, never a silent fallback.
func (c *AuthConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.Username != "" {
		c.Username = overlay.Username
	}
	if overlay.Password != "" {
		c.Password = overlay.Password
	}
	if overlay.SessionTTL != "" {
		c.SessionTTL = overlay.SessionTTL
	}
}

func (c *AuthConfig) loadDefaults() {
	if c.SessionTTL == "" {
		c.SessionTTL = "12h"
	}
}

func (c *AuthConfig) loadEnv() {
	if v := os.Getenv(EnvAuthUsername); v != "" {
		c.Username = v
	}
	if v := os.Getenv(EnvAuthPassword); v != "" {
		c.Password = v
	}
	if v := os.Getenv(EnvAuthSessionTTL); v != "" {
		c.SessionTTL = v
	}
}

func (c *AuthConfig) validate() error {
	if c.Username == "" {
		return fmt.Errorf("username required (set %s)", EnvAuthUsername)
	}
	if c.Password == "" {
		return fmt.Errorf("password required (set %s)", EnvAuthPassword)
	}
	if _, err := time.ParseDuration(c.SessionTTL); err != nil {
		return fmt.Errorf("invalid session_ttl: %w", err)
	}
	return nil
}
