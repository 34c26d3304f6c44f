package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig controls how session tokens are signed and how long they stay
// valid.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig builds token configuration from environment variables. The
// signing secret has no default: the server refuses to start without
// JWT_SECRET. JWT_EXPIRATION_HOURS defaults to 24.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	hours := 24
	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
		}
		hours = parsed
	}
	if hours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", hours)
	}

	return &JWTConfig{Secret: secret, ExpirationHours: hours}, nil
}
