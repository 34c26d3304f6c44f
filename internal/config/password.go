package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt cost bounds. Below 10 is too cheap for stored credentials; above 14
// a login takes longer than applicants will wait.
const (
	minBcryptCost = 10
	maxBcryptCost = 14
)

// PasswordConfig holds the credential hashing parameters shared by
// registration, login, and the seed loader.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret appended to every password
}

// NewPasswordConfig builds hashing configuration from environment variables.
// BCRYPT_COST defaults to 12; PASSWORD_PEPPER is optional and empty means no
// pepper.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost := 12
	if raw := os.Getenv("BCRYPT_COST"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
		}
		cost = parsed
	}
	if cost < minBcryptCost || cost > maxBcryptCost {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be %d-%d)", cost, minBcryptCost, maxBcryptCost)
	}

	return &PasswordConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}, nil
}

// peppered returns the password with the configured pepper appended. With no
// pepper set it is the identity.
func (c *PasswordConfig) peppered(pw string) []byte {
	return []byte(pw + c.Pepper)
}

// HashPassword hashes a password with bcrypt at the configured cost.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(c.peppered(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether a password matches a stored bcrypt hash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), c.peppered(pw)) == nil
}
