package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPasswordConfig() *PasswordConfig {
	// Minimum allowed cost keeps the hashing tests fast.
	return &PasswordConfig{BcryptCost: 10}
}

func TestNewPasswordConfig_Defaults(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PASSWORD_PEPPER", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Empty(t, cfg.Pepper)
}

func TestNewPasswordConfig_CostOutOfRange(t *testing.T) {
	t.Setenv("BCRYPT_COST", "9")
	_, err := NewPasswordConfig()
	assert.Error(t, err)

	t.Setenv("BCRYPT_COST", "15")
	_, err = NewPasswordConfig()
	assert.Error(t, err)
}

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := testPasswordConfig()

	hash, err := cfg.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))
}

func TestVerifyPassword_PepperMatters(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "global-secret"}

	hash, err := peppered.HashPassword("password123")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("password123", hash))

	// The same password without the pepper must not verify.
	plain := testPasswordConfig()
	assert.False(t, plain.VerifyPassword("password123", hash))
}
