package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/internmatch/internal/config"
)

func newTestJWTService(t *testing.T, secret string) *JWTService {
	t.Helper()
	t.Setenv("JWT_SECRET", secret)
	cfg, err := config.NewJWTConfig()
	require.NoError(t, err)
	return NewJWTService(cfg)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, "test-secret-at-least-32-chars-long!")

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, "company")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
	assert.Equal(t, "company", claims.GetRole())
}

func TestJWTService_ValidateToken_Empty(t *testing.T) {
	svc := newTestJWTService(t, "test-secret-at-least-32-chars-long!")

	_, err := svc.ValidateToken("")
	require.Error(t, err)
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	svc := newTestJWTService(t, "test-secret-at-least-32-chars-long!")

	_, err := svc.ValidateToken("not.a.jwt")
	require.Error(t, err)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t, "test-secret-at-least-32-chars-long!")
	token, err := svc.GenerateToken(uuid.New(), "student")
	require.NoError(t, err)

	other := newTestJWTService(t, "another-secret-also-32-chars-long!!")
	_, err = other.ValidateToken(token)
	require.Error(t, err)
}
