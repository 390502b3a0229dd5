package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	ju := NewJWTUtil(JWTConfig{Secret: "test-secret", ExpiryHours: 1})
	userID := uuid.New()

	token, expiresAt, err := ju.GenerateToken(userID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := ju.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTWrongSecret(t *testing.T) {
	signer := NewJWTUtil(JWTConfig{Secret: "secret-a", ExpiryHours: 1})
	verifier := NewJWTUtil(JWTConfig{Secret: "secret-b", ExpiryHours: 1})

	token, _, err := signer.GenerateToken(uuid.New(), "user")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTExpiredToken(t *testing.T) {
	ju := NewJWTUtil(JWTConfig{Secret: "test-secret", ExpiryHours: -1})

	token, _, err := ju.GenerateToken(uuid.New(), "user")
	require.NoError(t, err)

	_, err = ju.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTGarbageToken(t *testing.T) {
	ju := NewJWTUtil(JWTConfig{Secret: "test-secret", ExpiryHours: 1})

	_, err := ju.ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = ju.ValidateToken("")
	assert.Error(t, err)
}
