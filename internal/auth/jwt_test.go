package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	s := NewJWTService("secret", time.Hour)

	token, expiresAt, err := s.Generate("mchen", "teacher", "sess-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := s.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "mchen", claims.Username)
	assert.Equal(t, "teacher", claims.Role)
	assert.Equal(t, "sess-1", claims.ID)
}

func TestJWTService_Rejects(t *testing.T) {
	s := NewJWTService("secret", time.Hour)

	other, _, err := NewJWTService("other", time.Hour).Generate("mchen", "teacher", "sess-1")
	require.NoError(t, err)
	expired, _, err := NewJWTService("secret", -time.Minute).Generate("mchen", "teacher", "sess-1")
	require.NoError(t, err)
	noSession, _, err := s.Generate("mchen", "teacher", "")
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Username:         "mchen",
		RegisteredClaims: jwt.RegisteredClaims{ID: "sess-1"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": other,
		"expired":      expired,
		"no session":   noSession,
		"alg none":     none,
	} {
		_, err := s.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken, name)
	}
}
