package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("chess456", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "chess456", hash)
	require.True(t, CheckPassword("chess456", hash))
	require.False(t, CheckPassword("chess457", hash))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("", 0)
	require.ErrorIs(t, err, ErrEmptyPassword)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	require.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
}
