package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw1234")
	require.NoError(t, err)
	require.NotEqual(t, "pw1234", hash)

	// bcrypt salts per call, so two hashes of the same password differ.
	other, err := HashPassword("pw1234")
	require.NoError(t, err)
	require.NotEqual(t, hash, other)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("pw1234")
	require.NoError(t, err)

	require.True(t, CheckPasswordHash("pw1234", hash))
	require.False(t, CheckPasswordHash("wrongpw", hash))
	require.False(t, CheckPasswordHash("", hash))
	require.False(t, CheckPasswordHash("pw1234", "not-a-hash"))
}
