package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("pw123", 4)
	require.NoError(t, err)
	require.NotEqual(t, "pw123", hash)

	assert.True(t, CheckPasswordHash("pw123", hash))
	assert.False(t, CheckPasswordHash("wrongpw", hash))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	h1, err := HashPassword("pw123", 4)
	require.NoError(t, err)
	h2, err := HashPassword("pw123", 4)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestHashPassword_CostBelowMinimumFallsBack(t *testing.T) {
	hash, err := HashPassword("pw123", 0)
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("pw123", hash))
}

func TestGenerateOTP_Range(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateOTP()
		require.Len(t, code, 6)
		require.GreaterOrEqual(t, code, "100000")
		require.LessOrEqual(t, code, "999999")
	}
}
