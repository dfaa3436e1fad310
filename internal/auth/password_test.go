package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("pw123456")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, CheckPassword("pw123456", hash))
	assert.False(t, CheckPassword("pw1234567", hash))
	assert.False(t, CheckPassword("", hash))

	// Plaintext first, hash second; the reverse never verifies
	assert.False(t, CheckPassword(hash, "pw123456"))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("pw123456")
	require.NoError(t, err)
	second, err := HashPassword("pw123456")
	require.NoError(t, err)

	// Two hashes of the same input must differ, yet both verify
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("pw123456", first))
	assert.True(t, CheckPassword("pw123456", second))
}

func TestCheckPasswordRejectsMalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("pw123456", "not-a-bcrypt-hash"))
}
