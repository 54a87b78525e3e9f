package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.NotContains(t, hash, "secret1")

	// Salted: hashing the same password twice yields different digests
	hash2, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "secret1"))

	// A single changed character flips the result
	assert.False(t, CheckPassword(hash, "secret2"))
	assert.False(t, CheckPassword(hash, "Secret1"))
	assert.False(t, CheckPassword(hash, ""))
}
