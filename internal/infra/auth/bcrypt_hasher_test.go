package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("482913")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "482913", hash)

	assert.True(t, hasher.Check("482913", hash))
	assert.False(t, hasher.Check("482914", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("482913")
	require.NoError(t, err)
	second, err := hasher.Hash("482913")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("482913", first))
	assert.True(t, hasher.Check("482913", second))
}

func TestBcryptHasher_CheckInvalidHash(t *testing.T) {
	hasher := NewBcryptHasher()

	assert.False(t, hasher.Check("482913", "not-a-bcrypt-hash"))
}
