package auth

import (
	"testing"

	"agentverse/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
	})

	hash, err := hasher.Hash("supersecret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "supersecret", hash)

	assert.True(t, hasher.Check("supersecret", hash))
	assert.False(t, hasher.Check("wrong", hash))
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 99},
	})

	hash, err := hasher.Hash("supersecret")
	require.NoError(t, err)
	assert.True(t, hasher.Check("supersecret", hash))
}
