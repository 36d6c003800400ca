package auth

import (
	"testing"

	"zara/config"

	"github.com/stretchr/testify/assert"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	password := "s3nh4-bem-forte!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("senha-errada", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("qualquer-senha")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("qualquer-senha", hash))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	first, err := hasher.Hash("mesma-senha")
	assert.NoError(t, err)
	second, err := hasher.Hash("mesma-senha")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
