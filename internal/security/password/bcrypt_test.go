package password_test

import (
	"testing"

	"github.com/dropDatabas3/littlejohn/internal/security/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerifyRoundtrip(t *testing.T) {
	h, err := password.Hash("secret")
	require.NoError(t, err)
	require.NotEmpty(t, h)
	assert.NotEqual(t, "secret", h)

	assert.True(t, password.Verify("secret", h))
	assert.False(t, password.Verify("wrong", h))
	assert.False(t, password.Verify("", h))
}

func TestHashSaltsEveryCall(t *testing.T) {
	h1, err := password.Hash("secret")
	require.NoError(t, err)
	h2, err := password.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, password.Verify("secret", h1))
	assert.True(t, password.Verify("secret", h2))
}

func TestHashRejectsEmpty(t *testing.T) {
	_, err := password.Hash("")
	require.Error(t, err)
}

func TestVerifyMalformedHashReturnsFalse(t *testing.T) {
	for _, h := range []string{"", "not-a-hash", "$2a$garbage", "$argon2id$v=19$..."} {
		assert.False(t, password.Verify("secret", h), "hash %q", h)
	}
}
