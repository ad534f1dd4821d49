package secrets_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mustafagenc/nitrokit/pkg/secrets"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		hash, err := secrets.HashPassword("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotContains(t, hash, "correct horse")

		assert.True(t, secrets.VerifyPassword(hash, "correct horse battery staple"))
	})

	t.Run("one character change fails verification", func(t *testing.T) {
		t.Parallel()

		hash, err := secrets.HashPassword("hunter2")
		require.NoError(t, err)

		assert.False(t, secrets.VerifyPassword(hash, "hunter3"))
		assert.False(t, secrets.VerifyPassword(hash, "Hunter2"))
		assert.False(t, secrets.VerifyPassword(hash, ""))
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		t.Parallel()

		first, err := secrets.HashPassword("repeatable")
		require.NoError(t, err)
		second, err := secrets.HashPassword("repeatable")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("over bcrypt length limit fails", func(t *testing.T) {
		t.Parallel()

		_, err := secrets.HashPassword(strings.Repeat("a", 73))
		assert.ErrorIs(t, err, secrets.ErrHashingFailed)
	})
}

func TestConstantTimeEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, secrets.ConstantTimeEquals("token", "token"))
	assert.False(t, secrets.ConstantTimeEquals("token", "Token"))
	assert.False(t, secrets.ConstantTimeEquals("token", "token2"))
	assert.False(t, secrets.ConstantTimeEquals("", "token"))
	assert.True(t, secrets.ConstantTimeEquals("", ""))
}
