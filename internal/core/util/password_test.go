package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"flashcardapp/internal/core/domain"
)

func TestPasswordHasher_Hash(t *testing.T) {
	hasher := NewPasswordHasher()

	t.Run("should produce a salted digest with the fixed cost", func(t *testing.T) {
		first, err := hasher.Hash("password123")
		require.NoError(t, err)

		second, err := hasher.Hash("password123")
		require.NoError(t, err)

		assert.NotEqual(t, "password123", first)
		assert.NotEqual(t, first, second)

		cost, err := bcrypt.Cost([]byte(first))
		require.NoError(t, err)
		assert.Equal(t, PasswordCost, cost)
	})

	t.Run("should fail for passwords longer than 72 bytes", func(t *testing.T) {
		_, err := hasher.Hash(strings.Repeat("é", 40))

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
	})
}

func TestPasswordHasher_Verify(t *testing.T) {
	hasher := NewPasswordHasher()

	digest, err := hasher.Hash("password123")
	require.NoError(t, err)

	t.Run("should accept the same plaintext", func(t *testing.T) {
		ok, err := hasher.Verify("password123", digest)

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should reject a different plaintext without error", func(t *testing.T) {
		ok, err := hasher.Verify("wrong-password", digest)

		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should return an error for a malformed digest", func(t *testing.T) {
		ok, err := hasher.Verify("password123", "not-a-digest")

		assert.Error(t, err)
		assert.False(t, ok)
	})
}
