package util

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"flashcardapp/internal/core/domain"
)

// PasswordCost is the bcrypt work factor applied to every new digest.
const PasswordCost = 10

type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: PasswordCost}
}

// Hash fails with domain.ErrValidation when plaintext exceeds bcrypt's 72 byte input.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	encrypted, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)

	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if err != nil {
		return "", err
	}

	return string(encrypted), nil
}

// Verify returns false with a nil error on a plain mismatch. Any other bcrypt
// failure, such as a malformed digest, is returned alongside false.
func (h *PasswordHasher) Verify(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))

	if err == nil {
		return true, nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, err
}
