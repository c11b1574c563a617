package port

import (
	"context"

	"flashcardapp/internal/core/domain"
	"flashcardapp/internal/core/model/request"
)

type AuthService interface {
	Registration(ctx context.Context, req *request.RegisterRequest) (*domain.User, error)
	Authenticate(ctx context.Context, req *request.LoginRequest) (*domain.User, error)
}

// PasswordHasher turns plaintext passwords into self-contained digests and
// checks plaintext against them.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) (bool, error)
}
