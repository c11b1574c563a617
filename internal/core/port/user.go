package port

import (
	"context"

	"flashcardapp/internal/core/domain"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
}
