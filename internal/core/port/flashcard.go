package port

import (
	"context"

	"flashcardapp/internal/core/domain"
)

type FlashcardRepository interface {
	Create(ctx context.Context, flashcard domain.Flashcard) ([]domain.Flashcard, error)
	GetByCollection(ctx context.Context, collectionID int64) ([]domain.Flashcard, error)
}

type FlashcardService interface {
	Create(ctx context.Context, collectionID int64, question, answer string) ([]domain.Flashcard, error)
	GetByCollection(ctx context.Context, collectionID int64) ([]domain.Flashcard, error)
}
