package service

import (
	"context"

	"flashcardapp/internal/core/domain"
	"flashcardapp/internal/core/port"
	"flashcardapp/internal/core/telemetry"
)

type FlashcardService struct {
	repo    port.FlashcardRepository
	metrics *telemetry.AppMetrics
}

func NewFlashcardService(repo port.FlashcardRepository, metrics *telemetry.AppMetrics) *FlashcardService {
	return &FlashcardService{repo: repo, metrics: metrics}
}

// Create adds a flashcard to the given collection. The collection is not
// required to exist.
func (fs *FlashcardService) Create(ctx context.Context, collectionID int64, question, answer string) ([]domain.Flashcard, error) {
	rows, err := fs.repo.Create(ctx, domain.Flashcard{
		Collection: collectionID,
		Question:   question,
		Answer:     answer,
	})

	if err != nil {
		return nil, err
	}

	fs.metrics.RecordFlashcardOperation(ctx, "create")

	return rows, nil
}

func (fs *FlashcardService) GetByCollection(ctx context.Context, collectionID int64) ([]domain.Flashcard, error) {
	rows, err := fs.repo.GetByCollection(ctx, collectionID)

	if err != nil {
		return nil, err
	}

	fs.metrics.RecordFlashcardOperation(ctx, "list")

	return rows, nil
}
