package service_test

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"

	"flashcardapp/internal/adapter/database/repository"
	"flashcardapp/internal/core/domain"
	"flashcardapp/internal/core/service"
	. "flashcardapp/pkg/test"
)

func TestFlashcardService_CreateAndList(t *testing.T) {
	RegisterTestingT(t)

	svc := service.NewFlashcardService(repository.NewFlashcardRepository(NewTestDB(t)), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, 3, "Capital of France?", "Paris")

	Expect(err).ToNot(HaveOccurred())
	Expect(created).To(HaveLen(1))
	Expect(created[0].Collection).To(Equal(int64(3)))

	cards, err := svc.GetByCollection(ctx, 3)

	Expect(err).ToNot(HaveOccurred())
	Expect(cards).To(Equal(created))

	empty, err := svc.GetByCollection(ctx, 4)

	Expect(err).ToNot(HaveOccurred())
	Expect(empty).To(BeEmpty())
}

type failingFlashcardRepository struct{}

func (failingFlashcardRepository) Create(context.Context, domain.Flashcard) ([]domain.Flashcard, error) {
	return nil, domain.ErrUnavailable
}

func (failingFlashcardRepository) GetByCollection(context.Context, int64) ([]domain.Flashcard, error) {
	return nil, domain.ErrUnavailable
}

func TestFlashcardService_PropagatesErrors(t *testing.T) {
	RegisterTestingT(t)

	svc := service.NewFlashcardService(failingFlashcardRepository{}, nil)

	_, err := svc.Create(context.Background(), 1, "q", "a")
	Expect(err).To(MatchError(domain.ErrUnavailable))

	_, err = svc.GetByCollection(context.Background(), 1)
	Expect(err).To(MatchError(domain.ErrUnavailable))
}
