package service

import (
	"context"

	"flashcardapp/internal/core/domain"
	"flashcardapp/internal/core/port"
	"flashcardapp/internal/core/telemetry"
)

type CollectionService struct {
	repo    port.CollectionRepository
	metrics *telemetry.AppMetrics
}

func NewCollectionService(repo port.CollectionRepository, metrics *telemetry.AppMetrics) *CollectionService {
	return &CollectionService{repo: repo, metrics: metrics}
}

func (cs *CollectionService) GetAll(ctx context.Context) ([]domain.Collection, error) {
	return cs.record(ctx, "list", func() ([]domain.Collection, error) {
		return cs.repo.GetAll(ctx)
	})
}

func (cs *CollectionService) GetByID(ctx context.Context, id int64) ([]domain.Collection, error) {
	return cs.record(ctx, "get", func() ([]domain.Collection, error) {
		return cs.repo.GetByID(ctx, id)
	})
}

// Create inserts a collection owned by domain.DefaultOwnerID.
func (cs *CollectionService) Create(ctx context.Context, name string) ([]domain.Collection, error) {
	collection := domain.Collection{
		OwnerID: domain.DefaultOwnerID,
		Name:    name,
	}

	return cs.record(ctx, "create", func() ([]domain.Collection, error) {
		return cs.repo.Create(ctx, collection)
	})
}

func (cs *CollectionService) Rename(ctx context.Context, id int64, name string) ([]domain.Collection, error) {
	return cs.record(ctx, "rename", func() ([]domain.Collection, error) {
		return cs.repo.UpdateNameByID(ctx, id, name)
	})
}

func (cs *CollectionService) DeleteByID(ctx context.Context, id int64) ([]domain.Collection, error) {
	return cs.record(ctx, "delete", func() ([]domain.Collection, error) {
		return cs.repo.DeleteByID(ctx, id)
	})
}

func (cs *CollectionService) record(ctx context.Context, operation string, fn func() ([]domain.Collection, error)) ([]domain.Collection, error) {
	rows, err := fn()

	if err != nil {
		return nil, err
	}

	cs.metrics.RecordCollectionOperation(ctx, operation)

	return rows, nil
}
