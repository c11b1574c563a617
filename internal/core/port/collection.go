package port

import (
	"context"

	"flashcardapp/internal/core/domain"
)

type CollectionRepository interface {
	GetAll(ctx context.Context) ([]domain.Collection, error)
	GetByID(ctx context.Context, id int64) ([]domain.Collection, error)
	Create(ctx context.Context, collection domain.Collection) ([]domain.Collection, error)
	UpdateNameByID(ctx context.Context, id int64, name string) ([]domain.Collection, error)
	DeleteByID(ctx context.Context, id int64) ([]domain.Collection, error)
}

type CollectionService interface {
	GetAll(ctx context.Context) ([]domain.Collection, error)
	GetByID(ctx context.Context, id int64) ([]domain.Collection, error)
	Create(ctx context.Context, name string) ([]domain.Collection, error)
	Rename(ctx context.Context, id int64, name string) ([]domain.Collection, error)
	DeleteByID(ctx context.Context, id int64) ([]domain.Collection, error)
}
