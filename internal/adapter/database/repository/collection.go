package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"flashcardapp/internal/adapter/database"
	"flashcardapp/internal/core/domain"
	"flashcardapp/internal/core/port"
)

const collectionsTable = "collections"

var collectionColumns = []string{"id", "owner_id", "name"}

type CollectionRepository struct {
	db *database.DB
}

func NewCollectionRepository(db *database.DB) port.CollectionRepository {
	return &CollectionRepository{db: db}
}

func (cr *CollectionRepository) GetAll(ctx context.Context) ([]domain.Collection, error) {
	query := cr.db.QueryBuilder.Select(collectionColumns...).
		From(collectionsTable)

	return cr.run(ctx, "select", query)
}

func (cr *CollectionRepository) GetByID(ctx context.Context, id int64) ([]domain.Collection, error) {
	query := cr.db.QueryBuilder.Select(collectionColumns...).
		From(collectionsTable).
		Where(sq.Eq{"id": id})

	return cr.run(ctx, "select", query)
}

func (cr *CollectionRepository) Create(ctx context.Context, collection domain.Collection) ([]domain.Collection, error) {
	query := cr.db.QueryBuilder.Insert(collectionsTable).
		Columns("owner_id", "name").
		Values(collection.OwnerID, collection.Name).
		Suffix(returning(collectionColumns))

	return cr.run(ctx, "insert", query)
}

func (cr *CollectionRepository) UpdateNameByID(ctx context.Context, id int64, name string) ([]domain.Collection, error) {
	query := cr.db.QueryBuilder.Update(collectionsTable).
		Set("name", name).
		Where(sq.Eq{"id": id}).
		Suffix(returning(collectionColumns))

	return cr.run(ctx, "update", query)
}

func (cr *CollectionRepository) DeleteByID(ctx context.Context, id int64) ([]domain.Collection, error) {
	query := cr.db.QueryBuilder.Delete(collectionsTable).
		Where(sq.Eq{"id": id}).
		Suffix(returning(collectionColumns))

	return cr.run(ctx, "delete", query)
}

func (cr *CollectionRepository) run(ctx context.Context, operation string, query sq.Sqlizer) ([]domain.Collection, error) {
	rows, err := cr.db.Execute(ctx, operation, collectionsTable, query)

	if err != nil {
		return nil, err
	}

	return database.Collect(ctx, cr.db, collectionsTable, rows, scanCollection)
}

func scanCollection(rows *sql.Rows) (domain.Collection, error) {
	var c domain.Collection
	err := rows.Scan(&c.ID, &c.OwnerID, &c.Name)
	return c, err
}
