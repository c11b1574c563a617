package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"flashcardapp/internal/adapter/database"
	"flashcardapp/internal/core/domain"
	"flashcardapp/internal/core/port"
)

const flashcardsTable = "flashcards"

var flashcardColumns = []string{"id", "collection", "question", "answer"}

type FlashcardRepository struct {
	db *database.DB
}

func NewFlashcardRepository(db *database.DB) port.FlashcardRepository {
	return &FlashcardRepository{db: db}
}

// Create inserts the flashcard as given. The collection id is not checked
// against the collections table.
func (fr *FlashcardRepository) Create(ctx context.Context, flashcard domain.Flashcard) ([]domain.Flashcard, error) {
	query := fr.db.QueryBuilder.Insert(flashcardsTable).
		Columns("collection", "question", "answer").
		Values(flashcard.Collection, flashcard.Question, flashcard.Answer).
		Suffix(returning(flashcardColumns))

	return fr.run(ctx, "insert", query)
}

func (fr *FlashcardRepository) GetByCollection(ctx context.Context, collectionID int64) ([]domain.Flashcard, error) {
	query := fr.db.QueryBuilder.Select(flashcardColumns...).
		From(flashcardsTable).
		Where(sq.Eq{"collection": collectionID})

	return fr.run(ctx, "select", query)
}

func (fr *FlashcardRepository) run(ctx context.Context, operation string, query sq.Sqlizer) ([]domain.Flashcard, error) {
	rows, err := fr.db.Execute(ctx, operation, flashcardsTable, query)

	if err != nil {
		return nil, err
	}

	return database.Collect(ctx, fr.db, flashcardsTable, rows, scanFlashcard)
}

func scanFlashcard(rows *sql.Rows) (domain.Flashcard, error) {
	var f domain.Flashcard
	err := rows.Scan(&f.ID, &f.Collection, &f.Question, &f.Answer)
	return f, err
}
