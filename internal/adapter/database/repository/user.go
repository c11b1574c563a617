package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"flashcardapp/internal/adapter/database"
	"flashcardapp/internal/core/domain"
	"flashcardapp/internal/core/port"
)

const usersTable = "users"

var userColumns = []string{"id", "username", "password"}

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) port.UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername returns domain.ErrNotFound when no user has that username.
func (ur *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	query := ur.db.QueryBuilder.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		Limit(1)

	users, err := ur.run(ctx, "select", query)

	if err != nil {
		return domain.User{}, err
	}

	if len(users) == 0 {
		return domain.User{}, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
	}

	return users[0], nil
}

// Create inserts the user. A taken username fails with domain.ErrConflict.
func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query := ur.db.QueryBuilder.Insert(usersTable).
		Columns("username", "password").
		Values(user.Username, user.Password).
		Suffix(returning(userColumns))

	users, err := ur.run(ctx, "insert", query)

	if err != nil {
		return domain.User{}, err
	}

	if len(users) == 0 {
		return domain.User{}, fmt.Errorf("insert user %q returned no rows", user.Username)
	}

	return users[0], nil
}

func (ur *UserRepository) run(ctx context.Context, operation string, query sq.Sqlizer) ([]domain.User, error) {
	rows, err := ur.db.Execute(ctx, operation, usersTable, query)

	if err != nil {
		return nil, err
	}

	return database.Collect(ctx, ur.db, usersTable, rows, scanUser)
}

func scanUser(rows *sql.Rows) (domain.User, error) {
	var u domain.User
	err := rows.Scan(&u.ID, &u.Username, &u.Password)
	return u, err
}
