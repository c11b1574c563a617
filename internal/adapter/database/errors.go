package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"flashcardapp/internal/core/domain"
)

// Postgres SQLSTATE codes mapped by Classify.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRepr     = "22P02"
	pgNumericOutOfRange   = "22003"
	pgAdminShutdown       = "57P01"
	pgCrashShutdown       = "57P02"
	pgCannotConnectNow    = "57P03"
)

// Classify maps a driver error onto the domain error taxonomy. The driver
// error stays in the chain. Errors that match nothing are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if kind := classify(err); kind != nil {
		return fmt.Errorf("%w: %w", kind, err)
	}

	return err
}

func classify(err error) error {
	if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrUnavailable) {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return domain.ErrConflict
		case pgErr.Code == pgForeignKeyViolation, pgErr.Code == pgInvalidTextRepr, pgErr.Code == pgNumericOutOfRange:
			return domain.ErrValidation
		case strings.HasPrefix(pgErr.Code, "08"),
			pgErr.Code == pgAdminShutdown, pgErr.Code == pgCrashShutdown, pgErr.Code == pgCannotConnectNow:
			return domain.ErrUnavailable
		}
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch {
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique, sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
			return domain.ErrConflict
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey:
			return domain.ErrValidation
		case sqliteErr.Code == sqlite3.ErrBusy, sqliteErr.Code == sqlite3.ErrLocked:
			return domain.ErrUnavailable
		}
		return nil
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return domain.ErrUnavailable
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.ErrUnavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return domain.ErrUnavailable
	}

	return nil
}

// Kind names the class of a classified error for metrics labels.
func Kind(err error) string {
	switch {
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
