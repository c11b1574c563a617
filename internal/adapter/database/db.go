package database

import (
	"context"
	"crypto/tls"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zerologadapter"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"go.opentelemetry.io/otel/attribute"

	"flashcardapp/internal/core/telemetry"
	"flashcardapp/pkg/config"
	"flashcardapp/pkg/tracing"
)

const dbName = "flashcards"

// DB is the single gateway every repository executes statements through.
type DB struct {
	*sql.DB
	QueryBuilder squirrel.StatementBuilderType
	Driver       string
	Metrics      *telemetry.AppMetrics
}

// New wraps an already opened handle. The placeholder format follows the driver.
func New(sqlDB *sql.DB, driver string) *DB {
	var format squirrel.PlaceholderFormat = squirrel.Question
	if driver == config.DriverPostgres {
		format = squirrel.Dollar
	}

	return &DB{
		DB:           sqlDB,
		QueryBuilder: squirrel.StatementBuilder.PlaceholderFormat(format),
		Driver:       driver,
	}
}

// Open connects to the configured database, verifies the connection and, when
// asked to, applies the embedded migrations.
func Open(ctx context.Context, cfg config.Database, logSQL bool) (*DB, error) {
	dsn, system, err := dataSource(cfg)

	if err != nil {
		return nil, err
	}

	sqlDB, err := otelsql.Open(cfg.Driver, dsn,
		otelsql.WithDBSystem(system),
		otelsql.WithDBName(dbName),
	)

	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if logSQL {
		logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
		sqlDB = sqldblogger.OpenDriver(dsn, sqlDB.Driver(), zerologadapter.New(logger))
	}

	maxConns := cfg.MaxConns
	if maxConns < 1 {
		maxConns = 1
	}

	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("connect to database: %w", Classify(err))
	}

	db := New(sqlDB, cfg.Driver)

	if cfg.Migrate {
		if err := db.Migrate(dsn); err != nil {
			sqlDB.Close()
			return nil, err
		}
	}

	return db, nil
}

// dataSource turns the configured url into a name the driver accepts. For
// postgres the parsed config is registered with pgx so TLS can be enabled
// without certificate verification.
func dataSource(cfg config.Database) (string, string, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		connConfig, err := pgx.ParseConfig(cfg.URL)
		if err != nil {
			return "", "", fmt.Errorf("parse DATABASE_URL: %w", err)
		}

		if cfg.SSL {
			connConfig.TLSConfig = &tls.Config{InsecureSkipVerify: true}
			connConfig.Fallbacks = nil
		}

		return stdlib.RegisterConnConfig(connConfig), "postgresql", nil
	case config.DriverSQLite:
		return cfg.URL, "sqlite", nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Execute renders the statement, runs it and returns its rows. Failures are
// classified into the domain error taxonomy.
func (db *DB) Execute(ctx context.Context, operation, table string, statement squirrel.Sqlizer) (*sql.Rows, error) {
	query, args, err := statement.ToSql()

	if err != nil {
		return nil, fmt.Errorf("build %s statement on %s: %w", operation, table, err)
	}

	ctx, span := tracing.CreateChildSpan(ctx, fmt.Sprintf("db.%s.%s", table, operation), []attribute.KeyValue{
		attribute.String("db.system", db.Driver),
	})
	defer span.End()

	tracing.AddDatabaseAttributes(span, table, operation, query)

	start := time.Now()
	rows, err := db.QueryContext(ctx, query, args...)
	db.Metrics.RecordDatabaseOperation(ctx, operation, table, time.Since(start))

	if err != nil {
		err = db.fail(ctx, table, err)
		tracing.AddSpanError(span, err)
		return nil, err
	}

	return rows, nil
}

func (db *DB) fail(ctx context.Context, table string, err error) error {
	err = Classify(err)
	db.Metrics.RecordDatabaseError(ctx, table, Kind(err))
	return err
}

// RowScanner reads the current row into a value.
type RowScanner[T any] func(rows *sql.Rows) (T, error)

// Collect drains rows into a non-nil slice and closes them. Errors raised while
// iterating are classified the same way as Execute's.
func Collect[T any](ctx context.Context, db *DB, table string, rows *sql.Rows, scan RowScanner[T]) ([]T, error) {
	defer rows.Close()

	items := make([]T, 0)

	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, db.fail(ctx, table, err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, db.fail(ctx, table, err)
	}

	return items, nil
}
