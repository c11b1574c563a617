package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"flashcardapp/pkg/config"
)

//go:embed migrations
var migrations embed.FS

// Migrate applies every pending migration for the handle's driver. dsn is only
// used for postgres, which migrates over a dedicated handle.
func (db *DB) Migrate(dsn string) error {
	switch db.Driver {
	case config.DriverPostgres:
		migrationDB, err := sql.Open("pgx", dsn)
		if err != nil {
			return fmt.Errorf("open migration handle: %w", err)
		}
		defer migrationDB.Close()

		driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
		if err != nil {
			return fmt.Errorf("create migration driver: %w", err)
		}

		return RunMigrations(driver, "postgres")
	case config.DriverSQLite:
		// The sqlite handle may be an in-memory database, so it is shared and never closed here.
		driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
		if err != nil {
			return fmt.Errorf("create migration driver: %w", err)
		}

		return RunMigrations(driver, "sqlite3")
	default:
		return fmt.Errorf("unsupported database driver %q", db.Driver)
	}
}

// RunMigrations applies the embedded migrations for dialect through driver.
func RunMigrations(driver migratedb.Driver, dialect string) error {
	source, err := iofs.New(migrations, "migrations/"+dialect)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, dialect, driver)
	if err != nil {
		return fmt.Errorf("create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
