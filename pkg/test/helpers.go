package test

import (
	"database/sql"
	"log"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"flashcardapp/internal/adapter/database"
	"flashcardapp/pkg/config"
)

// InitTestDB opens a migrated in-memory sqlite database. Every connection to
// ":memory:" is a separate database, so the pool is pinned to one connection
// that never expires.
func InitTestDB() *database.DB {
	sqlDB, err := sql.Open(config.DriverSQLite, ":memory:")

	if err != nil {
		log.Fatal(err)
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	db := database.New(sqlDB, config.DriverSQLite)

	if err := db.Migrate(""); err != nil {
		log.Fatal(err)
	}

	return db
}

// NewTestDB is InitTestDB closed automatically when the test ends.
func NewTestDB(t testing.TB) *database.DB {
	t.Helper()

	db := InitTestDB()
	t.Cleanup(func() { db.Close() })

	return db
}

// CountRows returns the number of rows in table.
func CountRows(t testing.TB, db *database.DB, table string) int {
	t.Helper()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("count rows in %s: %v", table, err)
	}

	return count
}
