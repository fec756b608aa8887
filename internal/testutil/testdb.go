package testutil

import (
	"database/sql"
	"testing"

	"github.com/andrisyafri/facilops/internal/db"
)

// NewTestDB opens an in-memory SQLite database with the full schema
// migrated, closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW wraps a test database in the production unit-of-work.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
