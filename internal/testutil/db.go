// Package testutil provides shared test fixtures.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/kamholtz/trak/internal/database"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if _, err := db.ExecContext(ctx, database.Schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// SetupTestRepository creates a repository over a fresh in-memory database.
func SetupTestRepository(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t))
}
