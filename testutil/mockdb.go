package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateInMemoryDB creates an empty in-memory SQLite database for testing.
// The pool is pinned to one connection so every query sees the same database.
func CreateInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CountWorksheetRows returns the number of rows stored for a shell key
func CountWorksheetRows(t *testing.T, db *sql.DB, shellKey int) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM worksheets WHERE ppid = ?", shellKey).Scan(&n); err != nil {
		t.Fatalf("Failed to count worksheet rows: %v", err)
	}
	return n
}
