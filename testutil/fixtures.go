package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateEnvDBFixture writes an env.db under home with the given
// shell key to worksheet rows, using the same schema the client creates.
func CreateEnvDBFixture(t *testing.T, home string, rows map[int]string) string {
	t.Helper()
	if err := os.MkdirAll(home, 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	dbPath := filepath.Join(home, "env.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS worksheets (
		id INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
		ppid INTEGER NOT NULL,
		worksheet_uuid VARCHAR(63) NOT NULL,
		CONSTRAINT uix_1 UNIQUE(ppid)
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	insertSQL := "INSERT INTO worksheets (ppid, worksheet_uuid) VALUES (?, ?)"
	for ppid, uuid := range rows {
		if _, err := db.Exec(insertSQL, ppid, uuid); err != nil {
			t.Fatalf("Failed to insert worksheet row: %v", err)
		}
	}

	return dbPath
}
