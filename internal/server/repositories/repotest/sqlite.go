// Package repotest opens throwaway migrated databases for repository tests.
package repotest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/CODE-SECX/English-Sikho/internal/server/migrations"
)

// NewSQLite returns a private in-memory SQLite database with the schema
// applied. It is closed when the test ends.
func NewSQLite(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := migrations.Up(context.Background(), db, migrations.SQLite); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}
