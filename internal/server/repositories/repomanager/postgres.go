// Package repomanager opens the store database for the configured driver
// and vends repositories bound to a connection or transaction.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/CODE-SECX/English-Sikho/internal/dbx"
	"github.com/CODE-SECX/English-Sikho/internal/server/migrations"
	"github.com/CODE-SECX/English-Sikho/internal/server/repositories/categories"
	"github.com/CODE-SECX/English-Sikho/internal/server/repositories/notes"
	"github.com/CODE-SECX/English-Sikho/internal/server/repositories/vocabulary"
)

// Supported database/sql driver names.
const (
	DriverPgx    = "pgx"
	DriverSQLite = "sqlite"
)

// SQLRepositoryManager vends repositories sharing one SQL dialect.
type SQLRepositoryManager struct {
	dialect migrations.Dialect
}

func (m *SQLRepositoryManager) Categories(db dbx.DBTX) categories.Repository {
	return categories.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) Vocabulary(db dbx.DBTX) vocabulary.Repository {
	return vocabulary.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) Notes(db dbx.DBTX) notes.Repository {
	return notes.NewSQLRepository(db)
}

// migrateUp is a seam for testing migrations.Up.
var migrateUp = migrations.Up

// RunMigrations applies the embedded migrations of the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db, m.dialect)
}

// NewRepositoryManager returns a manager for the given driver name.
func NewRepositoryManager(driver string) (RepositoryManager, error) {
	switch driver {
	case DriverPgx:
		return &SQLRepositoryManager{dialect: migrations.Postgres}, nil
	case DriverSQLite:
		return &SQLRepositoryManager{dialect: migrations.SQLite}, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// Open connects to the database, checks it is reachable and migrates it.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, RepositoryManager, error) {
	m, err := NewRepositoryManager(driver)
	if err != nil {
		return nil, nil, err
	}

	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	if driver == DriverSQLite {
		// in-memory databases live only as long as their single connection
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, m, nil
}
