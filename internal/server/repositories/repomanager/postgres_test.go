package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CODE-SECX/English-Sikho/internal/server/migrations"
	"github.com/CODE-SECX/English-Sikho/internal/server/repositories/categories"
	"github.com/CODE-SECX/English-Sikho/internal/server/repositories/notes"
	"github.com/CODE-SECX/English-Sikho/internal/server/repositories/vocabulary"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNewRepositoryManager(t *testing.T) {
	m, err := NewRepositoryManager(DriverPgx)
	require.NoError(t, err)
	assert.Equal(t, migrations.Postgres, m.(*SQLRepositoryManager).dialect)

	m, err = NewRepositoryManager(DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, migrations.SQLite, m.(*SQLRepositoryManager).dialect)

	_, err = NewRepositoryManager("mysql")
	require.Error(t, err)
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := &SQLRepositoryManager{}

	var _ categories.Repository = m.Categories(db)
	var _ vocabulary.Repository = m.Vocabulary(db)
	var _ notes.Repository = m.Notes(db)

	assert.NotNil(t, m.Categories(db))
	assert.NotNil(t, m.Vocabulary(db))
	assert.NotNil(t, m.Notes(db))
}

func TestRunMigrations_PassesDialect(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := migrateUp
	t.Cleanup(func() { migrateUp = orig })

	var got migrations.Dialect
	migrateUp = func(ctx context.Context, db *sql.DB, d migrations.Dialect) error {
		got = d
		return nil
	}

	m := &SQLRepositoryManager{dialect: migrations.Postgres}
	require.NoError(t, m.RunMigrations(context.Background(), db))
	assert.Equal(t, migrations.Postgres, got)
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := migrateUp
	t.Cleanup(func() { migrateUp = orig })
	migrateUp = func(ctx context.Context, db *sql.DB, d migrations.Dialect) error {
		return errors.New("boom")
	}

	m := &SQLRepositoryManager{}
	require.EqualError(t, m.RunMigrations(context.Background(), db), "boom")
}

func TestOpen_SQLite(t *testing.T) {
	db, m, err := Open(context.Background(), DriverSQLite, "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()

	got, err := m.Categories(db).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpen_PingError(t *testing.T) {
	db, mock := newDB(t)
	mock.ExpectPing().WillReturnError(errors.New("refused"))
	mock.ExpectClose()

	orig := sqlOpen
	t.Cleanup(func() { sqlOpen = orig })
	sqlOpen = func(driver, dsn string) (*sql.DB, error) { return db, nil }

	_, _, err := Open(context.Background(), DriverPgx, "postgres://x")
	require.ErrorContains(t, err, "ping database: refused")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), "oracle", "")
	require.Error(t, err)
}
