package repomanager

import (
	"context"
	"database/sql"

	"github.com/CODE-SECX/English-Sikho/internal/dbx"
	"github.com/CODE-SECX/English-Sikho/internal/server/repositories/categories"
	"github.com/CODE-SECX/English-Sikho/internal/server/repositories/notes"
	"github.com/CODE-SECX/English-Sikho/internal/server/repositories/vocabulary"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Categories(db dbx.DBTX) categories.Repository
	Vocabulary(db dbx.DBTX) vocabulary.Repository
	Notes(db dbx.DBTX) notes.Repository
}
