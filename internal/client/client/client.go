package client

import (
	"context"

	"github.com/CODE-SECX/English-Sikho/internal/models"
	"github.com/CODE-SECX/English-Sikho/internal/rpc"
)

// Table is the data source of one collection.
type Table[T, D, P any] interface {
	FetchAll(ctx context.Context) ([]T, error)
	Insert(ctx context.Context, draft D) (T, error)
	UpdateByID(ctx context.Context, id string, patch P) error
	DeleteByID(ctx context.Context, id string) error
}

type (
	CategoryTable   = Table[models.Category, models.CategoryDraft, models.CategoryPatch]
	VocabularyTable = Table[models.Vocabulary, models.VocabularyDraft, models.VocabularyPatch]
	NoteTable       = Table[models.Note, models.NoteDraft, models.NotePatch]
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Export(ctx context.Context) (*rpc.ExportResponse, error)
	Categories() CategoryTable
	Vocabulary() VocabularyTable
	Notes() NoteTable
}
