package views

import (
	"context"

	"github.com/CODE-SECX/English-Sikho/internal/client/collections"
	"github.com/CODE-SECX/English-Sikho/internal/logging"
	"github.com/CODE-SECX/English-Sikho/internal/models"
	"github.com/CODE-SECX/English-Sikho/internal/share"
)

var noteKind = entryKind[models.Note, models.NoteDraft, models.NotePatch]{
	blank: func(today string) models.NoteDraft {
		return models.NoteDraft{Language: "English", Date: today}
	},
	draftOf: models.Note.Draft,
	patchOf: models.NoteDraft.Patch,
	payload: share.FromNote,
}

// NotesPage is the notes list plus the categories offered by its filter and
// form.
type NotesPage struct {
	*ListPage[models.Note, models.NoteDraft, models.NotePatch]
	categories *collections.Categories
}

func NewNotesPage(notes *collections.Notes, categories *collections.Categories, shareBase string, l logging.Logger) *NotesPage {
	return &NotesPage{
		ListPage:   newListPage(notes, noteKind, shareBase, l.With("page", "notes")),
		categories: categories,
	}
}

func (p *NotesPage) Load(ctx context.Context) {
	p.ListPage.Load(ctx)
	_ = p.categories.Load(ctx)
}

func (p *NotesPage) Categories() []models.Category { return p.categories.Items() }
