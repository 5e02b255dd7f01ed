package views

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/CODE-SECX/English-Sikho/internal/client/collections"
	"github.com/CODE-SECX/English-Sikho/internal/logging"
	"github.com/CODE-SECX/English-Sikho/internal/models"
)

// memTable is an in-memory store table that lists newest first.
type memTable[T any, D any, P any] struct {
	mu     sync.Mutex
	rows   []T
	seq    int
	err    error
	create func(id string, d D) T
	apply  func(t *T, p P)
	key    func(T) string

	updates int
}

func (m *memTable[T, D, P]) FetchAll(ctx context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]T(nil), m.rows...), nil
}

func (m *memTable[T, D, P]) Insert(ctx context.Context, d D) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		var zero T
		return zero, m.err
	}
	m.seq++
	row := m.create(fmt.Sprintf("id-%d", m.seq), d)
	m.rows = append([]T{row}, m.rows...)
	return row, nil
}

func (m *memTable[T, D, P]) UpdateByID(ctx context.Context, id string, p P) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.updates++
	for i := range m.rows {
		if m.key(m.rows[i]) == id {
			m.apply(&m.rows[i], p)
		}
	}
	return nil
}

func (m *memTable[T, D, P]) DeleteByID(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for i := range m.rows {
		if m.key(m.rows[i]) == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			break
		}
	}
	return nil
}

func set[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

func newVocabTable(rows ...models.Vocabulary) *memTable[models.Vocabulary, models.VocabularyDraft, models.VocabularyPatch] {
	return &memTable[models.Vocabulary, models.VocabularyDraft, models.VocabularyPatch]{
		rows: rows,
		create: func(id string, d models.VocabularyDraft) models.Vocabulary {
			return models.Vocabulary{ID: id, Word: d.Word, Meaning: d.Meaning, Context: d.Context,
				MomentOfMemory: d.MomentOfMemory, Language: d.Language, Date: d.Date, CreatedAt: time.Now()}
		},
		apply: func(v *models.Vocabulary, p models.VocabularyPatch) {
			set(&v.Word, p.Word)
			set(&v.Meaning, p.Meaning)
			set(&v.Context, p.Context)
			set(&v.MomentOfMemory, p.MomentOfMemory)
			set(&v.Language, p.Language)
			set(&v.Date, p.Date)
		},
		key: func(v models.Vocabulary) string { return v.ID },
	}
}

func newNoteTable(rows ...models.Note) *memTable[models.Note, models.NoteDraft, models.NotePatch] {
	return &memTable[models.Note, models.NoteDraft, models.NotePatch]{
		rows: rows,
		create: func(id string, d models.NoteDraft) models.Note {
			n := models.Note{ID: id, Title: d.Title, Description: d.Description,
				MomentOfMemory: d.MomentOfMemory, Language: d.Language, Date: d.Date, CreatedAt: time.Now()}
			if d.CategoryID != "" {
				n.CategoryID = &d.CategoryID
			}
			return n
		},
		apply: func(n *models.Note, p models.NotePatch) {
			set(&n.Title, p.Title)
			set(&n.Description, p.Description)
			set(&n.MomentOfMemory, p.MomentOfMemory)
			set(&n.Language, p.Language)
			set(&n.Date, p.Date)
			if p.CategoryID != nil {
				if *p.CategoryID == "" {
					n.CategoryID = nil
				} else {
					id := *p.CategoryID
					n.CategoryID = &id
				}
			}
		},
		key: func(n models.Note) string { return n.ID },
	}
}

func newCategoryTable(rows ...models.Category) *memTable[models.Category, models.CategoryDraft, models.CategoryPatch] {
	return &memTable[models.Category, models.CategoryDraft, models.CategoryPatch]{
		rows: rows,
		create: func(id string, d models.CategoryDraft) models.Category {
			return models.Category{ID: id, Name: d.Name, Description: d.Description, Color: d.Color}
		},
		apply: func(c *models.Category, p models.CategoryPatch) {
			set(&c.Name, p.Name)
			set(&c.Description, p.Description)
			set(&c.Color, p.Color)
		},
		key: func(c models.Category) string { return c.ID },
	}
}

func vocabColl(t *memTable[models.Vocabulary, models.VocabularyDraft, models.VocabularyPatch]) *collections.Vocabulary {
	return collections.New("vocabulary", t, logging.Nop{})
}

func noteColl(t *memTable[models.Note, models.NoteDraft, models.NotePatch]) *collections.Notes {
	return collections.New("notes", t, logging.Nop{})
}

func categoryColl(t *memTable[models.Category, models.CategoryDraft, models.CategoryPatch]) *collections.Categories {
	return collections.New("categories", t, logging.Nop{})
}

func yes(string) bool { return true }
func no(string) bool  { return false }

func fixedNow() time.Time { return time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC) }
