package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/CODE-SECX/English-Sikho/internal/client/client"
	"github.com/CODE-SECX/English-Sikho/internal/client/config"
	"github.com/CODE-SECX/English-Sikho/internal/logging"
	"github.com/CODE-SECX/English-Sikho/internal/models"
	"github.com/CODE-SECX/English-Sikho/internal/rpc"
)

type table[T, D, P any] struct {
	mu     sync.Mutex
	rows   []T
	seq    int
	create func(id string, d D) T
	apply  func(t *T, p P)
	key    func(T) string
}

func (m *table[T, D, P]) FetchAll(ctx context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]T(nil), m.rows...), nil
}

func (m *table[T, D, P]) Insert(ctx context.Context, d D) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	row := m.create(fmt.Sprintf("new-%d", m.seq), d)
	m.rows = append([]T{row}, m.rows...)
	return row, nil
}

func (m *table[T, D, P]) UpdateByID(ctx context.Context, id string, p P) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.key(m.rows[i]) == id {
			m.apply(&m.rows[i], p)
		}
	}
	return nil
}

func (m *table[T, D, P]) DeleteByID(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
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

// fakeClient serves three in-memory tables.
type fakeClient struct {
	client.Client

	categories *table[models.Category, models.CategoryDraft, models.CategoryPatch]
	vocabulary *table[models.Vocabulary, models.VocabularyDraft, models.VocabularyPatch]
	notes      *table[models.Note, models.NoteDraft, models.NotePatch]

	pingErr   error
	exportRes *rpc.ExportResponse
	exportErr error
	closed    bool
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		categories: &table[models.Category, models.CategoryDraft, models.CategoryPatch]{
			create: func(id string, d models.CategoryDraft) models.Category {
				return models.Category{ID: id, Name: d.Name, Description: d.Description, Color: d.Color}
			},
			apply: func(c *models.Category, p models.CategoryPatch) {
				set(&c.Name, p.Name)
				set(&c.Description, p.Description)
				set(&c.Color, p.Color)
			},
			key: func(c models.Category) string { return c.ID },
		},
		vocabulary: &table[models.Vocabulary, models.VocabularyDraft, models.VocabularyPatch]{
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
		},
		notes: &table[models.Note, models.NoteDraft, models.NotePatch]{
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
			},
			key: func(n models.Note) string { return n.ID },
		},
	}
}

func (f *fakeClient) Close() error                       { f.closed = true; return nil }
func (f *fakeClient) Ping(ctx context.Context) error     { return f.pingErr }
func (f *fakeClient) Categories() client.CategoryTable   { return f.categories }
func (f *fakeClient) Vocabulary() client.VocabularyTable { return f.vocabulary }
func (f *fakeClient) Notes() client.NoteTable            { return f.notes }

func (f *fakeClient) Export(ctx context.Context) (*rpc.ExportResponse, error) {
	return f.exportRes, f.exportErr
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.ShareBaseURL = "http://share.test"
	return c
}

// newTestApp builds an App over f that reads input and writes to the
// returned buffer. Collections are loaded.
func newTestApp(f *fakeClient, input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	a := newApp(testConfig(), f, logging.Nop{}, strings.NewReader(input), out)
	_ = a.Refresh(context.Background())
	return a, out
}
