// Package collections keeps the last fetched copy of each store table in
// memory for the pages that display it.
//
// A Collection never edits its snapshot locally: every successful write is
// followed by a full refetch, and the fetch that finishes last decides what
// the snapshot holds.
package collections

import (
	"context"
	"slices"
	"sync"

	"github.com/CODE-SECX/English-Sikho/internal/client/client"
	"github.com/CODE-SECX/English-Sikho/internal/logging"
	"github.com/CODE-SECX/English-Sikho/internal/models"
)

// Collection is the cached state of one table: its items and whether a
// fetch is in flight.
type Collection[T, D, P any] struct {
	name   string
	source client.Table[T, D, P]
	logger logging.Logger

	mu      sync.Mutex
	items   []T
	loading bool
}

type (
	Categories = Collection[models.Category, models.CategoryDraft, models.CategoryPatch]
	Vocabulary = Collection[models.Vocabulary, models.VocabularyDraft, models.VocabularyPatch]
	Notes      = Collection[models.Note, models.NoteDraft, models.NotePatch]
)

func New[T, D, P any](name string, source client.Table[T, D, P], l logging.Logger) *Collection[T, D, P] {
	return &Collection[T, D, P]{
		name:   name,
		source: source,
		logger: l.With("collection", name),
	}
}

func NewCategories(c client.Client, l logging.Logger) *Categories {
	return New("categories", c.Categories(), l)
}

func NewVocabulary(c client.Client, l logging.Logger) *Vocabulary {
	return New("vocabulary", c.Vocabulary(), l)
}

func NewNotes(c client.Client, l logging.Logger) *Notes {
	return New("notes", c.Notes(), l)
}

// Items returns a copy of the current snapshot.
func (c *Collection[T, D, P]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

func (c *Collection[T, D, P]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Load fetches the whole table. On failure the error is logged and returned
// and the previous items are kept.
func (c *Collection[T, D, P]) Load(ctx context.Context) error {
	c.setLoading(true)

	items, err := c.source.FetchAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.logger.Error(ctx, "fetch failed", "error", err)
		return err
	}
	c.items = items
	c.logger.Debug(ctx, "collection loaded", "count", len(items))
	return nil
}

// Refetch is Load under the name callers use after a write.
func (c *Collection[T, D, P]) Refetch(ctx context.Context) error {
	return c.Load(ctx)
}

// Add inserts draft and refetches. The refetch runs only when the insert
// succeeded; its own failure is logged, not returned.
func (c *Collection[T, D, P]) Add(ctx context.Context, draft D) (T, error) {
	item, err := c.source.Insert(ctx, draft)
	if err != nil {
		c.logger.Error(ctx, "insert failed", "error", err)
		var zero T
		return zero, err
	}
	_ = c.Refetch(ctx)
	return item, nil
}

func (c *Collection[T, D, P]) Update(ctx context.Context, id string, patch P) error {
	if err := c.source.UpdateByID(ctx, id, patch); err != nil {
		c.logger.Error(ctx, "update failed", "id", id, "error", err)
		return err
	}
	_ = c.Refetch(ctx)
	return nil
}

func (c *Collection[T, D, P]) Delete(ctx context.Context, id string) error {
	if err := c.source.DeleteByID(ctx, id); err != nil {
		c.logger.Error(ctx, "delete failed", "id", id, "error", err)
		return err
	}
	_ = c.Refetch(ctx)
	return nil
}

func (c *Collection[T, D, P]) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}
