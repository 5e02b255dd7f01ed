package views

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/CODE-SECX/English-Sikho/internal/client/collections"
	"github.com/CODE-SECX/English-Sikho/internal/engine"
)

// Dashboard is the landing screen: totals, recent entries and languages.
type Dashboard struct {
	categories *collections.Categories
	vocabulary *collections.Vocabulary
	notes      *collections.Notes
	now        func() time.Time
}

func NewDashboard(categories *collections.Categories, vocabulary *collections.Vocabulary, notes *collections.Notes) *Dashboard {
	return &Dashboard{categories: categories, vocabulary: vocabulary, notes: notes, now: time.Now}
}

func (d *Dashboard) Load(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { _ = d.categories.Load(ctx); return nil })
	g.Go(func() error { _ = d.vocabulary.Load(ctx); return nil })
	g.Go(func() error { _ = d.notes.Load(ctx); return nil })
	_ = g.Wait()
}

func (d *Dashboard) Loading() bool {
	return d.categories.Loading() || d.vocabulary.Loading() || d.notes.Loading()
}

func (d *Dashboard) Summary() engine.Summary {
	return engine.Summarize(d.vocabulary.Items(), d.notes.Items(), d.categories.Items(), d.now())
}

func (d *Dashboard) Languages() []engine.LanguageBucket {
	return engine.Languages(d.vocabulary.Items(), d.notes.Items())
}
