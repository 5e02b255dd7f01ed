package views

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/CODE-SECX/English-Sikho/internal/client/collections"
	"github.com/CODE-SECX/English-Sikho/internal/engine"
	"github.com/CODE-SECX/English-Sikho/internal/logging"
	"github.com/CODE-SECX/English-Sikho/internal/markup"
	"github.com/CODE-SECX/English-Sikho/internal/models"
)

// MomentsPage browses moments of memory per language and edits them in
// bulk.
type MomentsPage struct {
	vocabulary *collections.Vocabulary
	notes      *collections.Notes
	logger     logging.Logger

	language string
	search   string
}

func NewMomentsPage(vocabulary *collections.Vocabulary, notes *collections.Notes, l logging.Logger) *MomentsPage {
	return &MomentsPage{vocabulary: vocabulary, notes: notes, logger: l.With("page", "moments")}
}

func (p *MomentsPage) Load(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { _ = p.vocabulary.Load(ctx); return nil })
	g.Go(func() error { _ = p.notes.Load(ctx); return nil })
	_ = g.Wait()
}

// Languages lists each language that has moments.
func (p *MomentsPage) Languages() []engine.LanguageMoments {
	return engine.MomentsByLanguage(p.vocabulary.Items(), p.notes.Items())
}

// Select drills into one language; "" goes back to the overview.
func (p *MomentsPage) Select(language string) { p.language = language }
func (p *MomentsPage) Selected() string       { return p.language }

// SetSearch keeps only moments whose text contains s, ignoring case and
// markup.
func (p *MomentsPage) SetSearch(s string) { p.search = s }

// Moments groups the selected language's entries by moment. Without a
// selection every language is included.
func (p *MomentsPage) Moments() []engine.MomentGroup {
	q := engine.Query{Language: p.language}
	groups := engine.GroupByMoment(engine.Filter(p.vocabulary.Items(), q), engine.Filter(p.notes.Items(), q))
	if p.search == "" {
		return groups
	}

	needle := strings.ToLower(p.search)
	out := groups[:0]
	for _, g := range groups {
		if strings.Contains(strings.ToLower(markup.Strip(g.Moment)), needle) {
			out = append(out, g)
		}
	}
	return out
}

// Usage counts every entry, in any language, carrying exactly moment.
func (p *MomentsPage) Usage(moment string) (vocabulary, notes int) {
	return engine.MomentUsage(p.vocabulary.Items(), p.notes.Items(), moment)
}

// Rename rewrites moment from to to on every entry carrying it exactly, and
// returns how many entries were changed. An empty to clears the moment.
func (p *MomentsPage) Rename(ctx context.Context, from, to string) (int, error) {
	if from == "" || from == to {
		return 0, nil
	}

	var vocabIDs, noteIDs []string
	for _, v := range p.vocabulary.Items() {
		if v.MomentOfMemory == from {
			vocabIDs = append(vocabIDs, v.ID)
		}
	}
	for _, n := range p.notes.Items() {
		if n.MomentOfMemory == from {
			noteIDs = append(noteIDs, n.ID)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for _, id := range vocabIDs {
			if err := p.vocabulary.Update(gctx, id, models.MomentPatch(to)); err != nil {
				return err
			}
		}
		return nil
	})
	g.Go(func() error {
		for _, id := range noteIDs {
			if err := p.notes.Update(gctx, id, models.NoteMomentPatch(to)); err != nil {
				return err
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		p.logger.Error(ctx, "moment update failed", "moment", from, "error", err)
		return 0, err
	}

	p.logger.Info(ctx, "moment updated", "from", from, "to", to, "entries", len(vocabIDs)+len(noteIDs))
	return len(vocabIDs) + len(noteIDs), nil
}

// Clear removes moment from every entry carrying it, after confirmation.
func (p *MomentsPage) Clear(ctx context.Context, moment string, confirm Confirm) (int, error) {
	if confirm == nil || !confirm("Remove this moment from every entry that uses it?") {
		return 0, nil
	}
	return p.Rename(ctx, moment, "")
}
