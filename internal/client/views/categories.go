package views

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/CODE-SECX/English-Sikho/internal/client/collections"
	"github.com/CODE-SECX/English-Sikho/internal/engine"
	"github.com/CODE-SECX/English-Sikho/internal/logging"
	"github.com/CODE-SECX/English-Sikho/internal/models"
)

// CategoriesPage is the admin screen: category management plus overall
// statistics.
type CategoriesPage struct {
	categories *collections.Categories
	vocabulary *collections.Vocabulary
	notes      *collections.Notes
	logger     logging.Logger
	now        func() time.Time

	form Form[models.CategoryDraft]
}

func NewCategoriesPage(categories *collections.Categories, vocabulary *collections.Vocabulary, notes *collections.Notes, l logging.Logger) *CategoriesPage {
	return &CategoriesPage{
		categories: categories,
		vocabulary: vocabulary,
		notes:      notes,
		logger:     l.With("page", "categories"),
		now:        time.Now,
		form:       Form[models.CategoryDraft]{Draft: blankCategory()},
	}
}

func blankCategory() models.CategoryDraft {
	return models.CategoryDraft{Color: models.DefaultColor}
}

// Load fetches all three tables concurrently.
func (p *CategoriesPage) Load(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { _ = p.categories.Load(ctx); return nil })
	g.Go(func() error { _ = p.vocabulary.Load(ctx); return nil })
	g.Go(func() error { _ = p.notes.Load(ctx); return nil })
	_ = g.Wait()
}

func (p *CategoriesPage) Categories() []models.Category { return p.categories.Items() }

// Stats summarises every table as of now.
func (p *CategoriesPage) Stats() engine.Summary {
	return engine.Summarize(p.vocabulary.Items(), p.notes.Items(), p.categories.Items(), p.now())
}

// NoteCount is how many notes point at the category.
func (p *CategoriesPage) NoteCount(id string) int {
	n := 0
	for _, note := range p.notes.Items() {
		if note.CategoryRef() == id {
			n++
		}
	}
	return n
}

func (p *CategoriesPage) Form() Form[models.CategoryDraft] { return p.form }

func (p *CategoriesPage) OpenAdd() {
	p.form = Form[models.CategoryDraft]{Open: true, Draft: blankCategory()}
}

func (p *CategoriesPage) Edit(c models.Category) {
	p.form = Form[models.CategoryDraft]{Open: true, EditingID: c.ID, Draft: c.Draft()}
}

func (p *CategoriesPage) SetDraft(d models.CategoryDraft) { p.form.Draft = d }

func (p *CategoriesPage) CloseForm() {
	p.form = Form[models.CategoryDraft]{Draft: blankCategory()}
}

func (p *CategoriesPage) Submit(ctx context.Context) error {
	if err := checkDraft(p.form.Draft); err != nil {
		return err
	}

	var err error
	if p.form.Editing() {
		err = p.categories.Update(ctx, p.form.EditingID, p.form.Draft.Patch())
	} else {
		_, err = p.categories.Add(ctx, p.form.Draft)
	}
	if err != nil {
		p.logger.Error(ctx, "save failed", "error", err)
		return err
	}

	p.CloseForm()
	return nil
}

// Delete removes a category after confirmation. Notes that use it keep the
// id; they are refetched so their joined category disappears.
func (p *CategoriesPage) Delete(ctx context.Context, id string, confirm Confirm) (bool, error) {
	if confirm == nil || !confirm("Are you sure you want to delete this category?") {
		return false, nil
	}
	if err := p.categories.Delete(ctx, id); err != nil {
		p.logger.Error(ctx, "delete failed", "id", id, "error", err)
		return false, err
	}
	_ = p.notes.Refetch(ctx)
	return true, nil
}
