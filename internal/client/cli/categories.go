package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/CODE-SECX/English-Sikho/internal/common"
	"github.com/CODE-SECX/English-Sikho/internal/models"
)

func (a *App) categoryByPrefix(prefix string) (models.Category, bool) {
	for _, c := range a.categories.Categories() {
		if strings.HasPrefix(c.ID, prefix) {
			return c, true
		}
	}
	return models.Category{}, false
}

func (a *App) findCategory(prefix string) (models.Category, error) {
	if prefix == "" {
		return models.Category{}, fmt.Errorf("%w: category id required", common.ErrorValidation)
	}
	c, ok := a.categoryByPrefix(prefix)
	if !ok {
		return models.Category{}, fmt.Errorf("%w: no category %q", common.ErrorNotFound, prefix)
	}
	return c, nil
}

// Categories prints the admin overview: totals and every category with the
// number of notes filed under it.
func (a *App) Categories(ctx context.Context) error {
	s := a.categories.Stats()
	a.printf("Vocabulary: %d  Notes: %d  Categories: %d  Languages: %d\n",
		s.Vocabulary, s.Notes, s.Categories, s.Languages)

	cats := a.categories.Categories()
	if len(cats) == 0 {
		a.printf("No categories yet. Use 'addcat' to create one.\n")
		return nil
	}
	for _, c := range cats {
		a.printf("[%s] %s %s (%d notes)\n", shortID(c.ID), c.Color, c.Name, a.categories.NoteCount(c.ID))
		if c.Description != "" {
			a.printf("    %s\n", c.Description)
		}
	}
	return nil
}

func (a *App) AddCategory(ctx context.Context) error {
	a.categories.OpenAdd()
	return a.submitCategory(ctx)
}

func (a *App) EditCategory(ctx context.Context, id string) error {
	c, err := a.findCategory(id)
	if err != nil {
		return err
	}
	a.categories.Edit(c)
	return a.submitCategory(ctx)
}

func (a *App) submitCategory(ctx context.Context) error {
	d := a.categories.Form().Draft

	var err error
	if d.Name, err = GetWithDefault(a.reader, "Name", d.Name, a.out); err != nil {
		a.categories.CloseForm()
		return err
	}
	if d.Description, err = GetWithDefault(a.reader, "Description", d.Description, a.out); err != nil {
		a.categories.CloseForm()
		return err
	}
	if d.Color, err = GetWithDefault(a.reader, "Color ("+strings.Join(models.Palette, " ")+")", d.Color, a.out); err != nil {
		a.categories.CloseForm()
		return err
	}
	a.categories.SetDraft(d)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()
	if err := a.categories.Submit(ctx); err != nil {
		return err
	}
	a.printf("Saved.\n")
	return nil
}

func (a *App) DeleteCategory(ctx context.Context, id string) error {
	c, err := a.findCategory(id)
	if err != nil {
		return err
	}
	if n := a.categories.NoteCount(c.ID); n > 0 {
		a.printf("%d notes use %q and will keep pointing at it.\n", n, c.Name)
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()
	deleted, err := a.categories.Delete(ctx, c.ID, a.confirm)
	if err != nil {
		return err
	}
	if deleted {
		a.printf("Deleted.\n")
	}
	return nil
}
