package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/CODE-SECX/English-Sikho/internal/client/views"
	"github.com/CODE-SECX/English-Sikho/internal/common"
	"github.com/CODE-SECX/English-Sikho/internal/engine"
	"github.com/CODE-SECX/English-Sikho/internal/models"
)

var errUnknownPage = errors.New("unknown page, use vocab or notes")

// findEntry resolves an id or a unique id prefix.
func findEntry[T models.Entry](items []T, prefix string) (T, error) {
	var zero T
	if prefix == "" {
		return zero, errors.New("id required")
	}

	var found []T
	for _, it := range items {
		if it.Key() == prefix {
			return it, nil
		}
		if strings.HasPrefix(it.Key(), prefix) {
			found = append(found, it)
		}
	}
	switch len(found) {
	case 0:
		return zero, fmt.Errorf("%w: no entry %q", common.ErrorNotFound, prefix)
	case 1:
		return found[0], nil
	}
	return zero, fmt.Errorf("id prefix %q is ambiguous", prefix)
}

func (a *App) confirm(prompt string) bool {
	return Confirm(a.reader, prompt, a.out)
}

func (a *App) Use(ctx context.Context, page string) error {
	switch page {
	case PageVocabulary, "vocabulary":
		a.current = PageVocabulary
	case PageNotes:
		a.current = PageNotes
	default:
		return errUnknownPage
	}
	return nil
}

func (a *App) List(ctx context.Context) error {
	switch a.current {
	case PageNotes:
		listEntries(a, a.notes.ListPage, engine.NoteCard)
	default:
		listEntries(a, a.vocabulary, engine.VocabularyCard)
	}
	return nil
}

func listEntries[T models.Entry, D, P any](a *App, p *views.ListPage[T, D, P], card func(T) engine.Card) {
	if p.Loading() {
		a.printf("Loading...\n")
	}
	items := p.Visible()
	if len(items) == 0 {
		if p.Query().IsZero() {
			a.printf("Nothing here yet. Use 'add' to create the first entry.\n")
		} else {
			a.printf("No entries match the current filters.\n")
		}
		return
	}
	for _, it := range items {
		a.printCard(it.Key(), card(it))
	}
	a.printf("%d of %d entries, sorted by %s %s\n", len(items), len(p.Items()), p.Order().Key, p.Order().Direction)
}

func (a *App) Letters(ctx context.Context) error {
	switch a.current {
	case PageNotes:
		printLetters(a, a.notes.ListPage)
	default:
		printLetters(a, a.vocabulary)
	}
	return nil
}

func printLetters[T models.Entry, D, P any](a *App, p *views.ListPage[T, D, P]) {
	for _, g := range p.Groups() {
		a.printf("%s (%d)\n", g.Letter, len(g.Items))
		for _, it := range g.Items {
			a.printf("  [%s] %s\n", shortID(it.Key()), it.Heading())
		}
	}
}

func (a *App) Show(ctx context.Context, id string) error {
	switch a.current {
	case PageNotes:
		n, err := findEntry(a.notes.Items(), id)
		if err != nil {
			return err
		}
		a.notes.OpenDetail(n)
		defer a.notes.CloseDetail()
		a.printNote(n)
	default:
		v, err := findEntry(a.vocabulary.Items(), id)
		if err != nil {
			return err
		}
		a.vocabulary.OpenDetail(v)
		defer a.vocabulary.CloseDetail()
		a.printVocabulary(v)
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	switch a.current {
	case PageNotes:
		a.notes.OpenAdd()
		return a.submitNote(ctx)
	default:
		a.vocabulary.OpenAdd()
		return a.submitVocabulary(ctx)
	}
}

func (a *App) Edit(ctx context.Context, id string) error {
	switch a.current {
	case PageNotes:
		n, err := findEntry(a.notes.Items(), id)
		if err != nil {
			return err
		}
		a.notes.Edit(n)
		return a.submitNote(ctx)
	default:
		v, err := findEntry(a.vocabulary.Items(), id)
		if err != nil {
			return err
		}
		a.vocabulary.Edit(v)
		return a.submitVocabulary(ctx)
	}
}

func (a *App) submitVocabulary(ctx context.Context) error {
	d := a.vocabulary.Form().Draft
	if err := a.fillVocabulary(&d); err != nil {
		a.vocabulary.CloseForm()
		return err
	}
	a.vocabulary.SetDraft(d)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()
	if err := a.vocabulary.Submit(ctx); err != nil {
		return err
	}
	a.printf("Saved.\n")
	return nil
}

func (a *App) submitNote(ctx context.Context) error {
	d := a.notes.Form().Draft
	if err := a.fillNote(&d); err != nil {
		a.notes.CloseForm()
		return err
	}
	a.notes.SetDraft(d)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()
	if err := a.notes.Submit(ctx); err != nil {
		return err
	}
	a.printf("Saved.\n")
	return nil
}

func (a *App) multiline(prompt, def string) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s (empty keeps current)", prompt)
	}
	s, err := GetMultiline(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

func (a *App) fillVocabulary(d *models.VocabularyDraft) error {
	var err error
	if d.Word, err = GetWithDefault(a.reader, "Word", d.Word, a.out); err != nil {
		return err
	}
	if d.Meaning, err = a.multiline("Meaning", d.Meaning); err != nil {
		return err
	}
	if d.Context, err = GetWithDefault(a.reader, "Context / example sentence", d.Context, a.out); err != nil {
		return err
	}
	if d.MomentOfMemory, err = GetWithDefault(a.reader, "Moment of memory", d.MomentOfMemory, a.out); err != nil {
		return err
	}
	if d.Language, err = a.askLanguage(d.Language); err != nil {
		return err
	}
	d.Date, err = GetWithDefault(a.reader, "Date learned (YYYY-MM-DD)", d.Date, a.out)
	return err
}

func (a *App) fillNote(d *models.NoteDraft) error {
	var err error
	if d.Title, err = GetWithDefault(a.reader, "Title", d.Title, a.out); err != nil {
		return err
	}
	if d.Description, err = a.multiline("Description", d.Description); err != nil {
		return err
	}
	if d.MomentOfMemory, err = GetWithDefault(a.reader, "Moment of memory", d.MomentOfMemory, a.out); err != nil {
		return err
	}
	if cats := a.notes.Categories(); len(cats) > 0 {
		a.printf("Categories:\n")
		for _, c := range cats {
			a.printf("  [%s] %s\n", shortID(c.ID), c.Name)
		}
		prefix, err := GetWithDefault(a.reader, "Category id", shortID(d.CategoryID), a.out)
		if err != nil {
			return err
		}
		d.CategoryID = ""
		for _, c := range cats {
			if prefix != "" && strings.HasPrefix(c.ID, prefix) {
				d.CategoryID = c.ID
				break
			}
		}
	}
	if d.Language, err = a.askLanguage(d.Language); err != nil {
		return err
	}
	d.Date, err = GetWithDefault(a.reader, "Date (YYYY-MM-DD)", d.Date, a.out)
	return err
}

func (a *App) askLanguage(def string) (string, error) {
	return GetWithDefault(a.reader, "Language ("+strings.Join(models.Languages, ", ")+", or any other)", def, a.out)
}

func (a *App) Delete(ctx context.Context, id string) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	var (
		deleted bool
		err     error
	)
	switch a.current {
	case PageNotes:
		var n models.Note
		if n, err = findEntry(a.notes.Items(), id); err != nil {
			return err
		}
		deleted, err = a.notes.Delete(ctx, n.ID, a.confirm)
	default:
		var v models.Vocabulary
		if v, err = findEntry(a.vocabulary.Items(), id); err != nil {
			return err
		}
		deleted, err = a.vocabulary.Delete(ctx, v.ID, a.confirm)
	}
	if err != nil {
		return err
	}
	if deleted {
		a.printf("Deleted.\n")
	}
	return nil
}

func (a *App) Share(ctx context.Context, id string) error {
	var (
		link, text string
		err        error
	)
	switch a.current {
	case PageNotes:
		var n models.Note
		if n, err = findEntry(a.notes.Items(), id); err != nil {
			return err
		}
		link, text, err = a.notes.Share(n)
		defer a.notes.CloseShare()
	default:
		var v models.Vocabulary
		if v, err = findEntry(a.vocabulary.Items(), id); err != nil {
			return err
		}
		link, text, err = a.vocabulary.Share(v)
		defer a.vocabulary.CloseShare()
	}
	if err != nil {
		return err
	}
	a.printf("%s\n\n%s\n", link, text)
	return nil
}

// Open shows an entry from a share link or a bare token.
func (a *App) Open(ctx context.Context, link string) error {
	token := link
	if _, after, ok := strings.Cut(link, "/share/"); ok {
		if t, err := url.PathUnescape(after); err == nil {
			token = t
		} else {
			token = after
		}
	}

	v := views.NewSharedView(token)
	if v.Invalid() {
		a.printf("Invalid Share Link\nThis share link is invalid or has been corrupted.\n")
		return nil
	}
	a.printf("%s\n", v.Text())
	return nil
}

func (a *App) Search(ctx context.Context, text string) error {
	switch a.current {
	case PageNotes:
		a.notes.SetSearch(text)
	default:
		a.vocabulary.SetSearch(text)
	}
	return a.List(ctx)
}

// Filter sets one equality filter on the current list; an empty value
// removes it.
func (a *App) Filter(ctx context.Context, field, value string) error {
	type filterable interface {
		SetLanguage(string)
		SetDate(string)
		SetCategory(string)
	}
	var p filterable = a.vocabulary
	if a.current == PageNotes {
		p = a.notes
	}

	switch field {
	case "lang", "language":
		p.SetLanguage(value)
	case "date":
		p.SetDate(value)
	case "cat", "category":
		if a.current != PageNotes {
			return errors.New("only notes have categories")
		}
		if value != "" {
			c, ok := a.categoryByPrefix(value)
			if !ok {
				return fmt.Errorf("%w: no category %q", common.ErrorNotFound, value)
			}
			value = c.ID
		}
		p.SetCategory(value)
	default:
		return errors.New("usage: filter lang|date|cat [value]")
	}
	return a.List(ctx)
}

// Sort switches the sort key; choosing the active key again flips the
// direction.
func (a *App) Sort(ctx context.Context, key string) error {
	k, ok := engine.ParseSortKey(key)
	if !ok {
		return errors.New("usage: sort created|date|title")
	}

	type sortable interface {
		Order() engine.Order
		SetSortKey(engine.SortKey)
		ToggleDirection()
	}
	var p sortable = a.vocabulary
	if a.current == PageNotes {
		p = a.notes
	}

	if p.Order().Key == k {
		p.ToggleDirection()
	} else {
		p.SetSortKey(k)
	}
	return a.List(ctx)
}

func (a *App) ClearFilters(ctx context.Context) error {
	switch a.current {
	case PageNotes:
		a.notes.ClearFilters()
	default:
		a.vocabulary.ClearFilters()
	}
	return a.List(ctx)
}
