package views

import (
	"context"
	"time"

	"github.com/CODE-SECX/English-Sikho/internal/client/collections"
	"github.com/CODE-SECX/English-Sikho/internal/engine"
	"github.com/CODE-SECX/English-Sikho/internal/logging"
	"github.com/CODE-SECX/English-Sikho/internal/models"
	"github.com/CODE-SECX/English-Sikho/internal/share"
)

// entryKind binds a ListPage to one entity type.
type entryKind[T models.Entry, D, P any] struct {
	blank   func(today string) D
	draftOf func(T) D
	patchOf func(D) P
	payload func(T) share.Payload
}

// ListPage is the controller shared by the vocabulary and notes pages.
type ListPage[T models.Entry, D, P any] struct {
	coll      *collections.Collection[T, D, P]
	kind      entryKind[T, D, P]
	logger    logging.Logger
	shareBase string
	now       func() time.Time

	query  engine.Query
	order  engine.Order
	form   Form[D]
	detail *T
	shared *T
}

func newListPage[T models.Entry, D, P any](coll *collections.Collection[T, D, P], kind entryKind[T, D, P], shareBase string, l logging.Logger) *ListPage[T, D, P] {
	p := &ListPage[T, D, P]{
		coll:      coll,
		kind:      kind,
		logger:    l,
		shareBase: shareBase,
		now:       time.Now,
		order:     engine.DefaultOrder,
	}
	p.form.Draft = kind.blank(today(p.now))
	return p
}

// Load fetches the collection. Failures are logged by the collection and the
// page keeps showing what it had.
func (p *ListPage[T, D, P]) Load(ctx context.Context) {
	_ = p.coll.Load(ctx)
}

func (p *ListPage[T, D, P]) Loading() bool { return p.coll.Loading() }

// Items is the unfiltered snapshot in fetch order.
func (p *ListPage[T, D, P]) Items() []T { return p.coll.Items() }

// Visible is the snapshot after the active filters and sort order.
func (p *ListPage[T, D, P]) Visible() []T {
	return engine.View(p.coll.Items(), p.query, p.order)
}

// Groups buckets the visible entries by first letter.
func (p *ListPage[T, D, P]) Groups() []engine.LetterGroup[T] {
	return engine.GroupByLetter(p.Visible())
}

func (p *ListPage[T, D, P]) Query() engine.Query { return p.query }
func (p *ListPage[T, D, P]) Order() engine.Order { return p.order }

func (p *ListPage[T, D, P]) SetSearch(s string)          { p.query.Search = s }
func (p *ListPage[T, D, P]) SetLanguage(l string)        { p.query.Language = l }
func (p *ListPage[T, D, P]) SetDate(d string)            { p.query.Date = d }
func (p *ListPage[T, D, P]) SetCategory(id string)       { p.query.CategoryID = id }
func (p *ListPage[T, D, P]) SetSortKey(k engine.SortKey) { p.order.Key = k }

func (p *ListPage[T, D, P]) ToggleDirection() {
	p.order.Direction = p.order.Direction.Toggle()
}

// ClearFilters drops every filter and restores newest-first order.
func (p *ListPage[T, D, P]) ClearFilters() {
	p.query = engine.Query{}
	p.order = engine.DefaultOrder
}

func (p *ListPage[T, D, P]) Form() Form[D] { return p.form }

// OpenAdd opens a blank form dated today.
func (p *ListPage[T, D, P]) OpenAdd() {
	p.form = Form[D]{Open: true, Draft: p.kind.blank(today(p.now))}
}

// Edit opens the form on a copy of item.
func (p *ListPage[T, D, P]) Edit(item T) {
	p.form = Form[D]{Open: true, EditingID: item.Key(), Draft: p.kind.draftOf(item)}
}

// SetDraft replaces the form fields.
func (p *ListPage[T, D, P]) SetDraft(d D) { p.form.Draft = d }

// CloseForm discards the form.
func (p *ListPage[T, D, P]) CloseForm() {
	p.form = Form[D]{Draft: p.kind.blank(today(p.now))}
}

// Submit validates the form and inserts or updates. On success the form is
// reset and closed; on failure it stays open and the error is returned.
func (p *ListPage[T, D, P]) Submit(ctx context.Context) error {
	if err := checkDraft(p.form.Draft); err != nil {
		return err
	}

	var err error
	if p.form.Editing() {
		err = p.coll.Update(ctx, p.form.EditingID, p.kind.patchOf(p.form.Draft))
	} else {
		_, err = p.coll.Add(ctx, p.form.Draft)
	}
	if err != nil {
		p.logger.Error(ctx, "save failed", "error", err)
		return err
	}

	p.CloseForm()
	return nil
}

// Delete removes the entry with id once confirm agrees. It reports whether
// anything was deleted.
func (p *ListPage[T, D, P]) Delete(ctx context.Context, id string, confirm Confirm) (bool, error) {
	if confirm == nil || !confirm("Are you sure you want to delete this entry?") {
		return false, nil
	}
	if err := p.coll.Delete(ctx, id); err != nil {
		p.logger.Error(ctx, "delete failed", "id", id, "error", err)
		return false, err
	}
	if p.detail != nil && (*p.detail).Key() == id {
		p.detail = nil
	}
	return true, nil
}

func (p *ListPage[T, D, P]) OpenDetail(item T) { p.detail = &item }
func (p *ListPage[T, D, P]) CloseDetail()      { p.detail = nil }

// Detail returns the entry shown in the detail dialog, if open.
func (p *ListPage[T, D, P]) Detail() (T, bool) {
	if p.detail == nil {
		var zero T
		return zero, false
	}
	return *p.detail, true
}

// Find looks an entry up by id in the current snapshot.
func (p *ListPage[T, D, P]) Find(id string) (T, bool) {
	for _, it := range p.coll.Items() {
		if it.Key() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Share opens the share dialog for item and returns its link and card text.
func (p *ListPage[T, D, P]) Share(item T) (link, text string, err error) {
	payload := p.kind.payload(item)
	token, err := share.Encode(payload)
	if err != nil {
		return "", "", err
	}
	p.shared = &item
	return share.URL(p.shareBase, token), share.Text(payload), nil
}

func (p *ListPage[T, D, P]) CloseShare()     { p.shared = nil }
func (p *ListPage[T, D, P]) ShareOpen() bool { return p.shared != nil }
