package engine

import (
	"strings"

	"github.com/CODE-SECX/English-Sikho/internal/markup"
	"github.com/CODE-SECX/English-Sikho/internal/models"
)

// Query holds the active filters of a list page. Empty fields match everything.
type Query struct {
	Search     string
	CategoryID string
	Language   string
	Date       string
}

// IsZero reports whether no filter is set.
func (q Query) IsZero() bool {
	return q == Query{}
}

// Matches reports whether every set filter accepts e.
func (q Query) Matches(e models.Entry) bool {
	if q.CategoryID != "" && e.CategoryRef() != q.CategoryID {
		return false
	}
	if q.Language != "" && e.Lang() != q.Language {
		return false
	}
	// Dates are compared as stored strings, never parsed.
	if q.Date != "" && e.LearnedOn() != q.Date {
		return false
	}
	return MatchesText(e, q.Search)
}

// MatchesText is a case-insensitive substring search over the stripped
// searchable fields of e.
func MatchesText(e models.Entry, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, field := range e.SearchText() {
		if strings.Contains(strings.ToLower(markup.Strip(field)), needle) {
			return true
		}
	}
	return false
}

// Filter returns the items accepted by q, keeping their order.
func Filter[E models.Entry](items []E, q Query) []E {
	out := make([]E, 0, len(items))
	for _, it := range items {
		if q.Matches(it) {
			out = append(out, it)
		}
	}
	return out
}
