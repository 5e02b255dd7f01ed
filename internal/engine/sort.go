package engine

import (
	"slices"
	"strings"
	"time"

	"github.com/CODE-SECX/English-Sikho/internal/common"
	"github.com/CODE-SECX/English-Sikho/internal/models"
)

type SortKey string

const (
	SortCreatedAt SortKey = "created_at"
	SortDate      SortKey = "date"
	// SortTitle orders by word for vocabulary and title for notes.
	SortTitle SortKey = "title"
)

// ParseSortKey accepts the key names plus "word" as an alias of "title".
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(s) {
	case "created_at", "created":
		return SortCreatedAt, true
	case "date":
		return SortDate, true
	case "title", "word":
		return SortTitle, true
	}
	return "", false
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Toggle flips the direction.
func (d Direction) Toggle() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// Order is a sort key with a direction.
type Order struct {
	Key       SortKey
	Direction Direction
}

// DefaultOrder is newest first.
var DefaultOrder = Order{Key: SortCreatedAt, Direction: Desc}

// Compare orders a before b ascending by key, falling back to the id so that
// no two distinct entries compare equal.
func Compare(a, b models.Entry, key SortKey) int {
	var c int
	switch key {
	case SortDate:
		c = parseDate(a.LearnedOn()).Compare(parseDate(b.LearnedOn()))
	case SortTitle:
		c = strings.Compare(strings.ToLower(a.Heading()), strings.ToLower(b.Heading()))
	default:
		c = a.Created().Compare(b.Created())
	}
	if c == 0 {
		c = strings.Compare(a.Key(), b.Key())
	}
	return c
}

// Sort returns a sorted copy of items. Descending negates the whole
// comparator, so it is the exact reverse of ascending.
func Sort[E models.Entry](items []E, o Order) []E {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b E) int {
		c := Compare(a, b, o.Key)
		if o.Direction == Desc {
			return -c
		}
		return c
	})
	return out
}

// View filters then sorts, which is what list pages render.
func View[E models.Entry](items []E, q Query, o Order) []E {
	return Sort(Filter(items, q), o)
}

// parseDate yields the zero time for dates that do not parse, so they sort first.
func parseDate(s string) time.Time {
	t, err := time.Parse(common.DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
