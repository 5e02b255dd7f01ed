package engine

import (
	"time"

	"github.com/CODE-SECX/English-Sikho/internal/models"
)

// RecentLimit is how many entries of each kind the dashboard shows.
const RecentLimit = 5

// Week is the window counted as "this week".
const Week = 7 * 24 * time.Hour

// Summary backs the dashboard and admin statistics.
type Summary struct {
	Vocabulary       int
	Notes            int
	Categories       int
	Languages        int
	ThisWeek         int
	RecentVocabulary []models.Vocabulary
	RecentNotes      []models.Note
}

// Summarize computes totals from fetch-ordered snapshots. Recent entries are
// the first RecentLimit items as fetched, i.e. the newest.
func Summarize(vocab []models.Vocabulary, notes []models.Note, categories []models.Category, now time.Time) Summary {
	s := Summary{
		Vocabulary:       len(vocab),
		Notes:            len(notes),
		Categories:       len(categories),
		Languages:        len(Languages(vocab, notes)),
		RecentVocabulary: head(vocab, RecentLimit),
		RecentNotes:      head(notes, RecentLimit),
	}

	since := now.Add(-Week)
	for _, v := range vocab {
		if v.CreatedAt.After(since) {
			s.ThisWeek++
		}
	}
	return s
}

func head[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
