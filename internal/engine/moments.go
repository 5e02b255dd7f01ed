package engine

import (
	"github.com/CODE-SECX/English-Sikho/internal/models"
)

// MomentGroup gathers every entry whose moment of memory is exactly Moment.
//
// Matching is on the raw stored string: "<b>park bench</b>" and "park bench"
// are different moments.
type MomentGroup struct {
	Moment     string
	Vocabulary []models.Vocabulary
	Notes      []models.Note
}

func (g MomentGroup) Uses() int { return len(g.Vocabulary) + len(g.Notes) }

// GroupByMoment groups by moment in first-seen order, vocabulary first.
// Entries without a moment are left out.
func GroupByMoment(vocab []models.Vocabulary, notes []models.Note) []MomentGroup {
	idx := map[string]int{}
	var groups []MomentGroup

	slot := func(m string) int {
		i, ok := idx[m]
		if !ok {
			i = len(groups)
			idx[m] = i
			groups = append(groups, MomentGroup{Moment: m})
		}
		return i
	}

	for _, v := range vocab {
		if v.MomentOfMemory == "" {
			continue
		}
		i := slot(v.MomentOfMemory)
		groups[i].Vocabulary = append(groups[i].Vocabulary, v)
	}
	for _, n := range notes {
		if n.MomentOfMemory == "" {
			continue
		}
		i := slot(n.MomentOfMemory)
		groups[i].Notes = append(groups[i].Notes, n)
	}
	return groups
}

// LanguageMoments lists the distinct moments used in one language, per kind.
type LanguageMoments struct {
	Language   string
	Vocabulary []string
	Notes      []string
}

// MomentsByLanguage returns, for each language with at least one moment,
// the distinct moments of each kind in first-seen order. Languages are sorted.
func MomentsByLanguage(vocab []models.Vocabulary, notes []models.Note) []LanguageMoments {
	var out []LanguageMoments
	for _, b := range Languages(vocab, notes) {
		lm := LanguageMoments{Language: b.Language}
		for _, v := range vocab {
			if v.Language == b.Language && v.MomentOfMemory != "" {
				lm.Vocabulary = appendUnique(lm.Vocabulary, v.MomentOfMemory)
			}
		}
		for _, n := range notes {
			if n.Language == b.Language && n.MomentOfMemory != "" {
				lm.Notes = appendUnique(lm.Notes, n.MomentOfMemory)
			}
		}
		if len(lm.Vocabulary) > 0 || len(lm.Notes) > 0 {
			out = append(out, lm)
		}
	}
	return out
}

// MomentUsage counts the entries of each kind carrying exactly moment.
func MomentUsage(vocab []models.Vocabulary, notes []models.Note, moment string) (vocabCount, noteCount int) {
	if moment == "" {
		return 0, 0
	}
	for _, v := range vocab {
		if v.MomentOfMemory == moment {
			vocabCount++
		}
	}
	for _, n := range notes {
		if n.MomentOfMemory == moment {
			noteCount++
		}
	}
	return vocabCount, noteCount
}

func appendUnique(list []string, s string) []string {
	for _, x := range list {
		if x == s {
			return list
		}
	}
	return append(list, s)
}
