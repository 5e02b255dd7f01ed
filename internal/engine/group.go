package engine

import (
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/CODE-SECX/English-Sikho/internal/models"
)

// NoLetter collects entries whose heading is empty.
const NoLetter = "#"

type LetterGroup[E models.Entry] struct {
	Letter string
	Items  []E
}

// GroupByLetter buckets items by the uppercased first rune of their heading.
// Buckets are returned in lexicographic order and keep the input order inside.
func GroupByLetter[E models.Entry](items []E) []LetterGroup[E] {
	idx := map[string]int{}
	var groups []LetterGroup[E]

	for _, it := range items {
		letter := firstLetter(it.Heading())
		i, ok := idx[letter]
		if !ok {
			i = len(groups)
			idx[letter] = i
			groups = append(groups, LetterGroup[E]{Letter: letter})
		}
		groups[i].Items = append(groups[i].Items, it)
	}

	slices.SortFunc(groups, func(a, b LetterGroup[E]) int {
		switch {
		case a.Letter < b.Letter:
			return -1
		case a.Letter > b.Letter:
			return 1
		}
		return 0
	})
	return groups
}

func firstLetter(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return NoLetter
	}
	return string(unicode.ToUpper(r))
}

// LanguageBucket counts entries of both kinds carrying one language.
type LanguageBucket struct {
	Language   string
	Vocabulary int
	Notes      int
}

func (b LanguageBucket) Total() int { return b.Vocabulary + b.Notes }

// Languages lists every non-empty language used by either collection, sorted.
func Languages(vocab []models.Vocabulary, notes []models.Note) []LanguageBucket {
	counts := map[string]*LanguageBucket{}
	get := func(lang string) *LanguageBucket {
		b, ok := counts[lang]
		if !ok {
			b = &LanguageBucket{Language: lang}
			counts[lang] = b
		}
		return b
	}

	for _, v := range vocab {
		if v.Language != "" {
			get(v.Language).Vocabulary++
		}
	}
	for _, n := range notes {
		if n.Language != "" {
			get(n.Language).Notes++
		}
	}

	out := make([]LanguageBucket, 0, len(counts))
	for _, b := range counts {
		out = append(out, *b)
	}
	slices.SortFunc(out, func(a, b LanguageBucket) int {
		switch {
		case a.Language < b.Language:
			return -1
		case a.Language > b.Language:
			return 1
		}
		return 0
	})
	return out
}
