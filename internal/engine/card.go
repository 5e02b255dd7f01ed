package engine

import (
	"github.com/CODE-SECX/English-Sikho/internal/markup"
	"github.com/CODE-SECX/English-Sikho/internal/models"
)

// Excerpt lengths on list cards, counted on stripped text.
const (
	MeaningExcerpt     = 100
	ContextExcerpt     = 80
	MomentExcerpt      = 60
	DescriptionExcerpt = 120
)

// Card is the plain-text summary of one entry as shown in a list.
type Card struct {
	Kind     models.Kind
	Heading  string
	Body     string
	Context  string
	Moment   string
	Language string
	Date     string
	Category string
	Color    string
}

func VocabularyCard(v models.Vocabulary) Card {
	return Card{
		Kind:     models.KindVocabulary,
		Heading:  v.Word,
		Body:     markup.Excerpt(v.Meaning, MeaningExcerpt),
		Context:  markup.Excerpt(v.Context, ContextExcerpt),
		Moment:   markup.Excerpt(v.MomentOfMemory, MomentExcerpt),
		Language: v.Language,
		Date:     v.Date,
	}
}

// NoteCard leaves Category empty when the referenced category is gone.
func NoteCard(n models.Note) Card {
	c := Card{
		Kind:     models.KindNote,
		Heading:  n.Title,
		Body:     markup.Excerpt(n.Description, DescriptionExcerpt),
		Moment:   markup.Excerpt(n.MomentOfMemory, MomentExcerpt),
		Language: n.Language,
		Date:     n.Date,
	}
	if n.Category != nil {
		c.Category = n.Category.Name
		c.Color = n.Category.Color
	}
	return c
}
