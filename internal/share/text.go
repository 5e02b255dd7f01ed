package share

import (
	"strings"
	"time"

	"github.com/CODE-SECX/English-Sikho/internal/common"
	"github.com/CODE-SECX/English-Sikho/internal/markup"
	"github.com/CODE-SECX/English-Sikho/internal/models"
)

const footer = "---\nShared from English Learning App"

// LongDate formats a stored YYYY-MM-DD date as "January 02, 2006". Dates
// that do not parse are returned as they are.
func LongDate(s string) string {
	t, err := time.Parse(common.DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("January 02, 2006")
}

// Text renders the plain-text share card for p.
func Text(p Payload) string {
	var lines []string

	switch p.Kind {
	case models.KindVocabulary:
		if p.Vocabulary == nil {
			return ""
		}
		v := p.Vocabulary
		lines = append(lines, "📚 English Word: "+v.Word, "📖 Meaning: "+markup.Strip(v.Meaning))
		if v.Context != "" {
			lines = append(lines, `💬 Context: "`+markup.Strip(v.Context)+`"`)
		}
		if v.MomentOfMemory != "" {
			lines = append(lines, "💡 Memory Aid: "+markup.Strip(v.MomentOfMemory))
		}
		lines = append(lines, "📅 Learned on: "+LongDate(v.Date))
	case models.KindNote:
		if p.Note == nil {
			return ""
		}
		n := p.Note
		lines = append(lines, "🧠 Learning Note: "+n.Title)
		if n.Category != nil {
			lines = append(lines, "🏷️ Category: "+n.Category.Name)
		}
		lines = append(lines, "📝 Description: "+markup.Strip(n.Description))
		if n.MomentOfMemory != "" {
			lines = append(lines, "💡 Memory Aid: "+markup.Strip(n.MomentOfMemory))
		}
		lines = append(lines, "📅 Date: "+LongDate(n.Date))
	default:
		return ""
	}

	lines = append(lines, footer)
	return strings.Join(lines, "\n\n")
}

// Title is the short title offered to native share targets.
func Title(p Payload) string {
	if p.Kind == models.KindVocabulary {
		return "Word: " + p.Heading()
	}
	return "Note: " + p.Heading()
}
