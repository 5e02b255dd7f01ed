package cli

import (
	"fmt"
	"strings"

	"github.com/CODE-SECX/English-Sikho/internal/engine"
	"github.com/CODE-SECX/English-Sikho/internal/markup"
	"github.com/CODE-SECX/English-Sikho/internal/models"
	"github.com/CODE-SECX/English-Sikho/internal/share"
)

// shortIDLen is how much of an id lists show; commands accept any unique prefix.
const shortIDLen = 8

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

func (a *App) printCard(id string, c engine.Card) {
	var tags []string
	for _, t := range []string{c.Language, c.Date, c.Category} {
		if t != "" {
			tags = append(tags, t)
		}
	}
	a.printf("[%s] %s", shortID(id), c.Heading)
	if len(tags) > 0 {
		a.printf("  (%s)", strings.Join(tags, ", "))
	}
	a.printf("\n")
	if c.Body != "" {
		a.printf("    %s\n", c.Body)
	}
	if c.Context != "" {
		a.printf("    Context: \"%s\"\n", c.Context)
	}
	if c.Moment != "" {
		a.printf("    Memory: %s\n", c.Moment)
	}
}

func (a *App) printVocabulary(v models.Vocabulary) {
	a.printf("Word:      %s\n", v.Word)
	a.printf("Meaning:   %s\n", markup.Strip(v.Meaning))
	if v.Context != "" {
		a.printf("Context:   %s\n", markup.Strip(v.Context))
	}
	if v.MomentOfMemory != "" {
		a.printf("Memory:    %s\n", markup.Strip(v.MomentOfMemory))
	}
	a.printf("Language:  %s\n", v.Language)
	a.printf("Learned:   %s\n", share.LongDate(v.Date))
	a.printf("ID:        %s\n", v.ID)
}

func (a *App) printNote(n models.Note) {
	a.printf("Title:     %s\n", n.Title)
	if n.Category != nil {
		a.printf("Category:  %s\n", n.Category.Name)
	}
	a.printf("Details:   %s\n", markup.Strip(n.Description))
	if n.MomentOfMemory != "" {
		a.printf("Memory:    %s\n", markup.Strip(n.MomentOfMemory))
	}
	a.printf("Language:  %s\n", n.Language)
	a.printf("Date:      %s\n", share.LongDate(n.Date))
	a.printf("ID:        %s\n", n.ID)
}
