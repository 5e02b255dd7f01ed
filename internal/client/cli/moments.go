package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/CODE-SECX/English-Sikho/internal/engine"
	"github.com/CODE-SECX/English-Sikho/internal/markup"
)

// Moments without a language lists languages that have moments; with one it
// lists that language's moments and their usage.
func (a *App) Moments(ctx context.Context, language string) error {
	a.moments.Select(language)
	if language == "" {
		langs := a.moments.Languages()
		if len(langs) == 0 {
			a.printf("No moments of memory recorded yet.\n")
			return nil
		}
		for _, l := range langs {
			a.printf("%s: %d vocabulary moments, %d note moments\n", l.Language, len(l.Vocabulary), len(l.Notes))
		}
		return nil
	}

	groups := a.moments.Moments()
	if len(groups) == 0 {
		a.printf("No moments of memory for %s.\n", language)
		return nil
	}
	for i, g := range groups {
		a.printMoment(i+1, g)
	}
	return nil
}

func (a *App) printMoment(n int, g engine.MomentGroup) {
	vocab, notes := a.moments.Usage(g.Moment)
	a.printf("%d. %s  (%d words, %d notes)\n", n, markup.Strip(g.Moment), vocab, notes)
	for _, v := range g.Vocabulary {
		a.printf("    word: %s\n", v.Word)
	}
	for _, note := range g.Notes {
		a.printf("    note: %s\n", note.Title)
	}
}

// pickMoment asks for a moment by its number in the last listing.
func (a *App) pickMoment() (string, error) {
	groups := a.moments.Moments()
	if len(groups) == 0 {
		return "", errors.New("no moments listed, run 'moments <language>' first")
	}
	for i, g := range groups {
		a.printf("%d. %s\n", i+1, markup.Strip(g.Moment))
	}

	s, err := GetSimpleText(a.reader, "Moment number", a.out)
	if err != nil {
		return "", err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > len(groups) {
		return "", errors.New("invalid moment number")
	}
	return groups[n-1].Moment, nil
}

func (a *App) RenameMoment(ctx context.Context) error {
	from, err := a.pickMoment()
	if err != nil {
		return err
	}
	to, err := GetWithDefault(a.reader, "New text", from, a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()
	n, err := a.moments.Rename(ctx, from, to)
	if err != nil {
		return err
	}
	a.printf("Updated %d entries.\n", n)
	return nil
}

func (a *App) ClearMoment(ctx context.Context) error {
	moment, err := a.pickMoment()
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()
	n, err := a.moments.Clear(ctx, moment, a.confirm)
	if err != nil {
		return err
	}
	a.printf("Updated %d entries.\n", n)
	return nil
}
