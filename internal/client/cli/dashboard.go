package cli

import (
	"context"

	"github.com/CODE-SECX/English-Sikho/internal/engine"
	"github.com/CODE-SECX/English-Sikho/internal/filex"
	"github.com/CODE-SECX/English-Sikho/internal/netx"
)

// exportDir is where downloaded snapshots are stored, relative to the
// working directory.
const exportDir = "exports"

// Test seams.
var (
	downloadFn = netx.DownloadPresignedURL
	saveFileFn = filex.WriteInSubDir
)

func (a *App) Dashboard(ctx context.Context) error {
	if a.dashboard.Loading() {
		a.printf("Loading...\n")
	}
	s := a.dashboard.Summary()
	a.printf("Words: %d  Notes: %d  Categories: %d  Languages: %d  This week: %d\n",
		s.Vocabulary, s.Notes, s.Categories, s.Languages, s.ThisWeek)

	if langs := a.dashboard.Languages(); len(langs) > 0 {
		a.printf("\nLanguages:\n")
		for _, l := range langs {
			a.printf("  %-10s %d words, %d notes\n", l.Language, l.Vocabulary, l.Notes)
		}
	}

	if len(s.RecentVocabulary) > 0 {
		a.printf("\nRecent vocabulary:\n")
		for _, v := range s.RecentVocabulary {
			a.printCard(v.ID, engine.VocabularyCard(v))
		}
	}
	if len(s.RecentNotes) > 0 {
		a.printf("\nRecent notes:\n")
		for _, n := range s.RecentNotes {
			a.printCard(n.ID, engine.NoteCard(n))
		}
	}
	return nil
}

// Export asks the store for a snapshot and downloads it into exportDir. The
// key must carry the service role.
func (a *App) Export(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	res, err := a.client.Export(ctx)
	if err != nil {
		a.logger.Error(ctx, "export failed", "error", err)
		return err
	}
	a.printf("Exported %d categories, %d words, %d notes to %s\n", res.Categories, res.Vocabulary, res.Notes, res.Key)
	if res.URL == "" {
		return nil
	}

	data, err := downloadFn(ctx, res.URL)
	if err != nil {
		a.logger.Warn(ctx, "snapshot download failed", "error", err)
		a.printf("Download it within 15 minutes from: %s\n", res.URL)
		return nil
	}
	path, err := saveFileFn(exportDir, res.Key, data)
	if err != nil {
		return err
	}
	a.printf("Saved to %s\n", path)
	return nil
}
