package views

import (
	"github.com/CODE-SECX/English-Sikho/internal/client/collections"
	"github.com/CODE-SECX/English-Sikho/internal/logging"
	"github.com/CODE-SECX/English-Sikho/internal/models"
	"github.com/CODE-SECX/English-Sikho/internal/share"
)

type VocabularyPage = ListPage[models.Vocabulary, models.VocabularyDraft, models.VocabularyPatch]

var vocabularyKind = entryKind[models.Vocabulary, models.VocabularyDraft, models.VocabularyPatch]{
	blank: func(today string) models.VocabularyDraft {
		return models.VocabularyDraft{Language: "English", Date: today}
	},
	draftOf: models.Vocabulary.Draft,
	patchOf: models.VocabularyDraft.Patch,
	payload: share.FromVocabulary,
}

func NewVocabularyPage(vocab *collections.Vocabulary, shareBase string, l logging.Logger) *VocabularyPage {
	return newListPage(vocab, vocabularyKind, shareBase, l.With("page", "vocabulary"))
}
