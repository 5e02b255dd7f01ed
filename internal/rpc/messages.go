package rpc

import (
	"time"

	"github.com/CODE-SECX/English-Sikho/internal/models"
)

// Empty is used where a call takes or returns nothing.
type Empty struct{}

type PingResponse struct {
	Status  string    `json:"status"`
	Version string    `json:"version"`
	Time    time.Time `json:"time"`
}

// DeleteRequest removes one row by id from any table.
type DeleteRequest struct {
	ID string `json:"id"`
}

type ListCategoriesResponse struct {
	Categories []models.Category `json:"categories"`
}

type CreateCategoryRequest struct {
	Draft models.CategoryDraft `json:"draft"`
}

type CategoryResponse struct {
	Category models.Category `json:"category"`
}

type UpdateCategoryRequest struct {
	ID    string               `json:"id"`
	Patch models.CategoryPatch `json:"patch"`
}

type ListVocabularyResponse struct {
	Vocabulary []models.Vocabulary `json:"vocabulary"`
}

type CreateVocabularyRequest struct {
	Draft models.VocabularyDraft `json:"draft"`
}

type VocabularyResponse struct {
	Vocabulary models.Vocabulary `json:"vocabulary"`
}

type UpdateVocabularyRequest struct {
	ID    string                 `json:"id"`
	Patch models.VocabularyPatch `json:"patch"`
}

type ListNotesResponse struct {
	Notes []models.Note `json:"notes"`
}

type CreateNoteRequest struct {
	Draft models.NoteDraft `json:"draft"`
}

type NoteResponse struct {
	Note models.Note `json:"note"`
}

type UpdateNoteRequest struct {
	ID    string           `json:"id"`
	Patch models.NotePatch `json:"patch"`
}

// ExportResponse points at an uploaded snapshot of all tables.
type ExportResponse struct {
	Key        string `json:"key"`
	URL        string `json:"url"`
	Categories int    `json:"categories"`
	Vocabulary int    `json:"vocabulary"`
	Notes      int    `json:"notes"`
}
