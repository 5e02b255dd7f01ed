// Package models defines the records kept by the store: categories,
// vocabulary entries, and notes ("sikho"), together with the drafts used to
// create them and the patches used to change them.
package models

import "time"

// Kind tells vocabulary entries and notes apart where both are handled together.
type Kind string

const (
	KindVocabulary Kind = "vocabulary"
	KindNote       Kind = "note"
)

// DefaultColor is the colour given to a new category.
const DefaultColor = "#059669"

// Palette is the set of suggested category colours.
var Palette = []string{"#059669", "#1e40af", "#dc2626", "#7c3aed", "#ea580c", "#0891b2", "#be185d", "#374151"}

// Languages are suggestions only; any other value is accepted.
var Languages = []string{"English", "Hindi", "Urdu", "Punjabi", "Spanish", "French", "German", "Japanese", "Other"}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

// Vocabulary is a single word with its meaning. Meaning, Context and
// MomentOfMemory may contain HTML markup.
type Vocabulary struct {
	ID             string    `json:"id"`
	Word           string    `json:"word"`
	Meaning        string    `json:"meaning"`
	Context        string    `json:"context"`
	MomentOfMemory string    `json:"moment_of_memory"`
	Language       string    `json:"language"`
	Date           string    `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}

// Note is a freeform learning note. CategoryID may point at a category that
// no longer exists, in which case Category is nil after a fetch.
type Note struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	MomentOfMemory string    `json:"moment_of_memory"`
	CategoryID     *string   `json:"category_id"`
	Language       string    `json:"language"`
	Date           string    `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
	Category       *Category `json:"category,omitempty"`
}

type CategoryDraft struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}

type VocabularyDraft struct {
	Word           string `json:"word" validate:"required"`
	Meaning        string `json:"meaning"`
	Context        string `json:"context"`
	MomentOfMemory string `json:"moment_of_memory"`
	Language       string `json:"language"`
	Date           string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// NoteDraft uses an empty CategoryID for "no category".
type NoteDraft struct {
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description"`
	MomentOfMemory string `json:"moment_of_memory"`
	CategoryID     string `json:"category_id"`
	Language       string `json:"language"`
	Date           string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// Patches leave nil fields untouched.

type CategoryPatch struct {
	Name        *string `json:"name,omitempty" validate:"omitnil,min=1"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty" validate:"omitnil,hexcolor"`
}

type VocabularyPatch struct {
	Word           *string `json:"word,omitempty" validate:"omitnil,min=1"`
	Meaning        *string `json:"meaning,omitempty"`
	Context        *string `json:"context,omitempty"`
	MomentOfMemory *string `json:"moment_of_memory,omitempty"`
	Language       *string `json:"language,omitempty"`
	Date           *string `json:"date,omitempty" validate:"omitnil,datetime=2006-01-02"`
}

// NotePatch.CategoryID pointing at "" clears the category.
type NotePatch struct {
	Title          *string `json:"title,omitempty" validate:"omitnil,min=1"`
	Description    *string `json:"description,omitempty"`
	MomentOfMemory *string `json:"moment_of_memory,omitempty"`
	CategoryID     *string `json:"category_id,omitempty"`
	Language       *string `json:"language,omitempty"`
	Date           *string `json:"date,omitempty" validate:"omitnil,datetime=2006-01-02"`
}

func (c Category) Draft() CategoryDraft {
	return CategoryDraft{Name: c.Name, Description: c.Description, Color: c.Color}
}

func (v Vocabulary) Draft() VocabularyDraft {
	return VocabularyDraft{
		Word:           v.Word,
		Meaning:        v.Meaning,
		Context:        v.Context,
		MomentOfMemory: v.MomentOfMemory,
		Language:       v.Language,
		Date:           v.Date,
	}
}

func (n Note) Draft() NoteDraft {
	d := NoteDraft{
		Title:          n.Title,
		Description:    n.Description,
		MomentOfMemory: n.MomentOfMemory,
		Language:       n.Language,
		Date:           n.Date,
	}
	if n.CategoryID != nil {
		d.CategoryID = *n.CategoryID
	}
	return d
}

// Patch turns a full form into an update that overwrites every field.
func (d CategoryDraft) Patch() CategoryPatch {
	return CategoryPatch{Name: &d.Name, Description: &d.Description, Color: &d.Color}
}

func (d VocabularyDraft) Patch() VocabularyPatch {
	return VocabularyPatch{
		Word:           &d.Word,
		Meaning:        &d.Meaning,
		Context:        &d.Context,
		MomentOfMemory: &d.MomentOfMemory,
		Language:       &d.Language,
		Date:           &d.Date,
	}
}

func (d NoteDraft) Patch() NotePatch {
	return NotePatch{
		Title:          &d.Title,
		Description:    &d.Description,
		MomentOfMemory: &d.MomentOfMemory,
		CategoryID:     &d.CategoryID,
		Language:       &d.Language,
		Date:           &d.Date,
	}
}

// MomentPatch rewrites only the moment of memory; "" clears it.
func MomentPatch(moment string) VocabularyPatch {
	return VocabularyPatch{MomentOfMemory: &moment}
}

func NoteMomentPatch(moment string) NotePatch {
	return NotePatch{MomentOfMemory: &moment}
}
