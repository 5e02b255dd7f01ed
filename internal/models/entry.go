package models

import "time"

// Entry is the read-only view shared by vocabulary entries and notes, used by
// search, sorting and grouping.
type Entry interface {
	Key() string
	Kind() Kind
	// Heading is the word or title.
	Heading() string
	// SearchText lists the raw fields matched by text search, heading first.
	SearchText() []string
	LearnedOn() string
	Created() time.Time
	Lang() string
	Moment() string
	// CategoryRef is the referenced category id, "" when none.
	CategoryRef() string
}

func (v Vocabulary) Key() string        { return v.ID }
func (v Vocabulary) Kind() Kind         { return KindVocabulary }
func (v Vocabulary) Heading() string    { return v.Word }
func (v Vocabulary) LearnedOn() string  { return v.Date }
func (v Vocabulary) Created() time.Time { return v.CreatedAt }
func (v Vocabulary) Lang() string       { return v.Language }
func (v Vocabulary) Moment() string     { return v.MomentOfMemory }
func (v Vocabulary) CategoryRef() string {
	return ""
}

func (v Vocabulary) SearchText() []string {
	return []string{v.Word, v.Meaning, v.Context, v.MomentOfMemory}
}

func (n Note) Key() string        { return n.ID }
func (n Note) Kind() Kind         { return KindNote }
func (n Note) Heading() string    { return n.Title }
func (n Note) LearnedOn() string  { return n.Date }
func (n Note) Created() time.Time { return n.CreatedAt }
func (n Note) Lang() string       { return n.Language }
func (n Note) Moment() string     { return n.MomentOfMemory }

func (n Note) CategoryRef() string {
	if n.CategoryID == nil {
		return ""
	}
	return *n.CategoryID
}

func (n Note) SearchText() []string {
	return []string{n.Title, n.Description, n.MomentOfMemory}
}

var (
	_ Entry = Vocabulary{}
	_ Entry = Note{}
)
