// Package share encodes single entries into self-contained share tokens and
// back. A token is the standard base64 encoding of a JSON object
// {"type": "vocabulary"|"note", "data": {...}}; the data never carries the
// id or creation time of the original entry.
package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/CODE-SECX/English-Sikho/internal/common"
	"github.com/CODE-SECX/English-Sikho/internal/models"
)

// legacyNoteKind is accepted on decode for links created before notes were
// called notes.
const legacyNoteKind = "sikho"

// VocabularyData is a vocabulary entry without id and created_at.
type VocabularyData struct {
	Word           string `json:"word"`
	Meaning        string `json:"meaning"`
	Context        string `json:"context"`
	MomentOfMemory string `json:"moment_of_memory"`
	Language       string `json:"language"`
	Date           string `json:"date"`
}

// CategoryData is the embedded category of a shared note, if any.
type CategoryData struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// NoteData is a note without id and created_at.
type NoteData struct {
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	MomentOfMemory string        `json:"moment_of_memory"`
	CategoryID     *string       `json:"category_id,omitempty"`
	Language       string        `json:"language"`
	Date           string        `json:"date"`
	Category       *CategoryData `json:"category,omitempty"`
}

// Payload is the decoded share content. Exactly one of Vocabulary and Note
// is set, as told by Kind.
type Payload struct {
	Kind       models.Kind
	Vocabulary *VocabularyData
	Note       *NoteData
}

type envelope struct {
	Type models.Kind     `json:"type"`
	Data json.RawMessage `json:"data"`
}

// FromVocabulary snapshots v for sharing.
func FromVocabulary(v models.Vocabulary) Payload {
	return Payload{Kind: models.KindVocabulary, Vocabulary: &VocabularyData{
		Word:           v.Word,
		Meaning:        v.Meaning,
		Context:        v.Context,
		MomentOfMemory: v.MomentOfMemory,
		Language:       v.Language,
		Date:           v.Date,
	}}
}

// FromNote snapshots n for sharing, including its category if it resolved.
func FromNote(n models.Note) Payload {
	d := &NoteData{
		Title:          n.Title,
		Description:    n.Description,
		MomentOfMemory: n.MomentOfMemory,
		CategoryID:     n.CategoryID,
		Language:       n.Language,
		Date:           n.Date,
	}
	if n.Category != nil {
		d.Category = &CategoryData{Name: n.Category.Name, Description: n.Category.Description, Color: n.Category.Color}
	}
	return Payload{Kind: models.KindNote, Note: d}
}

// Heading is the shared word or title.
func (p Payload) Heading() string {
	switch {
	case p.Vocabulary != nil:
		return p.Vocabulary.Word
	case p.Note != nil:
		return p.Note.Title
	}
	return ""
}

// Encode renders p as a share token.
func Encode(p Payload) (string, error) {
	var data any
	switch p.Kind {
	case models.KindVocabulary:
		if p.Vocabulary == nil {
			return "", fmt.Errorf("encode share token: missing vocabulary data")
		}
		data = p.Vocabulary
	case models.KindNote:
		if p.Note == nil {
			return "", fmt.Errorf("encode share token: missing note data")
		}
		data = p.Note
	default:
		return "", fmt.Errorf("encode share token: unknown kind %q", p.Kind)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode share token: %w", err)
	}
	b, err := json.Marshal(envelope{Type: p.Kind, Data: raw})
	if err != nil {
		return "", fmt.Errorf("encode share token: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// Decode parses a share token. Any malformed input yields an error wrapping
// common.ErrInvalidLink.
func Decode(token string) (Payload, error) {
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		// Tokens pasted from URLs may use the URL-safe alphabet.
		var uerr error
		b, uerr = base64.URLEncoding.DecodeString(strings.TrimSpace(token))
		if uerr != nil {
			return Payload{}, fmt.Errorf("%w: %v", common.ErrInvalidLink, err)
		}
	}

	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", common.ErrInvalidLink, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return Payload{}, fmt.Errorf("%w: missing data", common.ErrInvalidLink)
	}

	switch env.Type {
	case models.KindVocabulary:
		var d VocabularyData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return Payload{}, fmt.Errorf("%w: %v", common.ErrInvalidLink, err)
		}
		return Payload{Kind: models.KindVocabulary, Vocabulary: &d}, nil
	case models.KindNote, legacyNoteKind:
		var d NoteData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return Payload{}, fmt.Errorf("%w: %v", common.ErrInvalidLink, err)
		}
		return Payload{Kind: models.KindNote, Note: &d}, nil
	default:
		return Payload{}, fmt.Errorf("%w: unknown type %q", common.ErrInvalidLink, env.Type)
	}
}

// URL joins a base address and a token into a share link. The token is
// path-escaped so a "/" from the base64 alphabet stays inside one segment.
func URL(base, token string) string {
	return strings.TrimRight(base, "/") + "/share/" + url.PathEscape(token)
}
