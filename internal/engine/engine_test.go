package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CODE-SECX/English-Sikho/internal/models"
)

func ptr(s string) *string { return &s }

var base = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func sampleVocabulary() []models.Vocabulary {
	return []models.Vocabulary{
		{ID: "v3", Word: "Banana", Meaning: "<p>a <b>yellow</b> fruit</p>", Language: "English", Date: "2024-01-03", CreatedAt: base.Add(3 * time.Hour)},
		{ID: "v2", Word: "apple", Meaning: "fruit", Context: "an apple a day", Language: "English", Date: "2024-01-02", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "v1", Word: "Apple", Meaning: "company", MomentOfMemory: "park bench", Language: "", Date: "2024-01-01", CreatedAt: base.Add(time.Hour)},
	}
}

func sampleNotes() []models.Note {
	return []models.Note{
		{ID: "n2", Title: "Idioms", Description: "break a <i>leg</i>", MomentOfMemory: "<b>park bench</b>", CategoryID: ptr("c1"), Language: "Hindi", Date: "2024-01-05", CreatedAt: base.Add(5 * time.Hour)},
		{ID: "n1", Title: "", Description: "untitled", CategoryID: ptr("gone"), Language: "English", Date: "2024-01-04", CreatedAt: base.Add(4 * time.Hour)},
	}
}

func words(items []models.Vocabulary) []string {
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = v.Word
	}
	return out
}

func ids[E models.Entry](items []E) []string {
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = v.Key()
	}
	return out
}

func TestMatchesText(t *testing.T) {
	vocab := sampleVocabulary()
	notes := sampleNotes()

	tests := []struct {
		name  string
		entry models.Entry
		q     string
		want  bool
	}{
		{name: "empty query", entry: vocab[0], q: "", want: true},
		{name: "word case-insensitive", entry: vocab[0], q: "bAnAnA", want: true},
		{name: "meaning stripped", entry: vocab[0], q: "yellow fruit", want: true},
		{name: "tag text is not content", entry: vocab[0], q: "<b>", want: false},
		{name: "context", entry: vocab[1], q: "A DAY", want: true},
		{name: "moment", entry: vocab[2], q: "bench", want: true},
		{name: "note description", entry: notes[0], q: "a leg", want: true},
		{name: "note moment stripped", entry: notes[0], q: "park bench", want: true},
		{name: "no match", entry: notes[1], q: "zebra", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesText(tt.entry, tt.q))
		})
	}
}

func TestFilter_ComposesWithAnd(t *testing.T) {
	vocab := sampleVocabulary()
	notes := sampleNotes()

	assert.Equal(t, []string{"v3", "v2", "v1"}, ids(Filter(vocab, Query{})))
	assert.Equal(t, []string{"v3", "v2"}, ids(Filter(vocab, Query{Language: "English"})))
	assert.Equal(t, []string{"v2"}, ids(Filter(vocab, Query{Language: "English", Search: "apple"})))
	assert.Equal(t, []string{"v1"}, ids(Filter(vocab, Query{Date: "2024-01-01"})))
	assert.Empty(t, Filter(vocab, Query{Date: "2024-1-1"}))
	assert.Equal(t, []string{"n2"}, ids(Filter(notes, Query{CategoryID: "c1"})))
	assert.Empty(t, Filter(vocab, Query{CategoryID: "c1"}))
	assert.True(t, Query{}.IsZero())
}

func TestSort_ByTitleScenario(t *testing.T) {
	items := []models.Vocabulary{
		{ID: "1", Word: "Apple", Date: "2024-01-01"},
		{ID: "2", Word: "apple", Date: "2024-01-02"},
		{ID: "3", Word: "Banana", Date: "2024-01-03"},
	}

	asc := Sort(items, Order{Key: SortTitle, Direction: Asc})
	assert.Equal(t, []string{"Apple", "apple", "Banana"}, words(asc))

	desc := Sort(items, Order{Key: SortTitle, Direction: Desc})
	assert.Equal(t, []string{"Banana", "apple", "Apple"}, words(desc))

	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestSort_ByDateAndCreated(t *testing.T) {
	vocab := sampleVocabulary()

	assert.Equal(t, []string{"v1", "v2", "v3"}, ids(Sort(vocab, Order{Key: SortDate, Direction: Asc})))
	assert.Equal(t, []string{"v3", "v2", "v1"}, ids(Sort(vocab, DefaultOrder)))
	assert.Equal(t, []string{"v1", "v2", "v3"}, ids(Sort(vocab, Order{Key: SortCreatedAt, Direction: Asc})))

	// input untouched
	assert.Equal(t, []string{"v3", "v2", "v1"}, ids(vocab))
}

func TestSort_UnparsableDatesSortFirst(t *testing.T) {
	items := []models.Vocabulary{
		{ID: "a", Date: "2024-01-01"},
		{ID: "b", Date: ""},
	}
	assert.Equal(t, []string{"b", "a"}, ids(Sort(items, Order{Key: SortDate, Direction: Asc})))
}

func TestView_DefaultPreservesFetchOrder(t *testing.T) {
	vocab := sampleVocabulary()
	assert.Equal(t, ids(vocab), ids(View(vocab, Query{}, DefaultOrder)))
}

func TestView_Idempotent(t *testing.T) {
	vocab := sampleVocabulary()
	q := Query{Search: "a"}
	o := Order{Key: SortTitle, Direction: Asc}

	first := View(vocab, q, o)
	second := View(vocab, q, o)
	assert.Equal(t, first, second)
	assert.Equal(t, first, View(first, q, o))
}

func TestParseSortKey(t *testing.T) {
	k, ok := ParseSortKey("word")
	require.True(t, ok)
	assert.Equal(t, SortTitle, k)

	_, ok = ParseSortKey("color")
	assert.False(t, ok)

	assert.Equal(t, Asc, Desc.Toggle())
	assert.Equal(t, Desc, Asc.Toggle())
}

func TestGroupByLetter(t *testing.T) {
	vocab := sampleVocabulary()
	groups := GroupByLetter(vocab)

	require.Len(t, groups, 2)
	assert.Equal(t, "A", groups[0].Letter)
	assert.Equal(t, []string{"v2", "v1"}, ids(groups[0].Items))
	assert.Equal(t, "B", groups[1].Letter)

	noteGroups := GroupByLetter(sampleNotes())
	require.Len(t, noteGroups, 2)
	assert.Equal(t, NoLetter, noteGroups[0].Letter)
	assert.Equal(t, "I", noteGroups[1].Letter)
}

func TestLanguages_ExcludesEmpty(t *testing.T) {
	got := Languages(sampleVocabulary(), sampleNotes())
	assert.Equal(t, []LanguageBucket{
		{Language: "English", Vocabulary: 2, Notes: 1},
		{Language: "Hindi", Vocabulary: 0, Notes: 1},
	}, got)
	assert.Equal(t, 3, got[0].Total())
}

func TestGroupByMoment_ExactStringPolicy(t *testing.T) {
	vocab := sampleVocabulary()
	notes := sampleNotes()

	groups := GroupByMoment(vocab, notes)
	require.Len(t, groups, 2)

	assert.Equal(t, "park bench", groups[0].Moment)
	assert.Equal(t, []string{"v1"}, ids(groups[0].Vocabulary))
	assert.Empty(t, groups[0].Notes)

	assert.Equal(t, "<b>park bench</b>", groups[1].Moment)
	assert.Equal(t, []string{"n2"}, ids(groups[1].Notes))
	assert.Empty(t, groups[1].Vocabulary)

	for _, g := range groups {
		assert.NotEmpty(t, g.Moment)
		assert.Equal(t, 1, g.Uses())
	}
}

func TestMomentsByLanguage(t *testing.T) {
	vocab := append(sampleVocabulary(), models.Vocabulary{ID: "v4", Word: "x", MomentOfMemory: "train", Language: "English"}, models.Vocabulary{ID: "v5", Word: "y", MomentOfMemory: "train", Language: "English"})
	got := MomentsByLanguage(vocab, sampleNotes())

	assert.Equal(t, []LanguageMoments{
		{Language: "English", Vocabulary: []string{"train"}},
		{Language: "Hindi", Notes: []string{"<b>park bench</b>"}},
	}, got)
}

func TestMomentUsage(t *testing.T) {
	vocab := sampleVocabulary()
	notes := sampleNotes()

	v, n := MomentUsage(vocab, notes, "park bench")
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, n)

	v, n = MomentUsage(vocab, notes, "")
	assert.Zero(t, v+n)
}

func TestSummarize(t *testing.T) {
	now := base.Add(24 * time.Hour)
	vocab := append(sampleVocabulary(), models.Vocabulary{ID: "old", Word: "old", CreatedAt: base.Add(-30 * 24 * time.Hour)})
	for i := 0; i < 4; i++ {
		vocab = append(vocab, models.Vocabulary{ID: strings.Repeat("z", i+1), CreatedAt: base})
	}

	s := Summarize(vocab, sampleNotes(), []models.Category{{ID: "c1"}}, now)

	assert.Equal(t, 8, s.Vocabulary)
	assert.Equal(t, 2, s.Notes)
	assert.Equal(t, 1, s.Categories)
	assert.Equal(t, 2, s.Languages)
	assert.Equal(t, 7, s.ThisWeek)
	assert.Equal(t, []string{"v3", "v2", "v1", "old", "z"}, ids(s.RecentVocabulary))
	assert.Len(t, s.RecentNotes, 2)
}

func TestCards(t *testing.T) {
	long := "<p>" + strings.Repeat("m", 150) + "</p>"
	c := VocabularyCard(models.Vocabulary{Word: "w", Meaning: long, Context: long, MomentOfMemory: long})

	assert.Equal(t, strings.Repeat("m", MeaningExcerpt)+"...", c.Body)
	assert.Equal(t, strings.Repeat("m", ContextExcerpt)+"...", c.Context)
	assert.Equal(t, strings.Repeat("m", MomentExcerpt)+"...", c.Moment)

	n := NoteCard(models.Note{Title: "t", Description: long, CategoryID: ptr("gone")})
	assert.Equal(t, strings.Repeat("m", DescriptionExcerpt)+"...", n.Body)
	assert.Empty(t, n.Category)

	n = NoteCard(models.Note{Title: "t", Category: &models.Category{Name: "Grammar", Color: "#1e40af"}})
	assert.Equal(t, "Grammar", n.Category)
	assert.Equal(t, "#1e40af", n.Color)
}
