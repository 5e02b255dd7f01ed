package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/CODE-SECX/English-Sikho/internal/common"
	"github.com/CODE-SECX/English-Sikho/internal/logging"
	"github.com/CODE-SECX/English-Sikho/internal/models"
	"github.com/CODE-SECX/English-Sikho/internal/rpc"
	"github.com/CODE-SECX/English-Sikho/internal/server/services"
)

type fakeRecords struct {
	RecordService

	categories []models.Category
	vocabulary []models.Vocabulary
	notes      []models.Note
	err        error

	lastID    string
	lastDraft any
	lastPatch any
}

func (f *fakeRecords) ListCategories(ctx context.Context) ([]models.Category, error) {
	return f.categories, f.err
}

func (f *fakeRecords) CreateCategory(ctx context.Context, d models.CategoryDraft) (models.Category, error) {
	f.lastDraft = d
	if f.err != nil {
		return models.Category{}, f.err
	}
	return models.Category{ID: "c1", Name: d.Name, Color: d.Color}, nil
}

func (f *fakeRecords) UpdateCategory(ctx context.Context, id string, p models.CategoryPatch) error {
	f.lastID, f.lastPatch = id, p
	return f.err
}

func (f *fakeRecords) DeleteCategory(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}

func (f *fakeRecords) ListVocabulary(ctx context.Context) ([]models.Vocabulary, error) {
	return f.vocabulary, f.err
}

func (f *fakeRecords) CreateVocabulary(ctx context.Context, d models.VocabularyDraft) (models.Vocabulary, error) {
	f.lastDraft = d
	if f.err != nil {
		return models.Vocabulary{}, f.err
	}
	return models.Vocabulary{ID: "v1", Word: d.Word, Language: d.Language}, nil
}

func (f *fakeRecords) UpdateVocabulary(ctx context.Context, id string, p models.VocabularyPatch) error {
	f.lastID, f.lastPatch = id, p
	return f.err
}

func (f *fakeRecords) DeleteVocabulary(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}

func (f *fakeRecords) ListNotes(ctx context.Context) ([]models.Note, error) {
	return f.notes, f.err
}

func (f *fakeRecords) CreateNote(ctx context.Context, d models.NoteDraft) (models.Note, error) {
	f.lastDraft = d
	if f.err != nil {
		return models.Note{}, f.err
	}
	return models.Note{ID: "n1", Title: d.Title}, nil
}

func (f *fakeRecords) UpdateNote(ctx context.Context, id string, p models.NotePatch) error {
	f.lastID, f.lastPatch = id, p
	return f.err
}

func (f *fakeRecords) DeleteNote(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}

type fakeExports struct {
	res *services.ExportResult
	err error
}

func (f *fakeExports) Export(ctx context.Context) (*services.ExportResult, error) {
	return f.res, f.err
}

func newHandlerServer(rs RecordService, es ExportService) *GRPCServer {
	return NewGRPCServer(":0", logging.Nop{}, rs, es, "secret")
}

func TestPing(t *testing.T) {
	s := newHandlerServer(&fakeRecords{}, &fakeExports{})

	before := time.Now().UTC()
	resp, err := s.Ping(context.Background(), &rpc.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
	assert.False(t, resp.Time.Before(before))
}

func TestCategoryHandlers(t *testing.T) {
	ctx := context.Background()
	f := &fakeRecords{categories: []models.Category{{ID: "a", Name: "Travel"}}}
	s := newHandlerServer(f, &fakeExports{})

	list, err := s.ListCategories(ctx, &rpc.Empty{})
	require.NoError(t, err)
	assert.Equal(t, f.categories, list.Categories)

	created, err := s.CreateCategory(ctx, &rpc.CreateCategoryRequest{Draft: models.CategoryDraft{Name: "Work", Color: "#1e40af"}})
	require.NoError(t, err)
	assert.Equal(t, "c1", created.Category.ID)
	assert.Equal(t, "Work", created.Category.Name)

	name := "Trips"
	_, err = s.UpdateCategory(ctx, &rpc.UpdateCategoryRequest{ID: "a", Patch: models.CategoryPatch{Name: &name}})
	require.NoError(t, err)
	assert.Equal(t, "a", f.lastID)
	assert.Equal(t, models.CategoryPatch{Name: &name}, f.lastPatch)

	_, err = s.DeleteCategory(ctx, &rpc.DeleteRequest{ID: "a"})
	require.NoError(t, err)
	assert.Equal(t, "a", f.lastID)
}

func TestVocabularyHandlers(t *testing.T) {
	ctx := context.Background()
	f := &fakeRecords{vocabulary: []models.Vocabulary{{ID: "v", Word: "bench"}}}
	s := newHandlerServer(f, &fakeExports{})

	list, err := s.ListVocabulary(ctx, &rpc.Empty{})
	require.NoError(t, err)
	assert.Len(t, list.Vocabulary, 1)

	created, err := s.CreateVocabulary(ctx, &rpc.CreateVocabularyRequest{Draft: models.VocabularyDraft{Word: "park", Language: "English"}})
	require.NoError(t, err)
	assert.Equal(t, "park", created.Vocabulary.Word)

	_, err = s.UpdateVocabulary(ctx, &rpc.UpdateVocabularyRequest{ID: "v", Patch: models.MomentPatch("")})
	require.NoError(t, err)
	assert.Equal(t, "v", f.lastID)

	_, err = s.DeleteVocabulary(ctx, &rpc.DeleteRequest{ID: "v"})
	require.NoError(t, err)
}

func TestNoteHandlers(t *testing.T) {
	ctx := context.Background()
	f := &fakeRecords{notes: []models.Note{{ID: "n", Title: "Idioms"}}}
	s := newHandlerServer(f, &fakeExports{})

	list, err := s.ListNotes(ctx, &rpc.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "Idioms", list.Notes[0].Title)

	created, err := s.CreateNote(ctx, &rpc.CreateNoteRequest{Draft: models.NoteDraft{Title: "Phrasal verbs"}})
	require.NoError(t, err)
	assert.Equal(t, "n1", created.Note.ID)

	_, err = s.UpdateNote(ctx, &rpc.UpdateNoteRequest{ID: "n", Patch: models.NoteMomentPatch("rain")})
	require.NoError(t, err)
	assert.Equal(t, "n", f.lastID)

	_, err = s.DeleteNote(ctx, &rpc.DeleteRequest{ID: "n"})
	require.NoError(t, err)
}

func TestExportHandler(t *testing.T) {
	ex := &fakeExports{res: &services.ExportResult{Key: "exports/k.json", URL: "http://s3/k", Categories: 1, Vocabulary: 2, Notes: 3}}
	s := newHandlerServer(&fakeRecords{}, ex)

	resp, err := s.Export(context.Background(), &rpc.Empty{})
	require.NoError(t, err)
	assert.Equal(t, &rpc.ExportResponse{Key: "exports/k.json", URL: "http://s3/k", Categories: 1, Vocabulary: 2, Notes: 3}, resp)

	ex.res, ex.err = nil, errors.New("s3 down")
	_, err = s.Export(context.Background(), &rpc.Empty{})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestHandlers_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"validation", fmt.Errorf("%w: word is required", common.ErrorValidation), codes.InvalidArgument},
		{"unauthorized", common.ErrorUnauthorized, codes.Unauthenticated},
		{"not found", common.ErrorNotFound, codes.NotFound},
		{"other", errors.New("db error: boom"), codes.Internal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newHandlerServer(&fakeRecords{err: tc.err}, &fakeExports{})

			_, err := s.CreateVocabulary(context.Background(), &rpc.CreateVocabularyRequest{})
			require.Error(t, err)
			assert.Equal(t, tc.code, status.Code(err))
		})
	}
}

func TestHandlers_InternalErrorHidesDetails(t *testing.T) {
	s := newHandlerServer(&fakeRecords{err: errors.New("db error: password=hunter2")}, &fakeExports{})

	_, err := s.ListNotes(context.Background(), &rpc.Empty{})
	st, _ := status.FromError(err)
	assert.Equal(t, "internal error", st.Message())
}
