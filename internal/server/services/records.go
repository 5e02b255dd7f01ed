// Package services holds the record store's business logic: validating and
// stamping new records, applying patches, and exporting snapshots.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/CODE-SECX/English-Sikho/internal/common"
	"github.com/CODE-SECX/English-Sikho/internal/models"
	"github.com/CODE-SECX/English-Sikho/internal/server/repositories/repomanager"
)

// RecordService serves the three tables of the store. Ids and creation
// times are assigned here, never by the caller.
type RecordService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	validate    *validator.Validate
	now         func() time.Time
	newID       func() string
}

func NewRecordService(db *sql.DB, repomanager repomanager.RepositoryManager) *RecordService {
	return &RecordService{
		db:          db,
		repomanager: repomanager,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
}

func (s *RecordService) check(v any) error {
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return nil
}

func requireID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", common.ErrorValidation)
	}
	return nil
}

func (s *RecordService) today() string {
	return s.now().Format(common.DateLayout)
}

func (s *RecordService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repomanager.Categories(s.db).List(ctx)
}

func (s *RecordService) CreateCategory(ctx context.Context, d models.CategoryDraft) (models.Category, error) {
	if err := s.check(d); err != nil {
		return models.Category{}, err
	}
	if d.Color == "" {
		d.Color = models.DefaultColor
	}

	c := models.Category{
		ID:          s.newID(),
		Name:        d.Name,
		Description: d.Description,
		Color:       d.Color,
		CreatedAt:   s.now(),
	}
	if err := s.repomanager.Categories(s.db).Create(ctx, &c); err != nil {
		return models.Category{}, err
	}
	return c, nil
}

func (s *RecordService) UpdateCategory(ctx context.Context, id string, p models.CategoryPatch) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.check(p); err != nil {
		return err
	}
	return s.repomanager.Categories(s.db).Update(ctx, id, p)
}

// DeleteCategory leaves notes referencing the category untouched.
func (s *RecordService) DeleteCategory(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.repomanager.Categories(s.db).Delete(ctx, id)
}

func (s *RecordService) ListVocabulary(ctx context.Context) ([]models.Vocabulary, error) {
	return s.repomanager.Vocabulary(s.db).List(ctx)
}

// CreateVocabulary stores d, defaulting an empty date to today.
func (s *RecordService) CreateVocabulary(ctx context.Context, d models.VocabularyDraft) (models.Vocabulary, error) {
	if err := s.check(d); err != nil {
		return models.Vocabulary{}, err
	}
	if d.Date == "" {
		d.Date = s.today()
	}

	v := models.Vocabulary{
		ID:             s.newID(),
		Word:           d.Word,
		Meaning:        d.Meaning,
		Context:        d.Context,
		MomentOfMemory: d.MomentOfMemory,
		Language:       d.Language,
		Date:           d.Date,
		CreatedAt:      s.now(),
	}
	if err := s.repomanager.Vocabulary(s.db).Create(ctx, &v); err != nil {
		return models.Vocabulary{}, err
	}
	return v, nil
}

func (s *RecordService) UpdateVocabulary(ctx context.Context, id string, p models.VocabularyPatch) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.check(p); err != nil {
		return err
	}
	return s.repomanager.Vocabulary(s.db).Update(ctx, id, p)
}

func (s *RecordService) DeleteVocabulary(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.repomanager.Vocabulary(s.db).Delete(ctx, id)
}

func (s *RecordService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return s.repomanager.Notes(s.db).List(ctx)
}

// CreateNote stores d. An empty CategoryID is stored as NULL and an empty
// date defaults to today.
func (s *RecordService) CreateNote(ctx context.Context, d models.NoteDraft) (models.Note, error) {
	if err := s.check(d); err != nil {
		return models.Note{}, err
	}
	if d.Date == "" {
		d.Date = s.today()
	}

	n := models.Note{
		ID:             s.newID(),
		Title:          d.Title,
		Description:    d.Description,
		MomentOfMemory: d.MomentOfMemory,
		Language:       d.Language,
		Date:           d.Date,
		CreatedAt:      s.now(),
	}
	if d.CategoryID != "" {
		id := d.CategoryID
		n.CategoryID = &id
	}
	if err := s.repomanager.Notes(s.db).Create(ctx, &n); err != nil {
		return models.Note{}, err
	}
	return n, nil
}

func (s *RecordService) UpdateNote(ctx context.Context, id string, p models.NotePatch) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.check(p); err != nil {
		return err
	}
	return s.repomanager.Notes(s.db).Update(ctx, id, p)
}

func (s *RecordService) DeleteNote(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.repomanager.Notes(s.db).Delete(ctx, id)
}
