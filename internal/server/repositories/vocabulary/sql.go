// Package vocabulary persists vocabulary entries.
package vocabulary

import (
	"context"
	"fmt"

	"github.com/CODE-SECX/English-Sikho/internal/dbx"
	"github.com/CODE-SECX/English-Sikho/internal/models"
)

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

// List returns every entry, newest first.
func (r *SQLRepository) List(ctx context.Context) ([]models.Vocabulary, error) {
	query := `SELECT id, word, meaning, context, moment_of_memory, language, date, created_at
		FROM vocabulary ORDER BY created_at DESC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select vocabulary: %w", err)
	}
	defer rows.Close()

	result := []models.Vocabulary{}
	for rows.Next() {
		var v models.Vocabulary
		if err := rows.Scan(&v.ID, &v.Word, &v.Meaning, &v.Context, &v.MomentOfMemory, &v.Language, &v.Date, &v.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLRepository) Create(ctx context.Context, v *models.Vocabulary) error {
	query := `INSERT INTO vocabulary (id, word, meaning, context, moment_of_memory, language, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query, v.ID, v.Word, v.Meaning, v.Context, v.MomentOfMemory, v.Language, v.Date, v.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of p. A missing id is not an error.
func (r *SQLRepository) Update(ctx context.Context, id string, p models.VocabularyPatch) error {
	var sets []dbx.Set
	add := func(col string, v *string) {
		if v != nil {
			sets = append(sets, dbx.Set{Column: col, Value: *v})
		}
	}
	add("word", p.Word)
	add("meaning", p.Meaning)
	add("context", p.Context)
	add("moment_of_memory", p.MomentOfMemory)
	add("language", p.Language)
	add("date", p.Date)

	query, args, ok := dbx.UpdateByID("vocabulary", sets, id)
	if !ok {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM vocabulary WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
