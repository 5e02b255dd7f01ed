// Package notes persists learning notes, stored in the "sikho" table.
package notes

import (
	"context"
	"database/sql"
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

// List returns every note, newest first, joined with its category. A note
// whose category was deleted keeps its category_id and gets a nil Category.
func (r *SQLRepository) List(ctx context.Context) ([]models.Note, error) {
	query := `SELECT s.id, s.title, s.description, s.moment_of_memory, s.category_id, s.language, s.date, s.created_at,
			c.id, c.name, c.description, c.color, c.created_at
		FROM sikho s
		LEFT JOIN categories c ON c.id = s.category_id
		ORDER BY s.created_at DESC, s.id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	result := []models.Note{}
	for rows.Next() {
		var (
			n          models.Note
			categoryID sql.NullString
			cID        sql.NullString
			cName      sql.NullString
			cDesc      sql.NullString
			cColor     sql.NullString
			cCreated   sql.NullTime
		)
		if err := rows.Scan(
			&n.ID, &n.Title, &n.Description, &n.MomentOfMemory, &categoryID, &n.Language, &n.Date, &n.CreatedAt,
			&cID, &cName, &cDesc, &cColor, &cCreated,
		); err != nil {
			return nil, err
		}
		if categoryID.Valid {
			id := categoryID.String
			n.CategoryID = &id
		}
		if cID.Valid {
			n.Category = &models.Category{
				ID:          cID.String,
				Name:        cName.String,
				Description: cDesc.String,
				Color:       cColor.String,
				CreatedAt:   cCreated.Time,
			}
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// nullable maps "" to NULL.
func nullable(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func (r *SQLRepository) Create(ctx context.Context, n *models.Note) error {
	query := `INSERT INTO sikho (id, title, description, moment_of_memory, category_id, language, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.Title, n.Description, n.MomentOfMemory, nullable(n.CategoryID), n.Language, n.Date, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of p. CategoryID pointing at "" clears
// the category. A missing id is not an error.
func (r *SQLRepository) Update(ctx context.Context, id string, p models.NotePatch) error {
	var sets []dbx.Set
	add := func(col string, v *string) {
		if v != nil {
			sets = append(sets, dbx.Set{Column: col, Value: *v})
		}
	}
	add("title", p.Title)
	add("description", p.Description)
	add("moment_of_memory", p.MomentOfMemory)
	if p.CategoryID != nil {
		sets = append(sets, dbx.Set{Column: "category_id", Value: nullable(p.CategoryID)})
	}
	add("language", p.Language)
	add("date", p.Date)

	query, args, ok := dbx.UpdateByID("sikho", sets, id)
	if !ok {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sikho WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
