// Package categories persists note categories. The SQL is shared by the
// PostgreSQL and SQLite dialects.
package categories

import (
	"context"
	"fmt"

	"github.com/CODE-SECX/English-Sikho/internal/dbx"
	"github.com/CODE-SECX/English-Sikho/internal/models"
)

// SQLRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

// List returns every category ordered by name.
func (r *SQLRepository) List(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name, description, color, created_at FROM categories ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}
	defer rows.Close()

	result := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts c as given; id and created_at must already be set.
func (r *SQLRepository) Create(ctx context.Context, c *models.Category) error {
	query := `INSERT INTO categories (id, name, description, color, created_at) VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Description, c.Color, c.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of p. A missing id is not an error.
func (r *SQLRepository) Update(ctx context.Context, id string, p models.CategoryPatch) error {
	var sets []dbx.Set
	if p.Name != nil {
		sets = append(sets, dbx.Set{Column: "name", Value: *p.Name})
	}
	if p.Description != nil {
		sets = append(sets, dbx.Set{Column: "description", Value: *p.Description})
	}
	if p.Color != nil {
		sets = append(sets, dbx.Set{Column: "color", Value: *p.Color})
	}

	query, args, ok := dbx.UpdateByID("categories", sets, id)
	if !ok {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Delete removes the category. Notes referencing it are left as they are.
func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
