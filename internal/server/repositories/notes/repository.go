package notes

import (
	"context"

	"github.com/CODE-SECX/English-Sikho/internal/models"
)

type Repository interface {
	// List embeds each note's category when it still exists.
	List(ctx context.Context) ([]models.Note, error)
	Create(ctx context.Context, n *models.Note) error
	Update(ctx context.Context, id string, p models.NotePatch) error
	Delete(ctx context.Context, id string) error
}
