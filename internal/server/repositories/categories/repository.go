package categories

import (
	"context"

	"github.com/CODE-SECX/English-Sikho/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, id string, p models.CategoryPatch) error
	Delete(ctx context.Context, id string) error
}
