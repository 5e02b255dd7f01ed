package vocabulary

import (
	"context"

	"github.com/CODE-SECX/English-Sikho/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Vocabulary, error)
	Create(ctx context.Context, v *models.Vocabulary) error
	Update(ctx context.Context, id string, p models.VocabularyPatch) error
	Delete(ctx context.Context, id string) error
}
