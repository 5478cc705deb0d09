package file

import (
	"context"
	"myPotionMaker/domain"
	"path/filepath"
	"strings"
)

type IngredientRepository interface {
	FindAll(ctx context.Context) ([]domain.IngredientRow, error)
}

// NewIngredientRepositoryForPath picks the YAML repository for .yaml/.yml files
// and the CSV repository for anything else.
func NewIngredientRepositoryForPath(path string) IngredientRepository {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewIngredientYAMLRepository(path)
	default:
		return NewIngredientCSVRepository(path)
	}
}
