package file

import (
	"context"
	"fmt"
	"myPotionMaker/domain"
	"os"

	"gopkg.in/yaml.v3"
)

type ingredientYAMLFile struct {
	Ingredients []ingredientYAMLRecord `yaml:"ingredients"`
}

// ingredientYAMLRecord keeps scores as a list so short rows still load;
// missing scores stay empty and parse as 0.
type ingredientYAMLRecord struct {
	ID               string   `yaml:"id"`
	CommonName       string   `yaml:"common_name"`
	Scores           []string `yaml:"scores"`
	AppliedTopically string   `yaml:"applied_topically"`
	Rarity           string   `yaml:"rarity"`
	Description      string   `yaml:"description"`
}

func (r ingredientYAMLRecord) toRow() domain.IngredientRow {
	row := domain.IngredientRow{
		ID:               r.ID,
		CommonName:       r.CommonName,
		AppliedTopically: r.AppliedTopically,
		Rarity:           r.Rarity,
		Description:      r.Description,
	}
	copy(row.Scores[:], r.Scores)
	return row
}

type IngredientYAMLRepository struct {
	path string
}

func NewIngredientYAMLRepository(path string) *IngredientYAMLRepository {
	return &IngredientYAMLRepository{path: path}
}

func (r *IngredientYAMLRepository) FindAll(ctx context.Context) ([]domain.IngredientRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read ingredient yaml: %w", err)
	}

	var doc ingredientYAMLFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse ingredient yaml: %w", err)
	}

	rows := make([]domain.IngredientRow, 0, len(doc.Ingredients))
	for _, rec := range doc.Ingredients {
		rows = append(rows, rec.toRow())
	}
	return rows, nil
}
