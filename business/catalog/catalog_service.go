package catalog

import (
	"context"
	"errors"
	"fmt"
	"myPotionMaker/domain"
	"myPotionMaker/pkg/logger"
)

// IngredientRepository contract interface
type IngredientRepository interface {
	FindAll(ctx context.Context) ([]domain.IngredientRow, error)
}

var modifierNames = []string{
	domain.IngredientEmpty,
	domain.IngredientAlcohol,
	domain.IngredientCarrierOils,
	domain.IngredientBeeswax,
	domain.IngredientGlycerin,
}

// Load reads every row from repo once and builds the catalog.
func Load(ctx context.Context, repo IngredientRepository) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if repo == nil {
		return nil, errors.New("ingredient repository is required")
	}

	rows, err := repo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to load ingredient rows", "error", err)
		return nil, fmt.Errorf("load ingredients: %w", err)
	}

	c := New(rows)

	if skipped := len(rows) - c.Len(); skipped > 0 {
		logger.Warn("Skipped ingredient rows without id or with duplicate id", "skipped", skipped)
	}
	if dupNames := c.Len() - len(c.byName); dupNames > 0 {
		logger.Warn("Duplicate ingredient names resolve to their first row", "duplicates", dupNames)
	}
	for _, name := range modifierNames {
		if _, ok := c.FindByName(name); !ok {
			logger.Warn("Modifier ingredient missing from catalog", "name", name)
		}
	}

	logger.Info("Ingredient catalog loaded", "ingredients", c.Len())

	return c, nil
}
