package catalog

import (
	"math"
	"myPotionMaker/domain"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

var fold = cases.Fold()

var truthy = map[string]struct{}{
	"1":    {},
	"true": {},
	"yes":  {},
	"y":    {},
	"t":    {},
}

// parseTopical accepts the textual truthy values of the sheet; anything else is false.
func parseTopical(raw string) bool {
	_, ok := truthy[fold.String(strings.TrimSpace(raw))]
	return ok
}

// parseScore turns a score cell into an int. Malformed or empty cells score 0.
// Float cells from spreadsheet exports are truncated toward zero.
func parseScore(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0
	}
	return int(f)
}

func parseRow(row domain.IngredientRow) domain.Ingredient {
	ing := domain.Ingredient{
		ID:               strings.TrimSpace(row.ID),
		DisplayName:      row.CommonName,
		AppliedTopically: parseTopical(row.AppliedTopically),
		Rarity:           strings.TrimSpace(row.Rarity),
		Description:      strings.TrimSpace(row.Description),
	}
	for i, cell := range row.Scores {
		ing.Scores[i] = parseScore(cell)
	}
	return ing
}
