package domain

// IngredientRow is one raw catalog row as it comes out of a sheet or table.
// Score and topical cells stay text until the catalog parses them.
type IngredientRow struct {
	ID               string              `json:"id"`
	CommonName       string              `json:"common_name"`
	Scores           [EffectCount]string `json:"scores"`
	AppliedTopically string              `json:"applied_topically"`
	Rarity           string              `json:"rarity"`
	Description      string              `json:"description"`
}

// Ingredient is a parsed, immutable catalog entry.
type Ingredient struct {
	ID               string           `json:"id"`
	DisplayName      string           `json:"display_name"`
	Scores           [EffectCount]int `json:"effect_scores"`
	AppliedTopically bool             `json:"applied_topically"`
	Rarity           string           `json:"rarity,omitempty"`
	Description      string           `json:"description,omitempty"`
}

// Modifier ingredient display names.
const (
	IngredientEmpty       = "Empty"
	IngredientAlcohol     = "Alcohol"
	IngredientCarrierOils = "Carrier Oils"
	IngredientBeeswax     = "Beeswax"
	IngredientGlycerin    = "Glycerin"
)
