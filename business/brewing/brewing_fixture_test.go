package brewing

import (
	"myPotionMaker/business/catalog"
	"myPotionMaker/domain"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func fixedRandFactory(v float64) func() Rand {
	return func() Rand { return fixedRand(v) }
}

func fixtureRow(id, name, topical string, scores ...string) domain.IngredientRow {
	r := domain.IngredientRow{ID: id, CommonName: name, AppliedTopically: topical}
	copy(r.Scores[:], scores)
	return r
}

// scores are in category order: AI, Irritation, Sleep, Digestive, Antiseptic,
// Cardio, Cough, Cognitive, Depression
func fixtureCatalog() *catalog.Catalog {
	return catalog.New([]domain.IngredientRow{
		fixtureRow("e", "Empty", "0"),
		fixtureRow("al", "Alcohol", "0", "1", "1", "1", "1", "1", "1", "1", "1", "1"),
		fixtureRow("co", "Carrier Oils", "0", "2", "2", "2"),
		fixtureRow("bw", "Beeswax", "0", "0", "5"),
		fixtureRow("gl", "Glycerin", "0", "3"),
		fixtureRow("x", "IngredientX", "0", "4"),
		fixtureRow("y", "IngredientY", "yes", "0", "0", "0", "3"),
		fixtureRow("z", "Lavender", "0", "0", "0", "2", "0", "0", "0", "0", "1"),
		fixtureRow("n", "Nettle", "0", "1", "-2"),
	})
}
