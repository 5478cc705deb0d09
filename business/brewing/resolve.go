package brewing

import "myPotionMaker/domain"

type modifierIDs struct {
	empty    string
	alcohol  string
	carrier  string
	beeswax  string
	glycerin string
}

func lookupModifiers(c Catalog) modifierIDs {
	return modifierIDs{
		empty:    c.IDByName(domain.IngredientEmpty),
		alcohol:  c.IDByName(domain.IngredientAlcohol),
		carrier:  c.IDByName(domain.IngredientCarrierOils),
		beeswax:  c.IDByName(domain.IngredientBeeswax),
		glycerin: c.IDByName(domain.IngredientGlycerin),
	}
}

// matches reports whether id is the modifier. A modifier missing from the
// catalog never matches, not even an unresolved selection.
func matches(id, modifierID string) bool {
	return modifierID != "" && id == modifierID
}

// isTopical is true when any selection is a Beeswax row.
func isTopical(c Catalog, ids [domain.BrewSlots]string) bool {
	for _, id := range ids {
		if ing, ok := c.Get(id); ok && ing.DisplayName == domain.IngredientBeeswax {
			return true
		}
	}
	return false
}

// Resolve applies the modifier rules to four ingredient ids and aggregates the
// effect vector. Unknown ids contribute nothing.
func Resolve(c Catalog, ids [domain.BrewSlots]string) domain.Brew {
	brew := domain.Brew{
		IDs:        ids,
		Topical:    isTopical(c, ids),
		Multiplier: 1.0,
	}
	mods := lookupModifiers(c)

	for i, id := range ids {
		ing, known := c.Get(id)
		if known && ing.AppliedTopically && !brew.Topical {
			brew.ScoringIDs[i] = mods.empty
			continue
		}

		switch {
		case matches(id, mods.alcohol):
			brew.Multiplier += 1.0
			brew.ScoringIDs[i] = mods.empty
		case matches(id, mods.carrier):
			brew.ScoringIDs[i] = mods.empty
			if brew.Topical {
				brew.Multiplier += 0.5
			}
		case matches(id, mods.beeswax):
			brew.ScoringIDs[i] = mods.empty
		case matches(id, mods.glycerin):
			brew.Multiplier += 1.0
			brew.ScoringIDs[i] = mods.empty
		default:
			brew.ScoringIDs[i] = id
		}
	}

	for _, id := range brew.ScoringIDs {
		ing, ok := c.Get(id)
		if !ok {
			continue
		}
		for cat, score := range ing.Scores {
			brew.Effects[cat] += float64(score)
		}
	}
	if brew.Topical {
		brew.Effects[domain.EffectCount] = 1
	}
	for i := range brew.Effects {
		brew.Effects[i] *= brew.Multiplier
	}

	return brew
}
