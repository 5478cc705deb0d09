package brewing

import (
	"errors"
	"math"
	"myPotionMaker/domain"
)

var ErrNegativeScore = errors.New("brew has a negative effect score")

// Rand is the source for the weighted draw.
type Rand interface {
	Float64() float64
}

// Chance samples one effect from an effect vector. The topical element is
// ignored, rare categories are scaled by rareMult and every category is
// weighted by its scaled score.
func (cfg Config) Chance(effects domain.EffectVector, rareMult float64, rng Rand) (domain.BrewOutcome, error) {
	var scaled [domain.EffectCount]float64
	total := 0.0
	for i := range domain.EffectCount {
		scaled[i] = effects[i]
		if domain.EffectCategory(i).IsRare() {
			scaled[i] *= rareMult
		}
		total += scaled[i]
	}

	if total == 0 {
		return fizzle(rareMult), nil
	}

	var weights [domain.EffectCount]float64
	weightTotal := 0.0
	for i, v := range scaled {
		if v < 0 {
			if cfg.NegativeScores == RejectNegative {
				return domain.BrewOutcome{}, ErrNegativeScore
			}
			continue
		}
		weights[i] = v
		weightTotal += v
	}

	// only negative and zero scores left: nothing can be drawn
	if weightTotal <= 0 || math.IsNaN(weightTotal) {
		return fizzle(rareMult), nil
	}

	idx := draw(weights, weightTotal, rng)

	maxScore := scaled[0]
	for _, v := range scaled[1:] {
		if v > maxScore {
			maxScore = v
		}
	}
	strength := scaled[idx] / maxScore

	return domain.BrewOutcome{
		RareMult: rareMult,
		Potion: &domain.PotionResult{
			Effect:        domain.EffectCategory(idx).String(),
			Strength:      round2(strength),
			StrengthLabel: cfg.strengthLabel(strength),
			RawValue:      scaled[idx],
			Probability:   round2(weights[idx] / weightTotal),
		},
	}, nil
}

// draw picks an index with probability weights[i]/total. Zero weights are never picked.
func draw(weights [domain.EffectCount]float64, total float64, rng Rand) int {
	r := rng.Float64() * total
	last := -1
	cum := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		cum += w
		if r < cum {
			return i
		}
	}
	// float rounding can leave r == cum on the last positive weight
	return last
}

func fizzle(rareMult float64) domain.BrewOutcome {
	return domain.BrewOutcome{
		Fizzled:  true,
		Message:  domain.FizzleMessage,
		RareMult: rareMult,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
