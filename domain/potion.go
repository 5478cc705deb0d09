package domain

// FizzleMessage is returned when a brew has no effect at all.
const FizzleMessage = "Potion fizzles... no effect"

// BrewSlots is the number of ingredients that go into one brew.
const BrewSlots = 4

// EffectVector holds the nine category sums followed by the topical flag,
// all scaled by the brew multiplier.
type EffectVector [EffectCount + 1]float64

// Topical reports the scaled topical element of the vector.
func (v EffectVector) Topical() float64 {
	return v[EffectCount]
}

type BrewRequest struct {
	Selections [BrewSlots]string
	RareMult   float64
}

type PotionResult struct {
	Effect        string  `json:"effect"`
	Strength      float64 `json:"strength"`
	StrengthLabel string  `json:"strength_label"`
	RawValue      float64 `json:"raw_value"`
	Probability   float64 `json:"probability"`
}

// Brew is the intermediate state after modifiers are resolved.
// IDs holds the resolved selections, empty where a selector did not resolve.
type Brew struct {
	IDs        [BrewSlots]string `json:"ids"`
	ScoringIDs [BrewSlots]string `json:"scoring_ids"`
	Topical    bool              `json:"topical"`
	Multiplier float64           `json:"multiplier"`
	Effects    EffectVector      `json:"effects"`
}

// BrewOutcome is either a sampled potion or a fizzle.
type BrewOutcome struct {
	Fizzled    bool          `json:"fizzled"`
	Message    string        `json:"message,omitempty"`
	Potion     *PotionResult `json:"potion,omitempty"`
	RareMult   float64       `json:"rare_mult"`
	Brew       Brew          `json:"brew"`
	RecipeCode string        `json:"recipe_code,omitempty"`
}
