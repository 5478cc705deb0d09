package domain

// EffectCount is the number of effect categories scored per ingredient.
const EffectCount = 9

// EffectCategory indexes the fixed effect order shared by scoring, sampling and naming.
type EffectCategory int

const (
	EffectAntiInflammatory EffectCategory = iota
	EffectIrritation
	EffectSleepRelaxation
	EffectDigestive
	EffectAntisepticImmunity
	EffectCardiovascular
	EffectCoughThroat
	EffectCognitiveNerve
	EffectDepression
)

// FirstRareEffect is the lowest index scaled by the rarity multiplier.
const FirstRareEffect = EffectCognitiveNerve

var effectNames = [EffectCount]string{
	"Anti-Inflammatory",
	"Irritation",
	"Sleep/Relaxation",
	"Digestive",
	"Antiseptic/Immunity",
	"Cardiovascular",
	"Cough/Throat",
	"Cognitive/Nerve",
	"Depression",
}

// column headers of the herbal ingredients sheet
var effectColumns = [EffectCount]string{
	"Anti-Inflammatory",
	"Irritation",
	"sleep / relaxation",
	"digestive",
	"antiseptic / Imunity",
	"cardiovascular",
	"cough / throat",
	"cognitive / nerve (rare)",
	"Depression (rare)",
}

// String returns the display name of the effect.
func (e EffectCategory) String() string {
	if e < 0 || int(e) >= EffectCount {
		return "Unknown"
	}
	return effectNames[e]
}

// Column returns the catalog sheet header for the effect.
func (e EffectCategory) Column() string {
	if e < 0 || int(e) >= EffectCount {
		return ""
	}
	return effectColumns[e]
}

func (e EffectCategory) IsRare() bool {
	return e >= FirstRareEffect
}

// EffectCategories returns all categories in scoring order.
func EffectCategories() []EffectCategory {
	out := make([]EffectCategory, EffectCount)
	for i := range EffectCount {
		out[i] = EffectCategory(i)
	}
	return out
}
