package brewing

import (
	"fmt"
	"myPotionMaker/domain"
	"strings"
)

// NegativeScorePolicy decides how categories with a negative scaled score take part in the draw.
type NegativeScorePolicy int

const (
	// ClampNegative weights negative categories as zero.
	ClampNegative NegativeScorePolicy = iota
	// RejectNegative fails the brew with ErrNegativeScore.
	RejectNegative
)

func ParseNegativeScorePolicy(s string) (NegativeScorePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clamp":
		return ClampNegative, nil
	case "reject":
		return RejectNegative, nil
	default:
		return ClampNegative, fmt.Errorf("unknown negative score policy: %s", s)
	}
}

func (p NegativeScorePolicy) String() string {
	if p == RejectNegative {
		return "reject"
	}
	return "clamp"
}

// StrengthTier maps a normalized strength to a label. Tiers are checked in
// ascending order and the first whose threshold is >= strength wins.
type StrengthTier struct {
	Label     string
	Threshold float64
}

type Config struct {
	DefaultRareMult float64
	NegativeScores  NegativeScorePolicy
	Tiers           []StrengthTier
}

const (
	defaultRareMult = 1.0

	LabelWeak    = "Weak"
	LabelNormal  = "Normal"
	LabelStrong  = "Strong"
	LabelExtreme = "Extreme"
)

func DefaultTiers() []StrengthTier {
	return []StrengthTier{
		{Label: LabelWeak, Threshold: 0.25},
		{Label: LabelNormal, Threshold: 0.55},
		{Label: LabelStrong, Threshold: 0.80},
		{Label: LabelExtreme, Threshold: 1.0},
	}
}

func DefaultConfig() Config {
	return Config{
		DefaultRareMult: defaultRareMult,
		NegativeScores:  ClampNegative,
		Tiers:           DefaultTiers(),
	}
}

// strengthLabel returns the first tier whose threshold is >= strength, or the
// last tier when strength is above every threshold.
func (cfg Config) strengthLabel(strength float64) string {
	tiers := cfg.Tiers
	if len(tiers) == 0 {
		tiers = DefaultTiers()
	}
	for _, tier := range tiers {
		if tier.Threshold >= strength {
			return tier.Label
		}
	}
	return tiers[len(tiers)-1].Label
}

// Catalog is the read-only lookup the engine needs.
type Catalog interface {
	Resolve(value string) (string, bool)
	Get(id string) (domain.Ingredient, bool)
	IDByName(name string) string
}
