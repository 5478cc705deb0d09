package brewing

import (
	"context"
	"errors"
	"fmt"
	"myPotionMaker/domain"
	"myPotionMaker/pkg/logger"
)

var ErrNoCatalog = errors.New("ingredient catalog is not loaded")

type BrewingService struct {
	catalog Catalog
	cfg     Config
	newRand func() Rand
}

func NewBrewingService(catalog Catalog, cfg Config) *BrewingService {
	if len(cfg.Tiers) == 0 {
		cfg.Tiers = DefaultTiers()
	}
	return &BrewingService{
		catalog: catalog,
		cfg:     cfg,
		newRand: newCallRand,
	}
}

// WithRand replaces the per-brew random source factory.
func (s *BrewingService) WithRand(newRand func() Rand) *BrewingService {
	if newRand != nil {
		s.newRand = newRand
	}
	return s
}

func (s *BrewingService) DefaultRareMult() float64 {
	return s.cfg.DefaultRareMult
}

// Brew resolves the four selectors against the catalog, applies the modifier
// rules and samples one effect.
func (s *BrewingService) Brew(ctx context.Context, req domain.BrewRequest) (domain.BrewOutcome, error) {
	if err := ctx.Err(); err != nil {
		return domain.BrewOutcome{}, fmt.Errorf("context error: %w", err)
	}
	if s.catalog == nil {
		return domain.BrewOutcome{}, ErrNoCatalog
	}

	tid := TraceIDFromContext(ctx)

	var ids [domain.BrewSlots]string
	for i, sel := range req.Selections {
		id, ok := s.catalog.Resolve(sel)
		if !ok {
			logger.Debug("potion_unresolved_selection",
				"trace_id", tid,
				"slot", i,
				"selection", sel,
			)
			continue
		}
		ids[i] = id
	}

	brew := Resolve(s.catalog, ids)

	outcome, err := s.cfg.Chance(brew.Effects, req.RareMult, s.newRand())
	if err != nil {
		logger.Error("Failed to brew potion", "trace_id", tid, "error", err)
		return domain.BrewOutcome{}, err
	}
	outcome.Brew = brew
	outcome.RecipeCode = EncodeRecipe(req)

	effect, label := fizzleLabel, ""
	if !outcome.Fizzled {
		effect, label = outcome.Potion.Effect, outcome.Potion.StrengthLabel
	}

	logger.Debug("potion_brew",
		"trace_id", tid,
		"selections", req.Selections,
		"ids", ids,
		"topical", brew.Topical,
		"multiplier", brew.Multiplier,
		"rare_mult", req.RareMult,
		"effect", effect,
		"strength_label", label,
	)

	PotionBrewsTotal.WithLabelValues(effect, label).Inc()

	return outcome, nil
}

// BrewRecipe decodes a recipe code and brews it.
func (s *BrewingService) BrewRecipe(ctx context.Context, code string) (domain.BrewOutcome, error) {
	req, err := DecodeRecipe(code)
	if err != nil {
		return domain.BrewOutcome{}, err
	}
	return s.Brew(ctx, req)
}
