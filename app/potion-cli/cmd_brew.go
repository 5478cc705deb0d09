package main

import (
	"fmt"
	"io"
	"myPotionMaker/business/brewing"
	"myPotionMaker/domain"

	"github.com/spf13/cobra"
)

var brewFlags struct {
	rareMult       float64
	recipe         string
	negativeScores string
	details        bool
}

var brewCmd = &cobra.Command{
	Use:   "brew [ingredient ingredient ingredient ingredient]",
	Short: "Brew a potion from four ingredient names or ids",
	Args: func(cmd *cobra.Command, args []string) error {
		if brewFlags.recipe != "" {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(domain.BrewSlots)(cmd, args)
	},
	RunE: runBrew,
}

func init() {
	f := brewCmd.Flags()
	f.Float64Var(&brewFlags.rareMult, "rare-mult", 1.0, "Rare effect multiplier (1.0-3.0 recommended)")
	f.StringVar(&brewFlags.recipe, "recipe", "", "Brew a recipe code instead of named ingredients")
	f.StringVar(&brewFlags.negativeScores, "negative-scores", "clamp", "Negative score policy: clamp or reject")
	f.BoolVar(&brewFlags.details, "details", false, "Print the resolved brew before the result")
}

func runBrew(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	policy, err := brewing.ParseNegativeScorePolicy(brewFlags.negativeScores)
	if err != nil {
		return err
	}

	c, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	cfg := brewing.DefaultConfig()
	cfg.NegativeScores = policy
	svc := brewing.NewBrewingService(c, cfg)

	var outcome domain.BrewOutcome
	if brewFlags.recipe != "" {
		outcome, err = svc.BrewRecipe(ctx, brewFlags.recipe)
	} else {
		req := domain.BrewRequest{RareMult: brewFlags.rareMult}
		copy(req.Selections[:], args)
		for _, sel := range args {
			if _, ok := c.Resolve(sel); !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %q is not in the catalog%s\n", sel, didYouMean(c.Suggest(sel, 1)))
			}
		}
		outcome, err = svc.Brew(ctx, req)
	}
	if err != nil {
		return fmt.Errorf("brew: %w", err)
	}

	printOutcome(cmd.OutOrStdout(), outcome, brewFlags.details)
	return nil
}

func didYouMean(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", suggestions[0])
}

func printOutcome(out io.Writer, outcome domain.BrewOutcome, details bool) {
	if details {
		b := outcome.Brew
		fmt.Fprintf(out, "Ingredients: %v\n", b.IDs)
		fmt.Fprintf(out, "Scoring:     %v\n", b.ScoringIDs)
		fmt.Fprintf(out, "Topical:     %v\n", b.Topical)
		fmt.Fprintf(out, "Multiplier:  %g\n", b.Multiplier)
		fmt.Fprintf(out, "Effects:     %v\n", b.Effects)
	}

	if outcome.Fizzled {
		fmt.Fprintln(out, outcome.Message)
	} else {
		p := outcome.Potion
		fmt.Fprintf(out, "Effect:      %s\n", p.Effect)
		fmt.Fprintf(out, "Strength:    %.2f (%s)\n", p.Strength, p.StrengthLabel)
		fmt.Fprintf(out, "Raw value:   %g\n", p.RawValue)
		fmt.Fprintf(out, "Probability: %.2f\n", p.Probability)
	}
	fmt.Fprintf(out, "Recipe:      %s\n", outcome.RecipeCode)
}
