package main

import (
	"fmt"
	"myPotionMaker/business/catalog"
	"myPotionMaker/domain"
	"strings"

	"github.com/spf13/cobra"
)

var ingredientsFlags struct {
	names bool
}

var ingredientsCmd = &cobra.Command{
	Use:   "ingredients",
	Short: "List catalog ingredients in catalog order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if ingredientsFlags.names {
			for _, name := range c.Names() {
				fmt.Fprintln(out, name)
			}
			return nil
		}
		for _, ing := range c.All() {
			topical := ""
			if ing.AppliedTopically {
				topical = " (topical)"
			}
			fmt.Fprintf(out, "%-6s %s%s\n", ing.ID, ing.DisplayName, topical)
		}
		return nil
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Show an ingredient by display name or id",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		name := strings.Join(args, " ")
		id, ok := c.Resolve(name)
		if !ok {
			return fmt.Errorf("%w: %q%s", catalog.ErrIngredientNotFound, name, didYouMean(c.Suggest(name, 1)))
		}
		ing, _ := c.Get(id)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", ing.DisplayName, ing.ID)
		for _, cat := range domain.EffectCategories() {
			if ing.Scores[cat] != 0 {
				fmt.Fprintf(out, "  %-20s %d\n", cat, ing.Scores[cat])
			}
		}
		fmt.Fprintf(out, "  topical only: %v\n", ing.AppliedTopically)
		if ing.Description != "" {
			fmt.Fprintf(out, "  %s\n", ing.Description)
		}
		return nil
	},
}

func init() {
	ingredientsCmd.Flags().BoolVar(&ingredientsFlags.names, "names", false, "Print display names only")
}
