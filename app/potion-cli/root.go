package main

import (
	"context"
	"fmt"
	"myPotionMaker/business/catalog"
	"myPotionMaker/internal/repository/file"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	catalogPath string
}

var rootCmd = &cobra.Command{
	Use:   "potion-cli",
	Short: "Brew potions from the herbal ingredient catalog",
	Long:  "potion-cli brews a potion from four ingredients of a CSV or YAML catalog\nand prints the sampled effect.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	defaultPath := os.Getenv("CATALOG_PATH")
	if defaultPath == "" {
		defaultPath = "data/ingredients.csv"
	}
	rootCmd.PersistentFlags().StringVar(&rootFlags.catalogPath, "catalog", defaultPath, "Ingredient catalog file (.csv, .yaml)")

	rootCmd.AddCommand(brewCmd)
	rootCmd.AddCommand(ingredientsCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.Version = version
}

func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	c, err := catalog.Load(ctx, file.NewIngredientRepositoryForPath(rootFlags.catalogPath))
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", rootFlags.catalogPath, err)
	}
	return c, nil
}
