// potion-cli brews potions from the terminal.
//
// Usage:
//
//	potion-cli brew <ingredient> <ingredient> <ingredient> <ingredient> [--rare-mult=1.0]
//	potion-cli brew --recipe=<code>
//	potion-cli ingredients
//	potion-cli lookup <name>
package main

import (
	"fmt"
	"myPotionMaker/pkg/logger"
	"os"
)

func main() {
	logger.Init(os.Getenv("APP_ENV"))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
