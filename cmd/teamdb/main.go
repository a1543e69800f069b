// Package main provides the teamdb CLI: maintenance tooling for the esports
// team registry (cleanup, ranking refresh, validation).
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "teamdb",
	Short: "Esports team registry maintenance",
	Long:  "teamdb maintains a reference database of esports team identities: it canonicalizes team names into stable slugs, de-duplicates the registry, and refreshes regional rankings from the ranking site.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
