package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/itsJawnn/val-teamdb/internal/db"
	"github.com/itsJawnn/val-teamdb/internal/observability"
	"github.com/itsJawnn/val-teamdb/internal/pipeline"
	"github.com/itsJawnn/val-teamdb/internal/registry"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Canonicalize and de-duplicate the registry",
	Long:  "Rewrites the registry file with canonical slugs: the master list is de-duplicated and sorted by slug, each region's list is de-duplicated independently, and logo paths are regenerated in lockstep with slugs. Idempotent.",
	RunE:  runCleanup,
}

var (
	cleanupRegistryPath string
	cleanupDatabaseURL  string
	cleanupVerbose      bool
)

func init() {
	cleanupCmd.Flags().StringVarP(&cleanupRegistryPath, "registry", "r", "teams.json", "Path to the registry JSON file")
	cleanupCmd.Flags().StringVar(&cleanupDatabaseURL, "database-url", "", "PostgreSQL URL for the snapshot archive (overrides DATABASE_URL env var)")
	cleanupCmd.Flags().BoolVarP(&cleanupVerbose, "verbose", "v", false, "Print a summary of the cleaned registry")

	rootCmd.AddCommand(cleanupCmd)
}

func runCleanup(_ *cobra.Command, _ []string) error {
	reg, err := registry.Load(cleanupRegistryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	before := len(reg.Teams)
	cleaned := pipeline.Cleanup(reg)

	if err := registry.Save(cleanupRegistryPath, cleaned); err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}

	log.Printf("[CLEANUP] %d -> %d teams, %d regions", before, len(cleaned.Teams), len(cleaned.Regions))

	if cleanupVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRegistry(cleaned)
		printer.PrintTeams(cleaned.Teams)
	}

	archiveSnapshot(databaseURL(cleanupDatabaseURL), "cleanup", cleaned)
	return nil
}

// archiveSnapshot stores the run's output in the optional Postgres archive.
// Archive failures are logged, never fatal: the registry file is the source
// of truth.
func archiveSnapshot(dsn, mode string, reg *registry.Registry) {
	if dsn == "" {
		return
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, dsn)
	if err != nil {
		log.Printf("[ARCHIVE] connect failed, skipping: %v", err)
		return
	}
	defer database.Close()

	runID := uuid.New()
	if err := database.SaveSnapshot(ctx, runID, mode, reg); err != nil {
		log.Printf("[ARCHIVE] save failed, skipping: %v", err)
		return
	}
	log.Printf("[ARCHIVE] stored %s snapshot as run %s", mode, runID)
}

func databaseURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("DATABASE_URL")
}
