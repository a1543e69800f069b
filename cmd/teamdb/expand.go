package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/itsJawnn/val-teamdb/internal/config"
	"github.com/itsJawnn/val-teamdb/internal/fetch"
	"github.com/itsJawnn/val-teamdb/internal/observability"
	"github.com/itsJawnn/val-teamdb/internal/pipeline"
	"github.com/itsJawnn/val-teamdb/internal/registry"
	"github.com/itsJawnn/val-teamdb/internal/scrape"
)

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Refresh regional rankings and merge new teams",
	Long:  "Scrapes the ranking site for each configured region, merges newly discovered teams into the registry under canonical slugs, and rewrites the registry file. A region whose fetch fails keeps its previous entries; the run continues.",
	RunE:  runExpand,
}

var (
	expandRegistryPath string
	expandConfigPath   string
	expandRegions      []string
	expandTopN         int
	expandDelayMs      int
	expandTimeoutSec   int
	expandRankingBase  string
	expandUseBrowser   bool
	expandDatabaseURL  string
	expandVerbose      bool
)

func init() {
	expandCmd.Flags().StringVarP(&expandRegistryPath, "registry", "r", "teams.json", "Path to the registry JSON file")
	expandCmd.Flags().StringVarP(&expandConfigPath, "config", "c", "", "Path to a JSON config file")
	expandCmd.Flags().StringSliceVar(&expandRegions, "regions", nil, "Region codes to refresh (default: all known regions)")
	expandCmd.Flags().IntVar(&expandTopN, "top-n", pipeline.DefaultTopN, "Maximum ranked entries kept per region")
	expandCmd.Flags().IntVar(&expandDelayMs, "delay-ms", int(pipeline.DefaultRegionDelay/time.Millisecond), "Politeness delay between region fetches")
	expandCmd.Flags().IntVar(&expandTimeoutSec, "timeout-sec", int(fetch.DefaultTimeout/time.Second), "Per-request HTTP timeout")
	expandCmd.Flags().StringVar(&expandRankingBase, "ranking-base", scrape.DefaultRankingBase, "Base URL of the ranking site")
	expandCmd.Flags().BoolVar(&expandUseBrowser, "use-browser", false, "Render JS-heavy ranking pages in a headless browser")
	expandCmd.Flags().StringVar(&expandDatabaseURL, "database-url", "", "PostgreSQL URL for the snapshot archive (overrides DATABASE_URL env var)")
	expandCmd.Flags().BoolVarP(&expandVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, _ []string) error {
	if expandConfigPath != "" {
		cfg, err := config.LoadConfig(expandConfigPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		applyExpandConfig(cmd, cfg)
	}

	reg, err := registry.Load(expandRegistryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	source := scrape.NewSiteSource()
	source.BaseURL = expandRankingBase
	source.UseBrowser = expandUseBrowser
	source.Verbose = expandVerbose
	source.Options.Timeout = time.Duration(expandTimeoutSec) * time.Second

	opts := &pipeline.Options{
		Regions:     expandRegions,
		TopN:        expandTopN,
		RegionDelay: time.Duration(expandDelayMs) * time.Millisecond,
		Verbose:     expandVerbose,
	}
	if len(opts.Regions) == 0 {
		opts.Regions = scrape.DefaultRegions()
	}

	result := pipeline.Expand(context.Background(), reg, source, opts)

	if err := registry.Save(expandRegistryPath, result.Registry); err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}

	log.Printf("[EXPAND] %d regions refreshed, %d failed, %d new teams",
		len(result.RegionsOK), len(result.RegionsFailed), result.TeamsAdded)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintExpandResult(result)
	if expandVerbose {
		printer.PrintRegistry(result.Registry)
	}

	archiveSnapshot(databaseURL(expandDatabaseURL), "expand", result.Registry)
	return nil
}

// applyExpandConfig fills in settings from the config file for flags the user
// did not set explicitly; flags win over the file.
func applyExpandConfig(cmd *cobra.Command, cfg *config.Config) {
	if cfg.Registry != "" && !cmd.Flags().Changed("registry") {
		expandRegistryPath = cfg.Registry
	}
	if len(cfg.Regions) > 0 && !cmd.Flags().Changed("regions") {
		expandRegions = cfg.Regions
	}
	if cfg.TopN > 0 && !cmd.Flags().Changed("top-n") {
		expandTopN = cfg.TopN
	}
	if cfg.DelayMs > 0 && !cmd.Flags().Changed("delay-ms") {
		expandDelayMs = cfg.DelayMs
	}
	if cfg.TimeoutSec > 0 && !cmd.Flags().Changed("timeout-sec") {
		expandTimeoutSec = cfg.TimeoutSec
	}
	if cfg.RankingBase != "" && !cmd.Flags().Changed("ranking-base") {
		expandRankingBase = cfg.RankingBase
	}
	if cfg.UseBrowser && !cmd.Flags().Changed("use-browser") {
		expandUseBrowser = true
	}
	if cfg.Verbose && !cmd.Flags().Changed("verbose") {
		expandVerbose = true
	}
	if cfg.DatabaseURL != "" && !cmd.Flags().Changed("database-url") {
		expandDatabaseURL = cfg.DatabaseURL
	}
}
