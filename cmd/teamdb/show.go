package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/itsJawnn/val-teamdb/internal/db"
	"github.com/itsJawnn/val-teamdb/internal/observability"
	"github.com/itsJawnn/val-teamdb/internal/registry"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a summary of the registry",
	RunE:  runShow,
}

var (
	showRegistryPath string
	showSnapshots    bool
	showDatabaseURL  string
)

func init() {
	showCmd.Flags().StringVarP(&showRegistryPath, "registry", "r", "teams.json", "Path to the registry JSON file")
	showCmd.Flags().BoolVar(&showSnapshots, "snapshots", false, "List archived snapshots instead of the registry file")
	showCmd.Flags().StringVar(&showDatabaseURL, "database-url", "", "PostgreSQL URL for the snapshot archive (overrides DATABASE_URL env var)")

	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	if showSnapshots {
		return showArchivedSnapshots()
	}

	reg, err := registry.Load(showRegistryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRegistry(reg)
	return nil
}

func showArchivedSnapshots() error {
	dsn := databaseURL(showDatabaseURL)
	if dsn == "" {
		return fmt.Errorf("snapshot archive requires --database-url or DATABASE_URL")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer database.Close()

	snapshots, err := database.ListSnapshots(ctx, 20)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tMODE\tVERSION\tTEAMS\tCREATED")
	for _, s := range snapshots {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			s.RunID, s.Mode, s.Version, s.TeamCount, s.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
