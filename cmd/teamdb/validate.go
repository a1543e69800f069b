package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/itsJawnn/val-teamdb/internal/registry"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a registry file against the JSON Schema",
	Long:  "Checks that a registry JSON file conforms to the registry schema: slug format, logo path convention, and required fields. Exits non-zero and lists every violation when the document does not conform.",
	RunE:  runValidate,
}

var (
	validateRegistryPath string
	validateSchemaPath   string
)

func init() {
	validateCmd.Flags().StringVarP(&validateRegistryPath, "registry", "r", "teams.json", "Path to the registry JSON file")
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to the registry schema (default: bundled schema)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	schemaPath := validateSchemaPath
	if schemaPath == "" {
		schemaPath = registry.ResolveSchemaPath(registry.DefaultSchemaPath)
		if schemaPath == "" {
			return fmt.Errorf("registry schema not found; pass --schema")
		}
	}

	err := registry.ValidateFile(schemaPath, validateRegistryPath)
	if err == nil {
		fmt.Fprintf(os.Stdout, "%s conforms to the registry schema\n", validateRegistryPath)
		return nil
	}

	var schemaErr *registry.SchemaError
	if errors.As(err, &schemaErr) {
		fmt.Fprintf(os.Stderr, "%s does not conform to the registry schema:\n", validateRegistryPath)
		for _, failure := range schemaErr.Failures {
			fmt.Fprintf(os.Stderr, "  - %s\n", failure)
		}
	}
	return err
}
