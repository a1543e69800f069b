package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// DefaultSchemaPath is the registry schema location relative to the repo root.
const DefaultSchemaPath = "schemas/registry.schema.json"

// ResolveSchemaPath finds the schema file when the CLI runs from a nested
// working directory (e.g. during tests). Returns "" if no candidate exists.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}
	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}
	return ""
}

// SchemaError reports a registry document that failed schema validation.
type SchemaError struct {
	Path     string
	Failures []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("registry %s failed schema validation: %d problem(s), first: %s",
		e.Path, len(e.Failures), e.Failures[0])
}

// ValidateFile validates a registry JSON file against the registry schema.
// Returns a *SchemaError listing every violation, or nil if the document
// conforms.
func ValidateFile(schemaPath, registryPath string) error {
	schemaAbs, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path %s: %w", schemaPath, err)
	}
	registryAbs, err := filepath.Abs(registryPath)
	if err != nil {
		return fmt.Errorf("failed to resolve registry path %s: %w", registryPath, err)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaAbs)
	documentLoader := gojsonschema.NewReferenceLoader("file://" + registryAbs)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}

	if result.Valid() {
		return nil
	}

	failures := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		failures = append(failures, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return &SchemaError{Path: registryPath, Failures: failures}
}
