package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsJawnn/val-teamdb/internal/registry"
)

func TestRunValidate_ValidRegistry(t *testing.T) {
	path := writeRegistry(t, `{
		"version": 1,
		"updated_at": "2026-01-01T00:00:00Z",
		"teams": [{"logo": "logos/fnatic.png", "names": ["Fnatic"]}],
		"regions": {}
	}`)

	prevReg, prevSchema := validateRegistryPath, validateSchemaPath
	validateRegistryPath = path
	validateSchemaPath = filepath.Join("..", "..", registry.DefaultSchemaPath)
	defer func() { validateRegistryPath, validateSchemaPath = prevReg, prevSchema }()

	assert.NoError(t, runValidate(validateCmd, nil))
}

func TestRunValidate_InvalidRegistry(t *testing.T) {
	path := writeRegistry(t, `{
		"version": 1,
		"updated_at": "2026-01-01T00:00:00Z",
		"teams": [{"logo": "not-a-logo-path", "names": []}],
		"regions": {}
	}`)

	prevReg, prevSchema := validateRegistryPath, validateSchemaPath
	validateRegistryPath = path
	validateSchemaPath = filepath.Join("..", "..", registry.DefaultSchemaPath)
	defer func() { validateRegistryPath, validateSchemaPath = prevReg, prevSchema }()

	err := runValidate(validateCmd, nil)
	require.Error(t, err)

	var schemaErr *registry.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}
