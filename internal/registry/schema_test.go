package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaPath(t *testing.T) string {
	t.Helper()
	path := ResolveSchemaPath(DefaultSchemaPath)
	require.NotEmpty(t, path, "registry schema not found from test working directory")
	return path
}

func TestValidateFile_ValidDocument(t *testing.T) {
	doc := `{
		"version": 1,
		"updated_at": "2026-01-15T12:00:00Z",
		"teams": [
			{"logo": "logos/fnatic.png", "names": ["Fnatic"]}
		],
		"regions": {
			"europe": [
				{"slug": "fnatic", "names": ["Fnatic"], "logo": "logos/fnatic.png"}
			]
		}
	}`
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	assert.NoError(t, ValidateFile(schemaPath(t), path))
}

func TestValidateFile_BadSlugRejected(t *testing.T) {
	doc := `{
		"version": 1,
		"updated_at": "now",
		"teams": [],
		"regions": {
			"europe": [
				{"slug": "Not A Slug", "names": ["x"], "logo": "logos/x.png"}
			]
		}
	}`
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	err := ValidateFile(schemaPath(t), path)
	require.Error(t, err)

	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
	assert.NotEmpty(t, schemaErr.Failures)
}

func TestValidateFile_MissingRequiredField(t *testing.T) {
	doc := `{"teams": [], "regions": {}}`
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	err := ValidateFile(schemaPath(t), path)
	require.Error(t, err)

	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}
