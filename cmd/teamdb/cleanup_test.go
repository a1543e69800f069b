package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsJawnn/val-teamdb/internal/registry"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teams.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunCleanup_RewritesRegistry(t *testing.T) {
	path := writeRegistry(t, `{
		"version": 2,
		"updated_at": "2026-01-01T00:00:00Z",
		"teams": [
			{"logo": "logos/fnatic.png", "names": ["7. Fnatic"]},
			{"logo": "logos/fnatic.png", "names": ["FNATIC"]},
			{"logo": "logos/leviatan.png", "names": ["Leviatán Esports"]}
		],
		"regions": {}
	}`)

	prevPath, prevDB := cleanupRegistryPath, cleanupDatabaseURL
	cleanupRegistryPath, cleanupDatabaseURL = path, ""
	defer func() { cleanupRegistryPath, cleanupDatabaseURL = prevPath, prevDB }()

	require.NoError(t, runCleanup(cleanupCmd, nil))

	reg, err := registry.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Version)
	require.Len(t, reg.Teams, 2)
	assert.Equal(t, []string{"Fnatic", "FNATIC"}, reg.Teams[0].Names)
	assert.Equal(t, "logos/fnatic.png", reg.Teams[0].Logo)
	assert.Equal(t, []string{"Leviatán Esports"}, reg.Teams[1].Names)
	assert.Equal(t, "logos/leviatan.png", reg.Teams[1].Logo)
}

func TestRunCleanup_MissingRegistry(t *testing.T) {
	prevPath := cleanupRegistryPath
	cleanupRegistryPath = filepath.Join(t.TempDir(), "missing.json")
	defer func() { cleanupRegistryPath = prevPath }()

	err := runCleanup(cleanupCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load registry")
}

func TestDatabaseURL_FlagWinsOverEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env")
	assert.Equal(t, "postgres://flag", databaseURL("postgres://flag"))
	assert.Equal(t, "postgres://env", databaseURL(""))
}
