package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Success(t *testing.T) {
	path := writeConfig(t, `{
		"ranking_base": "https://www.vlr.gg/rankings",
		"regions": ["europe", "korea"],
		"top_n": 20,
		"delay_ms": 500,
		"use_browser": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://www.vlr.gg/rankings", cfg.RankingBase)
	assert.Equal(t, []string{"europe", "korea"}, cfg.Regions)
	assert.Equal(t, 20, cfg.TopN)
	assert.Equal(t, 500, cfg.DelayMs)
	assert.True(t, cfg.UseBrowser)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{invalid`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Empty config is valid", Config{}, false},
		{"Valid full config", Config{RankingBase: "https://example.com", Regions: []string{"europe"}, TopN: 30}, false},
		{"Bad ranking base URL", Config{RankingBase: "not a url"}, true},
		{"Region code too short", Config{Regions: []string{"e"}}, true},
		{"TopN above cap", Config{TopN: 500}, true},
		{"Negative delay", Config{DelayMs: -1}, true},
		{"Missing registry file", Config{Registry: "/nonexistent/registry.json"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
