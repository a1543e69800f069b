// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Registry string `json:"registry,omitempty" validate:"omitempty,filepath"` // Path to the registry JSON file
	Schema   string `json:"schema,omitempty" validate:"omitempty,filepath"`   // Path to the registry JSON Schema

	// Scraping
	RankingBase string   `json:"ranking_base,omitempty" validate:"omitempty,url"` // Base URL of the ranking site
	Regions     []string `json:"regions,omitempty" validate:"dive,min=2"`         // Region codes to refresh, in fetch order
	TopN        int      `json:"top_n,omitempty" validate:"gte=0,lte=100"`        // Max ranked entries kept per region
	DelayMs     int      `json:"delay_ms,omitempty" validate:"gte=0"`             // Politeness delay between region fetches
	TimeoutSec  int      `json:"timeout_sec,omitempty" validate:"gte=0"`          // Per-request HTTP timeout

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Render JS-heavy ranking pages in a headless browser
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed progress information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL for the optional snapshot archive
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.Registry != "" {
		if _, err := os.Stat(c.Registry); os.IsNotExist(err) {
			return fmt.Errorf("config error: registry file not found: %s", c.Registry)
		}
	}
	return nil
}
