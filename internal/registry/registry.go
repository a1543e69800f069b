// Package registry defines the team registry document: the master team list,
// per-region ranked entries, and JSON load/save for the registry file.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// TimestampFormat is the layout used for the registry's updated_at field.
const TimestampFormat = time.RFC3339

// Team is one entry in the master team list. The slug is derived from the
// team's names at load/merge time and is not persisted in the teams list;
// the logo path encodes it on disk.
type Team struct {
	Slug  string   `json:"-"`
	Logo  string   `json:"logo"`
	Names []string `json:"names"`
}

// RegionEntry is one ranked entry in a region's list. Position in the slice
// is the rank.
type RegionEntry struct {
	Slug  string   `json:"slug"`
	Names []string `json:"names"`
	Logo  string   `json:"logo"`
}

// Registry is the root snapshot of the registry file.
type Registry struct {
	Version   int                      `json:"version"`
	UpdatedAt string                   `json:"updated_at"`
	Teams     []*Team                  `json:"teams"`
	Regions   map[string][]RegionEntry `json:"regions"`
}

// ParseError indicates the registry file could not be parsed at all. Unlike
// missing optional fields, this is fatal: there is nothing safe to produce.
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse registry %s: %v", e.Path, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Load reads and decodes a registry file. Missing optional fields are
// tolerated: absent teams decode to an empty list and absent regions to an
// empty map. Only unparseable JSON is an error.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file %s: %w", path, err)
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}

	if reg.Teams == nil {
		reg.Teams = []*Team{}
	}
	if reg.Regions == nil {
		reg.Regions = map[string][]RegionEntry{}
	}
	return &reg, nil
}

// Save writes the registry fully rewritten: pretty-printed with a trailing
// newline.
func Save(path string, reg *Registry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry file %s: %w", path, err)
	}
	return nil
}

// Touch refreshes the snapshot timestamp.
func (r *Registry) Touch() {
	r.UpdatedAt = time.Now().UTC().Format(TimestampFormat)
}

// PrimaryName returns the team's first stored display name, or "" if the
// team has none.
func (t *Team) PrimaryName() string {
	if len(t.Names) == 0 {
		return ""
	}
	return t.Names[0]
}

// AddName appends a display name unless an identical one is already present.
func (t *Team) AddName(name string) {
	for _, existing := range t.Names {
		if existing == name {
			return
		}
	}
	t.Names = append(t.Names, name)
}

// LogoPath returns the conventional logo location for a slug.
func LogoPath(slug string) string {
	return "logos/" + slug + ".png"
}
