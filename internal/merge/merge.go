// Package merge implements the canonicalization and merge engine: deciding
// whether an incoming name variant belongs to an existing team record,
// merging name variants, and de-duplicating team and region lists by slug.
package merge

import (
	"sort"

	"github.com/itsJawnn/val-teamdb/internal/normalize"
	"github.com/itsJawnn/val-teamdb/internal/registry"
)

// Index is a slug-keyed lookup over team records. It is owned by a single
// pipeline run and mutated only by sequential Resolve calls; there is no
// concurrent writer.
type Index struct {
	records map[string]*registry.Team
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{records: make(map[string]*registry.Team)}
}

// IndexTeams builds an index from an existing master list, folding records
// that collide on slug into a single accumulated entry (names unioned, last
// writer's logo path recomputed from the slug). Records whose slug cannot be
// derived are skipped.
func IndexTeams(teams []*registry.Team) *Index {
	idx := NewIndex()
	for _, team := range teams {
		idx.fold(team)
	}
	return idx
}

// Len returns the number of distinct slugs in the index.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Lookup returns the record for a slug, or nil.
func (idx *Index) Lookup(slug string) *registry.Team {
	return idx.records[slug]
}

// Teams returns the indexed records sorted by slug, ascending by code point.
// The ordering is a stability contract: re-running a cleanup on its own
// output yields the same order and the same record set.
func (idx *Index) Teams() []*registry.Team {
	slugs := make([]string, 0, len(idx.records))
	for slug := range idx.records {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	teams := make([]*registry.Team, 0, len(slugs))
	for _, slug := range slugs {
		teams = append(teams, idx.records[slug])
	}
	return teams
}

// Resolve merges one raw name into the index: it strips any rank prefix,
// computes the canonical slug (falling back to a slug derived from logoPath
// when the name alone reduces to nothing), and either unions the cleaned
// name into the existing record or creates a new one. The index is mutated
// in place. Returns normalize.ErrUnresolvable when neither the name nor the
// logo path yields a slug.
func (idx *Index) Resolve(rawName, logoPath string) (*registry.Team, error) {
	cleaned := normalize.StripRankPrefix(rawName)
	if cleaned == "" {
		return nil, normalize.ErrUnresolvable
	}

	slug := normalize.Slugify(cleaned)
	if slug == "" {
		slug = normalize.SlugFromLogo(logoPath)
	}
	if slug == "" {
		return nil, normalize.ErrUnresolvable
	}

	if team := idx.records[slug]; team != nil {
		team.AddName(cleaned)
		// Recompute rather than trust the stored path; this keeps logo
		// and slug in lockstep even when the input carried a stale one.
		team.Logo = registry.LogoPath(slug)
		return team, nil
	}

	team := &registry.Team{
		Slug:  slug,
		Logo:  registry.LogoPath(slug),
		Names: []string{cleaned},
	}
	idx.records[slug] = team
	return team, nil
}

// fold merges an existing record into the index using its primary name, or
// its logo-derived slug when it has no names.
func (idx *Index) fold(team *registry.Team) {
	primary := team.PrimaryName()
	if primary == "" {
		slug := normalize.SlugFromLogo(team.Logo)
		if slug == "" {
			return
		}
		primary = slug
	}

	merged, err := idx.Resolve(primary, team.Logo)
	if err != nil {
		return
	}
	for _, name := range team.Names[1:] {
		if stripped := normalize.StripRankPrefix(name); stripped != "" {
			merged.AddName(stripped)
		}
	}
}

// CleanTeams canonicalizes an entire master list: records are processed in
// input order, colliding slugs are unioned, and the result is sorted by slug.
// Idempotent: cleaning an already-clean list reproduces it exactly.
func CleanTeams(teams []*registry.Team) []*registry.Team {
	return IndexTeams(teams).Teams()
}

// CleanRegions de-duplicates each region's ranked list independently of the
// master list: within one region only the first occurrence per slug is kept,
// in order of first appearance. Name variants are rank-stripped; stale logo
// paths are recomputed from the slug.
func CleanRegions(regions map[string][]registry.RegionEntry) map[string][]registry.RegionEntry {
	cleaned := make(map[string][]registry.RegionEntry, len(regions))
	for code, entries := range regions {
		seen := make(map[string]bool, len(entries))
		out := make([]registry.RegionEntry, 0, len(entries))
		for _, entry := range entries {
			slug := regionEntrySlug(entry)
			if slug == "" || seen[slug] {
				continue
			}
			seen[slug] = true
			out = append(out, registry.RegionEntry{
				Slug:  slug,
				Names: cleanNames(entry.Names),
				Logo:  registry.LogoPath(slug),
			})
		}
		cleaned[code] = out
	}
	return cleaned
}

func regionEntrySlug(entry registry.RegionEntry) string {
	for _, name := range entry.Names {
		stripped := normalize.StripRankPrefix(name)
		if stripped == "" {
			continue
		}
		if slug := normalize.Slugify(stripped); slug != "" {
			return slug
		}
	}
	if entry.Slug != "" {
		return normalize.Slugify(entry.Slug)
	}
	return normalize.SlugFromLogo(entry.Logo)
}

func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		stripped := normalize.StripRankPrefix(name)
		if stripped == "" || seen[stripped] {
			continue
		}
		seen[stripped] = true
		out = append(out, stripped)
	}
	return out
}
