// Package pipeline orchestrates full registry rebuilds: a cleanup pass over
// an existing registry, and an expand pass that refreshes regional rankings
// from a scrape source and merges newly discovered teams.
package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/itsJawnn/val-teamdb/internal/merge"
	"github.com/itsJawnn/val-teamdb/internal/normalize"
	"github.com/itsJawnn/val-teamdb/internal/registry"
	"github.com/itsJawnn/val-teamdb/internal/scrape"
)

// DefaultTopN is the maximum ranked entries kept per region.
const DefaultTopN = 30

// DefaultRegionDelay is the politeness pause between region fetches.
const DefaultRegionDelay = 1500 * time.Millisecond

// Options tunes an expand run.
type Options struct {
	Regions     []string
	TopN        int
	RegionDelay time.Duration
	Verbose     bool
}

// DefaultOptions returns the standard expand settings.
func DefaultOptions() *Options {
	return &Options{
		Regions:     scrape.DefaultRegions(),
		TopN:        DefaultTopN,
		RegionDelay: DefaultRegionDelay,
	}
}

// Result summarizes one expand run for logging and archival.
type Result struct {
	Registry      *registry.Registry
	RegionsOK     []string
	RegionsFailed []string
	TeamsAdded    int
}

// Cleanup canonicalizes an existing registry: the master list is
// de-duplicated by slug and sorted, each region's list is de-duplicated
// independently, version is preserved, and the timestamp refreshed. Running
// it on its own output changes nothing but the timestamp.
func Cleanup(reg *registry.Registry) *registry.Registry {
	out := &registry.Registry{
		Version: reg.Version,
		Teams:   merge.CleanTeams(reg.Teams),
		Regions: merge.CleanRegions(reg.Regions),
	}
	out.Touch()
	return out
}

// Expand refreshes regional rankings from the source and merges discovered
// teams into the registry. Regions are processed sequentially in configured
// order with a politeness delay between fetches; a failed region keeps its
// previous entries (or an empty list if it had none) and does not abort the
// run. The returned registry's master list is rebuilt from the shared index,
// sorted by slug.
func Expand(ctx context.Context, reg *registry.Registry, source scrape.Source, opts *Options) *Result {
	if opts == nil {
		opts = DefaultOptions()
	}
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	idx := merge.IndexTeams(reg.Teams)
	before := idx.Len()

	regions := make(map[string][]registry.RegionEntry, len(opts.Regions))
	result := &Result{}

	for i, region := range opts.Regions {
		if i > 0 && opts.RegionDelay > 0 {
			time.Sleep(opts.RegionDelay)
		}

		entries, err := refreshRegion(ctx, idx, source, region, topN)
		if err != nil {
			log.Printf("[EXPAND] region %s failed, keeping previous data: %v", region, err)
			if previous, ok := reg.Regions[region]; ok {
				regions[region] = previous
			} else {
				regions[region] = []registry.RegionEntry{}
			}
			result.RegionsFailed = append(result.RegionsFailed, region)
			continue
		}

		if opts.Verbose {
			log.Printf("[EXPAND] region %s: %d entries", region, len(entries))
		}
		regions[region] = entries
		result.RegionsOK = append(result.RegionsOK, region)
	}

	// Regions in the registry but not in this run's configuration pass
	// through untouched.
	for code, entries := range reg.Regions {
		if _, ok := regions[code]; !ok {
			regions[code] = entries
		}
	}

	out := &registry.Registry{
		Version: reg.Version,
		Teams:   idx.Teams(),
		Regions: regions,
	}
	out.Touch()

	result.Registry = out
	result.TeamsAdded = idx.Len() - before
	return result
}

// refreshRegion fetches one region's candidates and resolves them against the
// shared index, deduplicating by canonical key and by slug within the region.
func refreshRegion(ctx context.Context, idx *merge.Index, source scrape.Source, region string, topN int) ([]registry.RegionEntry, error) {
	candidates, err := source.Candidates(ctx, region)
	if err != nil {
		return nil, err
	}
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	seenKeys := make(map[string]bool, len(candidates))
	seenSlugs := make(map[string]bool, len(candidates))
	entries := make([]registry.RegionEntry, 0, len(candidates))

	for _, raw := range candidates {
		cleaned := normalize.StripRankPrefix(raw)
		key := normalize.CanonicalKey(cleaned)
		if key == "" || seenKeys[key] {
			continue
		}
		seenKeys[key] = true

		team, err := idx.Resolve(raw, "")
		if err != nil {
			continue
		}
		if seenSlugs[team.Slug] {
			continue
		}
		seenSlugs[team.Slug] = true

		entries = append(entries, registry.RegionEntry{
			Slug:  team.Slug,
			Names: []string{cleaned},
			Logo:  team.Logo,
		})
	}
	return entries, nil
}
