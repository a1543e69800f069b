package scrape

import (
	"context"
	"fmt"

	"github.com/itsJawnn/val-teamdb/internal/fetch"
)

// Source yields raw team-name candidates for a region, in source ranking
// order. The pipeline truncates to its own top-N; implementations should not.
type Source interface {
	Candidates(ctx context.Context, region string) ([]string, error)
}

// DefaultRankingBase is the ranking site's URL prefix; the region code is
// appended as the final path segment.
const DefaultRankingBase = "https://www.vlr.gg/rankings"

// DefaultRegions lists the region codes refreshed by default, in fetch order.
func DefaultRegions() []string {
	return []string{
		"europe",
		"north-america",
		"brazil",
		"asia-pacific",
		"korea",
		"china",
		"japan",
		"la-s",
		"la-n",
		"oceania",
		"mena",
	}
}

// SiteSource fetches ranking pages over HTTP and extracts candidates from
// their markup.
type SiteSource struct {
	BaseURL    string
	Options    *fetch.Options
	UseBrowser bool
	Verbose    bool
}

// NewSiteSource returns a SiteSource with the default ranking base URL.
func NewSiteSource() *SiteSource {
	return &SiteSource{
		BaseURL: DefaultRankingBase,
		Options: fetch.DefaultOptions(),
	}
}

// Candidates fetches and extracts one region's ranked team names.
func (s *SiteSource) Candidates(ctx context.Context, region string) ([]string, error) {
	url := fmt.Sprintf("%s/%s", s.BaseURL, region)
	html, err := fetch.PageHTML(ctx, url, s.Options, s.UseBrowser, s.Verbose)
	if err != nil {
		return nil, err
	}
	return Candidates(html)
}
