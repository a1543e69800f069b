package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripRankPrefix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Number with period", "12. Fnatic", "Fnatic"},
		{"No prefix", "Fnatic", "Fnatic"},
		{"Leading whitespace and bare number", "  7 Cloud9", "Cloud9"},
		{"Digits inside name untouched", "Cloud9", "Cloud9"},
		{"Only strips leading run", "1. 2GAME Esports", "2GAME Esports"},
		{"Whitespace only", "   ", ""},
		{"Empty", "", ""},
		{"Bare number without separator", "100", "100"},
		{"Trailing whitespace trimmed", "Fnatic  ", "Fnatic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripRankPrefix(tt.input))
		})
	}
}

func TestLatinize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Spanish accent", "Leviatán", "Leviatan"},
		{"Multiple accents", "Tèam Ümlaut", "Team Umlaut"},
		{"Plain ASCII unchanged", "Cloud9", "Cloud9"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Latinize(tt.input))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Accent and noise word", "Leviatán Esports", "leviatan"},
		{"Override on abbreviation", "G2", "g2-esports"},
		{"Override after noise removal", "G2 Esports", "g2-esports"},
		{"Digits kept", "100 Thieves", "100-thieves"},
		{"Ampersand", "Ninjas & Pirates", "ninjas-and-pirates"},
		{"Apostrophe stripped", "Shane's Squad", "shanes-squad"},
		{"Punctuation collapsed", "Gen.G", "gen-g"},
		{"Noise words dropped", "Karmine Corp GC", "karmine-corp"},
		{"All noise yields empty", "Team Esports", ""},
		{"Whitespace only", "   ", ""},
		{"Uppercase lowered", "FNATIC", "fnatic"},
		{"Override survives noise stripping", "Team Heretics", "team-heretics"},
		{"Override abbreviation", "TH", "team-heretics"},
		{"Canonical slug is a fixed point", "team-heretics", "team-heretics"},
		{"Game Changers roster kept distinct", "DRX GC", "drx-changers"},
		{"Main roster unaffected by GC override", "DRX", "drx"},
		{"Game Changers slug is a fixed point", "drx-changers", "drx-changers"},
		{"Mixed noise and identity", "Sentinels Gaming Club", "sentinels"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugifyKeepsRosterVariantsDistinct(t *testing.T) {
	// A Game Changers roster and its organization's main roster are
	// different teams and must never share a slug.
	assert.NotEqual(t, Slugify("DRX"), Slugify("DRX GC"))
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Leviatán Esports", "G2", "100 Thieves", "Gen.G", "Karmine Corp GC", "DRX GC"}
	for _, in := range inputs {
		first := Slugify(in)
		assert.Equal(t, first, Slugify(first), "slugify should be stable on its own output for %q", in)
	}
}

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Dotted and plain converge", "Gen.G", "geng"},
		{"Plain form", "GenG", "geng"},
		{"Noise words removed", "Leviatán Esports", "leviatan"},
		{"No hyphens retained", "100 Thieves", "100thieves"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalKey(tt.input))
		})
	}
}

func TestCleanLogoPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Numeric prefix stripped", "logos/12-fnatic.png", "logos/fnatic.png"},
		{"No prefix unchanged", "logos/fnatic.png", "logos/fnatic.png"},
		{"Digits in stem kept", "logos/100-thieves.png", "logos/thieves.png"},
		{"Bare filename", "7-cloud9.png", "cloud9.png"},
		{"Directory preserved", "assets/logos/3-geng.png", "assets/logos/geng.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanLogoPath(tt.input))
		})
	}
}

func TestSlugFromLogo(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain slug stem", "logos/fnatic.png", "fnatic"},
		{"Numeric prefix stripped first", "logos/12-fnatic.png", "fnatic"},
		{"Empty path", "", ""},
		{"Stem sanitized", "logos/Gen G.png", "gen-g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SlugFromLogo(tt.input))
		})
	}
}
