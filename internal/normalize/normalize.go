// Package normalize provides pure text transforms for team names: rank-prefix
// stripping, diacritic removal, slug generation, and canonical-key generation.
// All functions are deterministic and safe for concurrent use.
package normalize

import (
	"errors"
	"path"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrUnresolvable is returned when a name cannot be reduced to a usable slug.
var ErrUnresolvable = errors.New("name is unresolvable")

// noiseWords are suffix/filler tokens that carry no identity: "Leviatán
// Esports" and "Leviatán" are the same team.
var noiseWords = map[string]bool{
	"esports":  true,
	"esport":   true,
	"gaming":   true,
	"team":     true,
	"club":     true,
	"gc":       true,
	"valorant": true,
}

// slugOverrides pins known-ambiguous abbreviations to their canonical slug.
// Checked both before and after noise-word removal so that "G2" and
// "G2 Esports" converge to the same slug.
var slugOverrides = map[string]string{
	"g2":       "g2-esports",
	"100t":     "100-thieves",
	"c9":       "cloud9",
	"sen":      "sentinels",
	"nrg":      "nrg-esports",
	"th":       "team-heretics",
	"heretics": "team-heretics",
	"fut":      "fut-esports",
	"eg":       "evil-geniuses",
	// The Game Changers roster would otherwise collapse onto the main
	// team's slug once "gc" is dropped as a noise word.
	"drx-gc": "drx-changers",
}

var (
	rankPrefixRe   = regexp.MustCompile(`^\s*\d+\.?\s+`)
	nonAlnumRunRe  = regexp.MustCompile(`[^a-z0-9]+`)
	hyphenRunRe    = regexp.MustCompile(`-{2,}`)
	logoNumPrefix  = regexp.MustCompile(`^\d+-`)
	stripDiacritic = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// StripRankPrefix removes a leading ranking number from a scraped name, e.g.
// "12. Fnatic" -> "Fnatic" or "  7 Cloud9" -> "Cloud9". Only the leading run
// of digits is eligible; digits inside the name are untouched. Returns the
// trimmed input when no prefix matches.
func StripRankPrefix(s string) string {
	return strings.TrimSpace(rankPrefixRe.ReplaceAllString(s, ""))
}

// Latinize decomposes accented characters and discards combining marks, e.g.
// "Leviatán" -> "Leviatan".
func Latinize(s string) string {
	result, _, err := transform.String(stripDiacritic, s)
	if err != nil {
		return s
	}
	return result
}

// Slugify converts a display name to its canonical slug: lowercase ASCII
// letters, digits, and single hyphens, with noise words removed and known
// abbreviations resolved via the override table. Returns "" for input that
// reduces to nothing.
func Slugify(name string) string {
	s := strings.ToLower(Latinize(name))
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "’", "")
	s = nonAlnumRunRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if override, ok := slugOverrides[s]; ok {
		return override
	}

	tokens := strings.Split(s, "-")
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" || noiseWords[tok] {
			continue
		}
		kept = append(kept, tok)
	}
	s = strings.Join(kept, "-")
	s = hyphenRunRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if override, ok := slugOverrides[s]; ok {
		return override
	}
	return s
}

// CanonicalKey reduces a name to a bare alphanumeric key used for duplicate
// detection within a single scrape pass: "Gen.G" and "GenG" both yield
// "geng". Unlike Slugify it retains no hyphens and applies no overrides.
func CanonicalKey(name string) string {
	s := strings.ToLower(Latinize(name))
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if noiseWords[w] {
			continue
		}
		kept = append(kept, w)
	}
	s = strings.Join(kept, "")
	return nonAlnumRunRe.ReplaceAllString(s, "")
}

// CleanLogoPath strips a stale "<digits>-" token from the filename stem of a
// logo path, e.g. "logos/12-fnatic.png" -> "logos/fnatic.png". Directory and
// extension are preserved.
func CleanLogoPath(p string) string {
	dir, file := path.Split(p)
	ext := path.Ext(file)
	stem := strings.TrimSuffix(file, ext)
	stem = logoNumPrefix.ReplaceAllString(stem, "")
	return dir + stem + ext
}

// SlugFromLogo derives a fallback slug from a logo path when the name itself
// slugifies to nothing. The filename stem is sanitized to the slug character
// set but noise words and overrides are not applied; the stem is trusted to
// already be a slug.
func SlugFromLogo(p string) string {
	if p == "" {
		return ""
	}
	file := path.Base(CleanLogoPath(p))
	stem := strings.TrimSuffix(file, path.Ext(file))
	stem = strings.ToLower(Latinize(stem))
	stem = nonAlnumRunRe.ReplaceAllString(stem, "-")
	return strings.Trim(stem, "-")
}
