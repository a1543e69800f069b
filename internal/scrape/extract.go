// Package scrape turns ranking-page markup into ordered raw team-name
// candidates. It is a replaceable strategy behind the Source interface so the
// pipeline never depends on markup shape.
package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractionError represents a failure to pull candidates out of markup.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// candidateSelectors are tried in order; the first selector that matches any
// elements wins. They cover the ranking-table layouts the source site has
// shipped.
var candidateSelectors = []string{
	".rank-item-team .ge-text",
	".rank-item-team",
	".mod-squad .text-of",
	"td.rank-item-team-cell",
	".wf-card .ge-text",
}

// maxCandidateLen guards against selector fallbacks grabbing paragraphs
// instead of team names.
const maxCandidateLen = 60

// Candidates extracts raw team-name strings from ranking-page markup, in
// source ranking order. Rank prefixes are left intact; the merge engine
// strips them. Returns an *ExtractionError when the markup cannot be parsed
// or yields nothing usable.
func Candidates(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	for _, selector := range candidateSelectors {
		selection := doc.Find(selector)
		if selection.Length() == 0 {
			continue
		}
		names := collectText(selection)
		if len(names) > 0 {
			return names, nil
		}
	}

	// Fallback: numbered list rows ("1. Fnatic") anywhere in the document.
	names := collectNumbered(doc)
	if len(names) == 0 {
		return nil, &ExtractionError{Message: "no ranking candidates found in markup"}
	}
	return names, nil
}

func collectText(selection *goquery.Selection) []string {
	names := make([]string, 0, selection.Length())
	selection.Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" || len(text) > maxCandidateLen {
			return
		}
		names = append(names, text)
	})
	return names
}

func collectNumbered(doc *goquery.Document) []string {
	var names []string
	doc.Find("li, tr, div").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" || len(text) > maxCandidateLen {
			return
		}
		if !startsWithRank(text) {
			return
		}
		names = append(names, text)
	})
	return names
}

func startsWithRank(s string) bool {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i > 3 {
		return false
	}
	rest := s[i:]
	return strings.HasPrefix(rest, ".") || strings.HasPrefix(rest, " ")
}
