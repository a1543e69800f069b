// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/itsJawnn/val-teamdb/internal/pipeline"
	"github.com/itsJawnn/val-teamdb/internal/registry"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRegistry outputs a human-readable summary of a registry snapshot.
func (p *Printer) PrintRegistry(reg *registry.Registry) {
	if reg == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Version:   %d\n", reg.Version))
	sb.WriteString(fmt.Sprintf("Updated:   %s\n", reg.UpdatedAt))
	sb.WriteString(fmt.Sprintf("Teams:     %d\n", len(reg.Teams)))
	sb.WriteString(fmt.Sprintf("Regions:   %d\n", len(reg.Regions)))
	sb.WriteString("\n")

	codes := make([]string, 0, len(reg.Regions))
	for code := range reg.Regions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		sb.WriteString(fmt.Sprintf("%-16s %d entries\n", code, len(reg.Regions[code])))
	}

	p.printBox("TEAM REGISTRY", strings.TrimRight(sb.String(), "\n"))
}

// PrintTeams outputs the first few master-list entries with their name variants.
func (p *Printer) PrintTeams(teams []*registry.Team) {
	var sb strings.Builder
	shown := len(teams)
	if shown > maxItemsToShow {
		shown = maxItemsToShow
	}

	for _, team := range teams[:shown] {
		sb.WriteString(fmt.Sprintf("%s\n", team.Slug))
		sb.WriteString(fmt.Sprintf("  names: %s\n", strings.Join(team.Names, ", ")))
	}
	if len(teams) > shown {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(teams)-shown))
	}

	p.printBox(fmt.Sprintf("TEAMS (%d)", len(teams)), strings.TrimRight(sb.String(), "\n"))
}

// PrintExpandResult summarizes an expand run: refreshed and failed regions
// and the number of newly discovered teams.
func (p *Printer) PrintExpandResult(result *pipeline.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Refreshed: %s\n", joinOrNone(result.RegionsOK)))
	sb.WriteString(fmt.Sprintf("Failed:    %s\n", joinOrNone(result.RegionsFailed)))
	sb.WriteString(fmt.Sprintf("New teams: %d", result.TeamsAdded))

	p.printBox("EXPAND RUN", sb.String())
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
