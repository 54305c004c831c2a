// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jdoe/resume-builder/internal/rendering"
	"github.com/jdoe/resume-builder/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeSummary outputs a human-readable summary of a resume document:
// its header fields, selected theme, and section sizes.
func (p *Printer) PrintResumeSummary(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	name := resume.ProfileInfo.FullName
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if resume.ProfileInfo.Designation != "" {
		sb.WriteString(fmt.Sprintf("Role:     %s\n", resume.ProfileInfo.Designation))
	}
	sb.WriteString(fmt.Sprintf("Theme:    %s\n", rendering.Select(resume).Name))
	sb.WriteString("\n")

	sections := []struct {
		name  string
		count int
	}{
		{"Experience", len(resume.WorkExperience)},
		{"Education", len(resume.Education)},
		{"Skills", len(resume.Skills)},
		{"Projects", len(resume.Projects)},
		{"Certifications", len(resume.Certifications)},
		{"Languages", len(resume.Languages)},
		{"Interests", len(resume.Interests)},
	}
	sb.WriteString("Sections:\n")
	for _, s := range sections {
		if s.count == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  • %-15s %d\n", s.name, s.count))
	}

	p.printBox("RESUME DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExperience outputs the first few employment entries in order.
func (p *Printer) PrintExperience(entries []types.WorkExperience) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := entries[i]
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, exp.Role))
		if exp.Company != "" {
			sb.WriteString(fmt.Sprintf(" @ %s", exp.Company))
		}
		sb.WriteString("\n")
		if exp.StartDate != "" || exp.EndDate != "" {
			sb.WriteString(fmt.Sprintf("   %s - %s\n", exp.StartDate, exp.EndDate))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(entries)-maxItemsToShow))
	}

	p.printBox("WORK EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintThemeCatalog outputs every registered theme, marking which ones the
// given plan unlocks.
func (p *Printer) PrintThemeCatalog(premium bool) {
	available := make(map[string]bool)
	for _, theme := range rendering.ThemesFor(premium) {
		available[theme] = true
	}

	var sb strings.Builder
	for _, theme := range rendering.AllThemes() {
		marker := " "
		if available[theme] {
			marker = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, theme))
	}

	p.printBox("TEMPLATE THEMES", strings.TrimSuffix(sb.String(), "\n"))
}
