// Package observability provides formatted terminal output for generation
// runs: step progress, warnings, and the verbose-mode summaries.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/autoresearch/autora-scaffold/internal/manifest"
	"github.com/autoresearch/autora-scaffold/internal/project"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

var (
	stepStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6BCB77"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A623"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// Printer handles formatted output for generation runs.
type Printer struct {
	out     io.Writer
	verbose bool
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer, verbose bool) *Printer {
	return &Printer{out: out, verbose: verbose}
}

// Out exposes the destination writer so long-running tool output can be
// mirrored to the same place.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Step announces one numbered step of a run. A non-positive total drops the
// denominator, for flows whose step count depends on answers not yet given.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Step(n, total int, format string, args ...any) {
	label := fmt.Sprintf("Step %d:", n)
	if total > 0 {
		label = fmt.Sprintf("Step %d/%d:", n, total)
	}
	prefix := stepStyle.Render(label)
	fmt.Fprintf(p.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Info prints an unnumbered progress line.
//
//nolint:errcheck
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, "%s\n", fmt.Sprintf(format, args...))
}

// Success prints a completion line.
//
//nolint:errcheck
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.out, "%s\n", successStyle.Render(fmt.Sprintf(format, args...)))
}

// Warn surfaces a non-fatal problem, such as a helper tool exiting non-zero.
//
//nolint:errcheck
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", warnStyle.Render("warning:"), fmt.Sprintf(format, args...))
}

// Error prints a failure line.
//
//nolint:errcheck
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", errorStyle.Render("error:"), fmt.Sprintf(format, args...))
}

// Verbose prints only when verbose mode is on.
//
//nolint:errcheck
func (p *Printer) Verbose(format string, args ...any) {
	if !p.verbose {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", faintStyle.Render("[VERBOSE]"), fmt.Sprintf(format, args...))
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

// PrintGroupSummary outputs the dependency groups offered by the manifest.
// Verbose mode only.
func (p *Printer) PrintGroupSummary(groups []manifest.Group) {
	if !p.verbose || len(groups) == 0 {
		return
	}

	var sb strings.Builder
	for _, g := range groups {
		if g.Empty() {
			sb.WriteString(fmt.Sprintf("%-28s (empty, skipped)\n", g.Type))
			continue
		}
		sb.WriteString(fmt.Sprintf("%-28s %d packages\n", g.Type, len(g.Packages)))
	}

	p.printBox("DEPENDENCY GROUPS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRunSummary outputs what a finished run produced.
func (p *Printer) PrintRunSummary(record *project.Record) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Project:  %s\n", record.Name))
	sb.WriteString(fmt.Sprintf("Mode:     %s\n", record.Mode))
	if record.Example != "" {
		sb.WriteString(fmt.Sprintf("Example:  %s\n", record.Example))
	}
	sb.WriteString(fmt.Sprintf("Firebase: %v\n", record.Firebase))

	if len(record.Packages) > 0 {
		sb.WriteString("\nPackages added:\n")
		count := min(len(record.Packages), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.Packages[i]))
		}
		if len(record.Packages) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Packages)-maxItemsToShow))
		}
	}

	p.printBox("PROJECT GENERATED", strings.TrimSuffix(sb.String(), "\n"))
}
