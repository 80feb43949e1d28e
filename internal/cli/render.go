package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/example/pii-redact/internal/detector"
	"github.com/example/pii-redact/internal/redactor"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	countStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	traceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// stdoutIsTTY reports whether stdout is an interactive terminal. Piped
// output gets plain JSON instead of styled tables.
func stdoutIsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderCounts prints per-category counts, one row per category in
// lexical order.
func renderCounts(w io.Writer, counts map[detector.Category]int, styled bool) {
	if len(counts) == 0 {
		fmt.Fprintln(w, "No PII detected.")
		return
	}

	cats := make([]detector.Category, 0, len(counts))
	for cat := range counts {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	for _, cat := range cats {
		name, count := string(cat), fmt.Sprintf("%d", counts[cat])
		if styled {
			name = categoryStyle.Render(name)
			count = countStyle.Render(count)
		}
		fmt.Fprintf(w, "%-20s %s\n", name, count)
	}
}

// renderReport prints a stored redaction report: headline, counts, and
// the reasoning trace when present.
func renderReport(w io.Writer, report redactor.Report, styled bool) {
	headline := fmt.Sprintf("Protected %d item(s)", report.TotalRedacted)
	if !report.AnyRedacted {
		headline = "Nothing was redacted"
	}
	if styled {
		headline = titleStyle.Render(headline)
	}
	fmt.Fprintln(w, headline)

	renderCounts(w, report.PerCategory, styled)

	if len(report.Trace) > 0 {
		fmt.Fprintln(w)
		for _, line := range report.Trace {
			if styled {
				line = traceStyle.Render(line)
			}
			fmt.Fprintln(w, line)
		}
	}
}
