package reporters

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
)

const (
	FormatTable       = "table"
	maxContextDisplay = 120
)

var statusIcons = map[string]string{ //nolint:gochecknoglobals // lookup table
	"deprecated": "⚠",
	"eol":        "✖",
	"active":     "✔",
	"unknown":    "?",
}

// TerminalReporter renders human-readable, colored output.
type TerminalReporter struct {
	bold    *color.Color
	heading *color.Color
	dim     *color.Color
	cyan    *color.Color
	green   *color.Color
	yellow  *color.Color
	red     *color.Color
	gray    *color.Color
}

// NewTerminalReporter creates a TerminalReporter. Colors are also disabled
// automatically when stdout is not a terminal.
func NewTerminalReporter(noColor bool) *TerminalReporter {
	reporter := &TerminalReporter{
		bold:    color.New(color.Bold),
		heading: color.New(color.Bold, color.Underline),
		dim:     color.New(color.Faint),
		cyan:    color.New(color.FgCyan),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow),
		red:     color.New(color.FgRed),
		gray:    color.New(color.FgHiBlack),
	}
	if noColor {
		for _, c := range reporter.palette() {
			c.DisableColor()
		}
	}
	return reporter
}

func (it *TerminalReporter) palette() []*color.Color {
	return []*color.Color{it.bold, it.heading, it.dim, it.cyan, it.green, it.yellow, it.red, it.gray}
}

// Format returns "table".
func (it *TerminalReporter) Format() string { return FormatTable }

func (it *TerminalReporter) statusColor(status string) *color.Color {
	switch status {
	case string(entities.StatusDeprecated):
		return it.yellow
	case string(entities.StatusEOL):
		return it.red
	case string(entities.StatusActive):
		return it.green
	default:
		return it.gray
	}
}

func (it *TerminalReporter) badge(status string) string {
	icon, ok := statusIcons[status]
	if !ok {
		icon = "?"
	}
	return it.statusColor(status).Sprintf("%s %s", icon, status)
}

// ScanReport prints matches grouped by file followed by a summary line.
func (it *TerminalReporter) ScanReport(w io.Writer, report *entities.ScanReport) error {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(it.bold.Sprint("model-graveyard scan") + "\n")
	b.WriteString(it.dim.Sprintf("path:    %s", report.RootPath) + "\n")
	b.WriteString(it.dim.Sprintf("scanned: %s", report.ScannedAt.Local().Format("2006-01-02 15:04:05")) + "\n")
	b.WriteString(it.dim.Sprintf("files:   %d", report.FilesScanned) + "\n")
	b.WriteString("\n")

	if len(report.Matches) == 0 {
		b.WriteString(it.green.Sprint("✔ no model strings found") + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	currentFile := ""
	for _, m := range report.Matches {
		if m.File != currentFile {
			if currentFile != "" {
				b.WriteString("\n")
			}
			currentFile = m.File
			b.WriteString(it.heading.Sprint(m.File) + "\n")
		}

		detail := ""
		if m.Model != nil && m.Model.Status.IsRetired() {
			if m.Model.EOL != "" {
				detail += it.dim.Sprintf(" eol: %s", m.Model.EOL)
			}
			if m.Model.HasSuccessor() {
				detail += it.green.Sprintf(" → %s", m.Model.Successor)
			}
		}

		fmt.Fprintf(&b, "  %s  %s  %s%s\n",
			it.dim.Sprintf("%d:%d", m.Line, m.Column),
			it.badge(m.Status()),
			it.cyan.Sprintf("%q", m.Raw),
			detail,
		)
		b.WriteString(it.dim.Sprintf("         %s", truncate(m.Context, maxContextDisplay)) + "\n")
	}
	b.WriteString("\n")

	summary := report.Summary
	var parts []string
	if summary.EOL > 0 {
		parts = append(parts, it.red.Sprintf("%d eol", summary.EOL))
	}
	if summary.Deprecated > 0 {
		parts = append(parts, it.yellow.Sprintf("%d deprecated", summary.Deprecated))
	}
	if summary.Active > 0 {
		parts = append(parts, it.green.Sprintf("%d active", summary.Active))
	}
	if summary.Unknown > 0 {
		parts = append(parts, it.gray.Sprintf("%d unknown", summary.Unknown))
	}
	b.WriteString(it.bold.Sprintf("total: %d", summary.Total) + "  " + strings.Join(parts, "  ") + "\n")
	b.WriteString("\n")

	if summary.HasIssues() {
		b.WriteString(it.yellow.Sprint("run") + it.bold.Sprint(" graveyard migrate [path]") +
			it.yellow.Sprint(" to replace deprecated models") + "\n\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// MigrationReport prints the planned or applied replacements grouped by file.
func (it *TerminalReporter) MigrationReport(w io.Writer, report *entities.MigrationReport) error {
	var b strings.Builder

	if len(report.Changes) == 0 {
		b.WriteString(it.green.Sprint("✔ nothing to migrate") + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("\n")
	b.WriteString(it.bold.Sprint("model-graveyard migrate") + "\n\n")

	currentFile := ""
	for _, change := range report.Changes {
		if change.File != currentFile {
			if currentFile != "" {
				b.WriteString("\n")
			}
			currentFile = change.File
			b.WriteString(it.heading.Sprint(change.File) + "\n")
		}

		state := it.dim.Sprint("dry-run")
		if change.Applied {
			state = it.green.Sprint("applied")
		}
		fmt.Fprintf(&b, "  line %s  %s  →  %s  [%s]\n",
			it.dim.Sprint(change.Line),
			it.red.Sprintf("- %q", change.From),
			it.green.Sprintf("+ %q", change.To),
			state,
		)
		if change.Diff != "" {
			for _, line := range strings.Split(strings.TrimRight(change.Diff, "\n"), "\n") {
				b.WriteString("    " + it.diffColor(line).Sprint(line) + "\n")
			}
		}
	}
	b.WriteString("\n")

	if report.Applied {
		b.WriteString(it.green.Sprintf("✔ applied %d replacement(s)", report.AppliedCount()) + "\n")
	} else {
		b.WriteString(it.dim.Sprintf("dry-run: %d replacement(s) pending", len(report.Changes)) + "\n")
		b.WriteString(it.dim.Sprint("run with --apply to write changes") + "\n")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (it *TerminalReporter) diffColor(line string) *color.Color {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return it.bold
	case strings.HasPrefix(line, "+"):
		return it.green
	case strings.HasPrefix(line, "-"):
		return it.red
	default:
		return it.cyan
	}
}

// Registry prints the catalog grouped by status.
func (it *TerminalReporter) Registry(w io.Writer, groups []entities.StatusGroup) error {
	var b strings.Builder

	for _, group := range groups {
		label := it.statusColor(string(group.Status)).Sprint(group.Status)
		fmt.Fprintf(&b, "\n%s (%d)\n", it.bold.Sprint(label), len(group.Models))

		for _, model := range group.Models {
			eol := ""
			if model.EOL != "" {
				eol = it.dim.Sprintf(" eol: %s", model.EOL)
			}
			successor := ""
			if model.HasSuccessor() {
				successor = it.green.Sprintf(" → %s", model.Successor)
			}
			fmt.Fprintf(&b, "  %s  [%s]%s%s\n", it.cyan.Sprint(model.ID), model.Provider, eol, successor)
		}
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
