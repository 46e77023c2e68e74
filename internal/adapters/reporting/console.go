// Package reporting renders run progress for the operator.
package reporting

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/hostprep/hostprep/internal/domain/run"
	"github.com/hostprep/hostprep/internal/domain/step"
)

// Status colors.
var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"} // Green
	colorError   = lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"} // Red
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#6c7086"} // Overlay0
	colorInfo    = lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"} // Blue
)

// ConsoleReporter streams step outcomes to a writer, one or more lines per
// step, with distinguishable success and failure markers.
type ConsoleReporter struct {
	out     io.Writer
	success lipgloss.Style
	failure lipgloss.Style
	skip    lipgloss.Style
	info    lipgloss.Style
}

// NewConsoleReporter creates a reporter writing to stdout.
func NewConsoleReporter() *ConsoleReporter {
	return NewConsoleReporterTo(os.Stdout)
}

// NewConsoleReporterTo creates a reporter writing to the given writer.
func NewConsoleReporterTo(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{
		out:     out,
		success: lipgloss.NewStyle().Foreground(colorSuccess),
		failure: lipgloss.NewStyle().Foreground(colorError),
		skip:    lipgloss.NewStyle().Foreground(colorMuted),
		info:    lipgloss.NewStyle().Foreground(colorInfo),
	}
}

// Starting narrates that a step is about to run.
func (r *ConsoleReporter) Starting(s step.Step) {
	r.printf("%s %s\n", r.info.Render("→"), s.Describe())
}

// Report renders a completed step's outcome.
func (r *ConsoleReporter) Report(result run.StepResult) {
	id := result.StepID().String()

	switch result.Outcome() {
	case run.OutcomeSucceeded:
		r.printf("  %s %s\n", r.success.Render("✓"), id)
	case run.OutcomeSkipped:
		r.printf("  %s %s (%s)\n", r.skip.Render("-"), id, result.Detail())
	case run.OutcomeFailed:
		r.printf("  %s %s: %v\n", r.failure.Render("✗"), id, result.Error())
	}
}

// Summary prints the aggregate outcome of a finished run.
func (r *ConsoleReporter) Summary(report *run.Report) {
	succeeded, failed, skipped := report.Summary()
	r.printf("\nSummary: %d applied, %d failed, %d skipped (run %s)\n",
		succeeded, failed, skipped, report.RunID())
	if !report.Clean() {
		r.printf("%s\n", r.failure.Render("Run completed with failures; review the report above."))
	}
}

// printf writes to the output writer, swallowing errors: reporting failures
// must never abort the run.
func (r *ConsoleReporter) printf(format string, args ...interface{}) {
	defer func() { _ = recover() }()
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Ensure ConsoleReporter implements run.Reporter.
var _ run.Reporter = (*ConsoleReporter)(nil)
