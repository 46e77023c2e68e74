package run

import "github.com/hostprep/hostprep/internal/domain/step"

// Reporter renders step outcomes as they are produced, so an operator
// watching the run sees live progress. Implementations must never let a
// rendering failure escape: reporting problems are swallowed, not escalated.
type Reporter interface {
	// Starting narrates that a step is about to run.
	Starting(s step.Step)

	// Report renders the outcome of a completed step.
	Report(result StepResult)
}

// NopReporter discards all progress output.
type NopReporter struct{}

// NewNopReporter creates a new NopReporter.
func NewNopReporter() *NopReporter {
	return &NopReporter{}
}

// Starting does nothing.
func (r *NopReporter) Starting(_ step.Step) {}

// Report does nothing.
func (r *NopReporter) Report(_ StepResult) {}

// Ensure NopReporter implements Reporter.
var _ Reporter = (*NopReporter)(nil)
