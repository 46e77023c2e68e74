// Package run handles step orchestration: the runner, per-step results, and
// the aggregate run report.
package run

import (
	"time"

	"github.com/hostprep/hostprep/internal/domain/step"
)

// Outcome represents the recorded result of one step execution.
type Outcome string

const (
	// OutcomeSkipped indicates the step's check found nothing to do.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeSucceeded indicates the step applied its changes.
	OutcomeSucceeded Outcome = "succeeded"
	// OutcomeFailed indicates the step's check or apply failed.
	OutcomeFailed Outcome = "failed"
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	return string(o)
}

// StepResult captures the outcome of executing a single step.
// It is immutable once created; the with-style setters return copies.
type StepResult struct {
	stepID   step.ID
	outcome  Outcome
	detail   string
	err      error
	duration time.Duration
}

// NewStepResult creates a new StepResult.
func NewStepResult(stepID step.ID, outcome Outcome, err error) StepResult {
	return StepResult{
		stepID:  stepID,
		outcome: outcome,
		err:     err,
	}
}

// StepID returns the ID of the step that was executed.
func (r StepResult) StepID() step.ID {
	return r.stepID
}

// Outcome returns the recorded outcome.
func (r StepResult) Outcome() Outcome {
	return r.outcome
}

// Detail returns the human-readable detail message.
func (r StepResult) Detail() string {
	return r.detail
}

// Error returns any error captured during execution.
func (r StepResult) Error() error {
	return r.err
}

// Duration returns how long the step took to execute.
func (r StepResult) Duration() time.Duration {
	return r.duration
}

// Failed returns true if the step failed.
func (r StepResult) Failed() bool {
	return r.outcome == OutcomeFailed
}

// Skipped returns true if the step was already satisfied.
func (r StepResult) Skipped() bool {
	return r.outcome == OutcomeSkipped
}

// WithDetail returns a copy with the detail message set.
func (r StepResult) WithDetail(detail string) StepResult {
	r.detail = detail
	return r
}

// WithDuration returns a copy with the duration set.
func (r StepResult) WithDuration(d time.Duration) StepResult {
	r.duration = d
	return r
}
