package run

import (
	"time"

	"github.com/google/uuid"
)

// Report is the ordered collection of per-step outcomes produced by one
// execution of the Runner, one entry per registered step.
type Report struct {
	runID      uuid.UUID
	results    []StepResult
	startedAt  time.Time
	finishedAt time.Time
}

// NewReport creates an empty Report with a fresh run ID.
func NewReport() *Report {
	return &Report{
		runID:     uuid.New(),
		results:   make([]StepResult, 0),
		startedAt: time.Now(),
	}
}

// RunID returns the unique identifier of this run.
func (r *Report) RunID() uuid.UUID {
	return r.runID
}

// Add appends a step result.
func (r *Report) Add(result StepResult) {
	r.results = append(r.results, result)
}

// Results returns all step results in execution order.
func (r *Report) Results() []StepResult {
	out := make([]StepResult, len(r.results))
	copy(out, r.results)
	return out
}

// Len returns the number of recorded results.
func (r *Report) Len() int {
	return len(r.results)
}

// IsEmpty returns true if no step produced a result.
func (r *Report) IsEmpty() bool {
	return len(r.results) == 0
}

// Clean returns true iff every result is skipped or succeeded.
// Any failed entry makes the run degraded.
func (r *Report) Clean() bool {
	for i := range r.results {
		if r.results[i].Failed() {
			return false
		}
	}
	return true
}

// Summary returns aggregate counts per outcome.
func (r *Report) Summary() (succeeded, failed, skipped int) {
	for i := range r.results {
		switch r.results[i].Outcome() {
		case OutcomeSucceeded:
			succeeded++
		case OutcomeFailed:
			failed++
		case OutcomeSkipped:
			skipped++
		}
	}
	return succeeded, failed, skipped
}

// StartedAt returns the run start time.
func (r *Report) StartedAt() time.Time {
	return r.startedAt
}

// FinishedAt returns the run finish time, zero until the run completes.
func (r *Report) FinishedAt() time.Time {
	return r.finishedAt
}

// finish stamps the completion time.
func (r *Report) finish() {
	r.finishedAt = time.Now()
}
