package run

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hostprep/hostprep/internal/domain/step"
	"github.com/hostprep/hostprep/internal/ports"
)

// ErrInsufficientPrivilege is returned when the privilege precondition
// fails. The run aborts before any step executes.
var ErrInsufficientPrivilege = errors.New("provisioning run requires elevated privilege")

// Runner executes registered steps in declaration order with an
// idempotent-skip policy and a continue-on-failure policy.
//
// A failed step is recorded and reported, then execution moves on to the
// next step: provisioning favors maximal partial progress over fail-fast,
// since an operator reviews the report afterward. The one non-continuable
// precondition is the privilege check, consulted once before any step.
type Runner struct {
	priv     ports.Privilege
	reporter Reporter
	logger   ports.Logger
}

// NewRunner creates a Runner with no privilege gate and silent reporting.
func NewRunner() *Runner {
	return &Runner{
		reporter: NewNopReporter(),
	}
}

// WithPrivilege returns a Runner that consults the given privilege check
// once at the start of every run.
func (r *Runner) WithPrivilege(p ports.Privilege) *Runner {
	return &Runner{priv: p, reporter: r.reporter, logger: r.logger}
}

// WithReporter returns a Runner that streams progress to the given reporter.
func (r *Runner) WithReporter(rep Reporter) *Runner {
	return &Runner{priv: r.priv, reporter: rep, logger: r.logger}
}

// WithLogger returns a Runner that logs step transitions.
func (r *Runner) WithLogger(l ports.Logger) *Runner {
	return &Runner{priv: r.priv, reporter: r.reporter, logger: l}
}

// Run executes every registered step and returns the aggregate report.
//
// Per-step failures never propagate as errors; they are recorded as failed
// results and the sequence continues. The returned error is non-nil only
// for the privilege precondition, in which case the report is empty and no
// step's check or apply was invoked. Once started, the sequence always runs
// to completion; cancellation mid-run is not exposed.
func (r *Runner) Run(ctx context.Context, registry *step.Registry) (*Report, error) {
	report := NewReport()

	if r.priv != nil && !r.priv.Elevated() {
		report.finish()
		return report, ErrInsufficientPrivilege
	}

	for _, s := range registry.Steps() {
		r.reporter.Starting(s)
		if r.logger != nil {
			r.logger.Info(ctx, "running step", ports.F("step", s.ID().String()))
		}

		result := r.runStep(ctx, s)
		report.Add(result)
		r.reporter.Report(result)

		if r.logger != nil && result.Failed() {
			r.logger.Error(ctx, "step failed",
				ports.F("step", s.ID().String()),
				ports.F("error", result.Error()))
		}
	}

	report.finish()
	return report, nil
}

// runStep executes one step: check, skip if satisfied, otherwise apply.
func (r *Runner) runStep(ctx context.Context, s step.Step) StepResult {
	start := time.Now()

	satisfied, err := checkStep(ctx, s)
	if err != nil {
		// A broken completion check must not crash the run.
		return NewStepResult(s.ID(), OutcomeFailed, fmt.Errorf("check: %w", err)).
			WithDetail("completion check failed").
			WithDuration(time.Since(start))
	}

	if satisfied {
		return NewStepResult(s.ID(), OutcomeSkipped, nil).
			WithDetail("already satisfied").
			WithDuration(time.Since(start))
	}

	if err := applyStep(ctx, s); err != nil {
		return NewStepResult(s.ID(), OutcomeFailed, err).
			WithDetail("apply failed").
			WithDuration(time.Since(start))
	}

	return NewStepResult(s.ID(), OutcomeSucceeded, nil).
		WithDetail("applied").
		WithDuration(time.Since(start))
}

// checkStep invokes Check, converting a panic into an error so a faulty
// step cannot abort the sequence.
func checkStep(ctx context.Context, s step.Step) (satisfied bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			satisfied = false
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return s.Check(ctx)
}

// applyStep invokes Apply with the same panic containment as checkStep.
func applyStep(ctx context.Context, s step.Step) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return s.Apply(ctx)
}
