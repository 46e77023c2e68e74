package reporting

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hostprep/hostprep/internal/domain/run"
	"github.com/hostprep/hostprep/internal/domain/step"
)

type describedStep struct {
	id step.ID
}

func (s describedStep) ID() step.ID { return s.id }

func (s describedStep) Check(context.Context) (bool, error) { return false, nil }

func (s describedStep) Apply(context.Context) error { return nil }

func (s describedStep) Describe() string { return "Doing the thing" }

func TestStarting(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporterTo(&buf)

	r.Starting(describedStep{id: step.MustNewID("apt:update")})

	if !strings.Contains(buf.String(), "Doing the thing") {
		t.Errorf("output should contain the step narration, got %q", buf.String())
	}
}

func TestReportOutcomes(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporterTo(&buf)

	r.Report(run.NewStepResult(step.MustNewID("a"), run.OutcomeSucceeded, nil))
	r.Report(run.NewStepResult(step.MustNewID("b"), run.OutcomeSkipped, nil).WithDetail("already satisfied"))
	r.Report(run.NewStepResult(step.MustNewID("c"), run.OutcomeFailed, errors.New("boom")))

	output := buf.String()
	if !strings.Contains(output, "a") {
		t.Errorf("output should name the succeeded step, got %q", output)
	}
	if !strings.Contains(output, "already satisfied") {
		t.Errorf("output should carry the skip detail, got %q", output)
	}
	if !strings.Contains(output, "boom") {
		t.Errorf("output should carry the failure error, got %q", output)
	}
}

func TestSummaryCounts(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporterTo(&buf)

	report := run.NewReport()
	report.Add(run.NewStepResult(step.MustNewID("a"), run.OutcomeSucceeded, nil))
	report.Add(run.NewStepResult(step.MustNewID("b"), run.OutcomeFailed, errors.New("boom")))
	report.Add(run.NewStepResult(step.MustNewID("c"), run.OutcomeSkipped, nil))

	r.Summary(report)

	output := buf.String()
	if !strings.Contains(output, "1 applied, 1 failed, 1 skipped") {
		t.Errorf("summary counts missing, got %q", output)
	}
	if !strings.Contains(output, "failures") {
		t.Errorf("degraded run should be called out, got %q", output)
	}
}

func TestSummaryCleanRun(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporterTo(&buf)

	report := run.NewReport()
	report.Add(run.NewStepResult(step.MustNewID("a"), run.OutcomeSucceeded, nil))

	r.Summary(report)

	if strings.Contains(buf.String(), "failures") {
		t.Errorf("clean run should not mention failures, got %q", buf.String())
	}
}

// brokenWriter fails every write.
type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestReporterSwallowsWriteErrors(t *testing.T) {
	r := NewConsoleReporterTo(brokenWriter{})

	// None of these may panic or return: reporting failures must never
	// disturb the run.
	r.Starting(describedStep{id: step.MustNewID("a")})
	r.Report(run.NewStepResult(step.MustNewID("a"), run.OutcomeSucceeded, nil))
	r.Summary(run.NewReport())
}
