package sshd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hostprep/hostprep/internal/domain/step"
	"github.com/hostprep/hostprep/internal/ports"
	"github.com/hostprep/hostprep/internal/validation"
)

// DirectiveStep sets one sshd_config directive to a desired value.
// The config file is edited in place and never created: a missing file is
// an error, not an invitation.
type DirectiveStep struct {
	path  string
	key   string
	value string
	id    step.ID
	fs    ports.FileSystem
}

// NewDirectiveStep creates a new DirectiveStep.
func NewDirectiveStep(path, key, value string, fs ports.FileSystem) *DirectiveStep {
	return &DirectiveStep{
		path:  path,
		key:   key,
		value: value,
		id:    step.MustNewID("sshd:directive:" + key),
		fs:    fs,
	}
}

// ID returns the step identifier.
func (s *DirectiveStep) ID() step.ID {
	return s.id
}

// Describe returns the operator narration.
func (s *DirectiveStep) Describe() string {
	return fmt.Sprintf("Setting sshd directive %s %s", s.key, s.value)
}

// Check reports whether the directive already has the desired effective
// value: exactly one uncommented line with the desired value.
func (s *DirectiveStep) Check(_ context.Context) (bool, error) {
	if !s.fs.Exists(s.path) {
		return false, fmt.Errorf("sshd config %s does not exist", s.path)
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return false, err
	}

	return directiveSatisfied(string(data), s.key, s.value), nil
}

// Apply rewrites the directive: a commented or uncommented line is rewritten
// to the desired value, duplicate uncommented lines are dropped, and the
// directive is appended if no line carries it. Repeated runs never produce
// duplicate directive lines. The rewritten config lands via a temp file in
// the same directory renamed over the original, so a crash mid-write never
// leaves sshd_config truncated.
func (s *DirectiveStep) Apply(_ context.Context) error {
	if err := validation.ValidateDirectiveName(s.key); err != nil {
		return err
	}

	if !s.fs.Exists(s.path) {
		return fmt.Errorf("sshd config %s does not exist", s.path)
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read sshd config: %w", err)
	}

	rewritten, changed := rewriteDirective(string(data), s.key, s.value)
	if !changed {
		return nil
	}

	mode := os.FileMode(0644)
	if info, err := s.fs.GetFileInfo(s.path); err == nil {
		mode = info.Mode
	}

	tmp := s.path + ".tmp"
	if err := s.fs.WriteFile(tmp, []byte(rewritten), mode); err != nil {
		return fmt.Errorf("write sshd config: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replace sshd config: %w", err)
	}
	return nil
}

// RestartStep restarts the SSH service so the daemon picks up directive
// changes. Its check never reports satisfied, preserving the behavior of
// restarting on every run; set restart: false in the manifest to drop the
// step entirely.
type RestartStep struct {
	service string
	id      step.ID
	runner  ports.CommandRunner
}

// NewRestartStep creates a new RestartStep.
func NewRestartStep(service string, runner ports.CommandRunner) *RestartStep {
	return &RestartStep{
		service: service,
		id:      step.MustNewID("sshd:restart"),
		runner:  runner,
	}
}

// ID returns the step identifier.
func (s *RestartStep) ID() step.ID {
	return s.id
}

// Describe returns the operator narration.
func (s *RestartStep) Describe() string {
	return fmt.Sprintf("Restarting %s service", s.service)
}

// Check always reports not satisfied.
func (s *RestartStep) Check(_ context.Context) (bool, error) {
	return false, nil
}

// Apply restarts the service.
func (s *RestartStep) Apply(ctx context.Context) error {
	result, err := s.runner.Run(ctx, "systemctl", "restart", s.service)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("systemctl restart %s failed: %s", s.service, strings.TrimSpace(result.Stderr))
	}
	return nil
}
