package docker

import (
	"context"
	"fmt"
	"strings"

	"github.com/hostprep/hostprep/internal/domain/step"
	"github.com/hostprep/hostprep/internal/ports"
	"github.com/hostprep/hostprep/internal/validation"
)

// EngineStep installs the Docker engine package.
type EngineStep struct {
	pkg    string
	id     step.ID
	runner ports.CommandRunner
}

// NewEngineStep creates a new EngineStep.
func NewEngineStep(pkg string, runner ports.CommandRunner) *EngineStep {
	return &EngineStep{
		pkg:    pkg,
		id:     step.MustNewID("docker:engine"),
		runner: runner,
	}
}

// ID returns the step identifier.
func (s *EngineStep) ID() step.ID {
	return s.id
}

// Describe returns the operator narration.
func (s *EngineStep) Describe() string {
	return "Installing Docker engine"
}

// Check reports whether the engine package is already installed.
func (s *EngineStep) Check(ctx context.Context) (bool, error) {
	result, err := s.runner.Run(ctx, "dpkg-query", "-W", "-f=${db:Status-Status}", s.pkg)
	if err != nil {
		return false, err
	}
	if !result.Success() {
		return false, nil
	}
	return strings.Contains(result.Stdout, "installed"), nil
}

// Apply installs the engine package.
func (s *EngineStep) Apply(ctx context.Context) error {
	if err := validation.ValidatePackageName(s.pkg); err != nil {
		return fmt.Errorf("invalid package name: %w", err)
	}

	result, err := s.runner.Run(ctx, "apt-get", "install", "-y", s.pkg)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("apt-get install %s failed: %s", s.pkg, strings.TrimSpace(result.Stderr))
	}
	return nil
}

// ServiceStep enables and starts the docker systemd unit.
type ServiceStep struct {
	id     step.ID
	runner ports.CommandRunner
}

// NewServiceStep creates a new ServiceStep.
func NewServiceStep(runner ports.CommandRunner) *ServiceStep {
	return &ServiceStep{
		id:     step.MustNewID("docker:service"),
		runner: runner,
	}
}

// ID returns the step identifier.
func (s *ServiceStep) ID() step.ID {
	return s.id
}

// Describe returns the operator narration.
func (s *ServiceStep) Describe() string {
	return "Enabling Docker service"
}

// Check reports whether the docker unit is already active.
func (s *ServiceStep) Check(ctx context.Context) (bool, error) {
	result, err := s.runner.Run(ctx, "systemctl", "is-active", "--quiet", "docker")
	if err != nil {
		return false, err
	}
	return result.Success(), nil
}

// Apply enables the unit and starts it immediately.
func (s *ServiceStep) Apply(ctx context.Context) error {
	result, err := s.runner.Run(ctx, "systemctl", "enable", "--now", "docker")
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("systemctl enable docker failed: %s", strings.TrimSpace(result.Stderr))
	}
	return nil
}
