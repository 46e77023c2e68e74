package apt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hostprep/hostprep/internal/domain/step"
	"github.com/hostprep/hostprep/internal/ports"
	"github.com/hostprep/hostprep/internal/validation"
)

// aptListsDir is where apt keeps downloaded index files; its modification
// time tracks the last successful refresh.
const aptListsDir = "/var/lib/apt/lists"

// UpdateStep refreshes the apt package index.
type UpdateStep struct {
	id     step.ID
	maxAge time.Duration
	runner ports.CommandRunner
	fs     ports.FileSystem
	clock  func() time.Time
}

// NewUpdateStep creates a new UpdateStep. The index counts as refreshed if
// the list directory changed within maxAge.
func NewUpdateStep(maxAge time.Duration, runner ports.CommandRunner, fs ports.FileSystem) *UpdateStep {
	return &UpdateStep{
		id:     step.MustNewID("apt:update"),
		maxAge: maxAge,
		runner: runner,
		fs:     fs,
		clock:  time.Now,
	}
}

// ID returns the step identifier.
func (s *UpdateStep) ID() step.ID {
	return s.id
}

// Describe returns the operator narration.
func (s *UpdateStep) Describe() string {
	return "Refreshing apt package index"
}

// Check reports whether the index was refreshed recently enough.
func (s *UpdateStep) Check(_ context.Context) (bool, error) {
	info, err := s.fs.GetFileInfo(aptListsDir)
	if err != nil {
		// No list directory means the index was never fetched.
		return false, nil
	}
	return s.clock().Sub(info.ModTime) < s.maxAge, nil
}

// Apply refreshes the package index.
func (s *UpdateStep) Apply(ctx context.Context) error {
	result, err := s.runner.Run(ctx, "apt-get", "update")
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("apt-get update failed: %s", strings.TrimSpace(result.Stderr))
	}
	return nil
}

// PackageStep installs a single apt package.
type PackageStep struct {
	name   string
	id     step.ID
	runner ports.CommandRunner
}

// NewPackageStep creates a new PackageStep.
func NewPackageStep(name string, runner ports.CommandRunner) *PackageStep {
	return &PackageStep{
		name:   name,
		id:     step.MustNewID("apt:package:" + name),
		runner: runner,
	}
}

// ID returns the step identifier.
func (s *PackageStep) ID() step.ID {
	return s.id
}

// Describe returns the operator narration.
func (s *PackageStep) Describe() string {
	return fmt.Sprintf("Installing package %s", s.name)
}

// Check reports whether the package is already installed.
func (s *PackageStep) Check(ctx context.Context) (bool, error) {
	result, err := s.runner.Run(ctx, "dpkg-query", "-W", "-f=${Package}\t${db:Status-Status}\n", s.name)
	if err != nil {
		return false, err
	}

	// dpkg-query exits non-zero when the package is unknown.
	if !result.Success() {
		return false, nil
	}

	return strings.Contains(result.Stdout, "installed"), nil
}

// Apply installs the package.
func (s *PackageStep) Apply(ctx context.Context) error {
	if err := validation.ValidatePackageName(s.name); err != nil {
		return fmt.Errorf("invalid package name: %w", err)
	}

	result, err := s.runner.Run(ctx, "apt-get", "install", "-y", s.name)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("apt-get install %s failed: %s", s.name, strings.TrimSpace(result.Stderr))
	}
	return nil
}
