package ghcli

import (
	"context"
	"fmt"
	"strings"

	"github.com/hostprep/hostprep/internal/domain/step"
	"github.com/hostprep/hostprep/internal/ports"
)

// KeyringStep installs the GitHub CLI apt signing key.
type KeyringStep struct {
	id     step.ID
	runner ports.CommandRunner
	fs     ports.FileSystem
}

// NewKeyringStep creates a new KeyringStep.
func NewKeyringStep(runner ports.CommandRunner, fs ports.FileSystem) *KeyringStep {
	return &KeyringStep{
		id:     step.MustNewID("ghcli:keyring"),
		runner: runner,
		fs:     fs,
	}
}

// ID returns the step identifier.
func (s *KeyringStep) ID() step.ID {
	return s.id
}

// Describe returns the operator narration.
func (s *KeyringStep) Describe() string {
	return "Installing GitHub CLI signing key"
}

// Check reports whether the keyring file is already installed.
func (s *KeyringStep) Check(_ context.Context) (bool, error) {
	return s.fs.Exists(KeyringPath), nil
}

// Apply downloads the signing key into the keyring path.
func (s *KeyringStep) Apply(ctx context.Context) error {
	result, err := s.runner.Run(ctx, "curl", "-fsSL", "-o", KeyringPath, KeyringURL)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("download keyring failed: %s", strings.TrimSpace(result.Stderr))
	}

	// The keyring must be world-readable for apt's sandboxed fetcher.
	result, err = s.runner.Run(ctx, "chmod", "go+r", KeyringPath)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("chmod keyring failed: %s", strings.TrimSpace(result.Stderr))
	}
	return nil
}

// RepositoryStep writes the GitHub CLI apt sources entry.
type RepositoryStep struct {
	id step.ID
	fs ports.FileSystem
}

// NewRepositoryStep creates a new RepositoryStep.
func NewRepositoryStep(fs ports.FileSystem) *RepositoryStep {
	return &RepositoryStep{
		id: step.MustNewID("ghcli:repository"),
		fs: fs,
	}
}

// ID returns the step identifier.
func (s *RepositoryStep) ID() step.ID {
	return s.id
}

// Describe returns the operator narration.
func (s *RepositoryStep) Describe() string {
	return "Adding GitHub CLI apt repository"
}

// Check reports whether the sources entry already exists with the expected
// content.
func (s *RepositoryStep) Check(_ context.Context) (bool, error) {
	if !s.fs.Exists(SourcesPath) {
		return false, nil
	}
	data, err := s.fs.ReadFile(SourcesPath)
	if err != nil {
		return false, err
	}
	return string(data) == SourcesEntry, nil
}

// Apply writes the sources list entry.
func (s *RepositoryStep) Apply(_ context.Context) error {
	if err := s.fs.WriteFile(SourcesPath, []byte(SourcesEntry), 0644); err != nil {
		return fmt.Errorf("write sources entry: %w", err)
	}
	return nil
}

// InstallStep installs the gh package from the repository added above.
// It must be registered after KeyringStep and RepositoryStep.
type InstallStep struct {
	id     step.ID
	runner ports.CommandRunner
}

// NewInstallStep creates a new InstallStep.
func NewInstallStep(runner ports.CommandRunner) *InstallStep {
	return &InstallStep{
		id:     step.MustNewID("ghcli:install"),
		runner: runner,
	}
}

// ID returns the step identifier.
func (s *InstallStep) ID() step.ID {
	return s.id
}

// Describe returns the operator narration.
func (s *InstallStep) Describe() string {
	return "Installing GitHub CLI"
}

// Check reports whether gh is already installed.
func (s *InstallStep) Check(ctx context.Context) (bool, error) {
	result, err := s.runner.Run(ctx, "dpkg-query", "-W", "-f=${db:Status-Status}", "gh")
	if err != nil {
		return false, err
	}
	if !result.Success() {
		return false, nil
	}
	return strings.Contains(result.Stdout, "installed"), nil
}

// Apply refreshes the index for the newly added repository and installs gh.
func (s *InstallStep) Apply(ctx context.Context) error {
	result, err := s.runner.Run(ctx, "apt-get", "update")
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("apt-get update failed: %s", strings.TrimSpace(result.Stderr))
	}

	result, err = s.runner.Run(ctx, "apt-get", "install", "-y", "gh")
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("apt-get install gh failed: %s", strings.TrimSpace(result.Stderr))
	}
	return nil
}
