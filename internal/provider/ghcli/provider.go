// Package ghcli provides the GitHub CLI installation provider.
package ghcli

import (
	"github.com/hostprep/hostprep/internal/domain/step"
	"github.com/hostprep/hostprep/internal/ports"
)

// Provider implements the step.Provider interface for the GitHub CLI.
type Provider struct {
	runner ports.CommandRunner
	fs     ports.FileSystem
}

// NewProvider creates a new GitHub CLI provider.
func NewProvider(runner ports.CommandRunner, fs ports.FileSystem) *Provider {
	return &Provider{runner: runner, fs: fs}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "github-cli"
}

// Compile transforms github-cli configuration into executable steps.
// Keyring and repository steps precede the install step; linear declaration
// order is the only ordering primitive.
func (p *Provider) Compile(section map[string]interface{}) ([]step.Step, error) {
	if section == nil {
		return nil, nil
	}

	cfg, err := ParseConfig(section)
	if err != nil {
		return nil, err
	}

	if !cfg.Install {
		return nil, nil
	}

	return []step.Step{
		NewKeyringStep(p.runner, p.fs),
		NewRepositoryStep(p.fs),
		NewInstallStep(p.runner),
	}, nil
}

// Ensure Provider implements step.Provider.
var _ step.Provider = (*Provider)(nil)
