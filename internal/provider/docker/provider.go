package docker

import (
	"github.com/hostprep/hostprep/internal/domain/step"
	"github.com/hostprep/hostprep/internal/ports"
)

// Provider implements the step.Provider interface for Docker.
type Provider struct {
	runner ports.CommandRunner
}

// NewProvider creates a new Docker provider.
func NewProvider(runner ports.CommandRunner) *Provider {
	return &Provider{runner: runner}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "docker"
}

// Compile transforms docker configuration into executable steps.
// The engine install precedes the service enable.
func (p *Provider) Compile(section map[string]interface{}) ([]step.Step, error) {
	if section == nil {
		return nil, nil
	}

	cfg, err := ParseConfig(section)
	if err != nil {
		return nil, err
	}

	steps := make([]step.Step, 0, 2)

	if cfg.Install {
		steps = append(steps, NewEngineStep(cfg.Package, p.runner))
	}
	if cfg.EnableService {
		steps = append(steps, NewServiceStep(p.runner))
	}

	return steps, nil
}

// Ensure Provider implements step.Provider.
var _ step.Provider = (*Provider)(nil)
