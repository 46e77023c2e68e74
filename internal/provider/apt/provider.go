package apt

import (
	"fmt"

	"github.com/hostprep/hostprep/internal/domain/step"
	"github.com/hostprep/hostprep/internal/ports"
	"github.com/hostprep/hostprep/internal/validation"
)

// Provider implements the step.Provider interface for apt.
type Provider struct {
	runner ports.CommandRunner
	fs     ports.FileSystem
}

// NewProvider creates a new apt provider.
func NewProvider(runner ports.CommandRunner, fs ports.FileSystem) *Provider {
	return &Provider{runner: runner, fs: fs}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "apt"
}

// Compile transforms apt configuration into executable steps.
// The index refresh step, when enabled, always precedes package steps.
func (p *Provider) Compile(section map[string]interface{}) ([]step.Step, error) {
	if section == nil {
		return nil, nil
	}

	cfg, err := ParseConfig(section)
	if err != nil {
		return nil, err
	}

	steps := make([]step.Step, 0, len(cfg.Packages)+1)

	if cfg.Update {
		steps = append(steps, NewUpdateStep(cfg.MaxAge, p.runner, p.fs))
	}

	for _, pkg := range cfg.Packages {
		if err := validation.ValidatePackageName(pkg); err != nil {
			return nil, fmt.Errorf("package %q: %w", pkg, err)
		}
		steps = append(steps, NewPackageStep(pkg, p.runner))
	}

	return steps, nil
}

// Ensure Provider implements step.Provider.
var _ step.Provider = (*Provider)(nil)
