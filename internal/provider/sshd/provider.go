package sshd

import (
	"fmt"

	"github.com/hostprep/hostprep/internal/domain/step"
	"github.com/hostprep/hostprep/internal/ports"
	"github.com/hostprep/hostprep/internal/validation"
)

// Provider implements the step.Provider interface for sshd configuration.
type Provider struct {
	runner ports.CommandRunner
	fs     ports.FileSystem
}

// NewProvider creates a new sshd provider.
func NewProvider(runner ports.CommandRunner, fs ports.FileSystem) *Provider {
	return &Provider{runner: runner, fs: fs}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "sshd"
}

// Compile transforms sshd configuration into executable steps: one step per
// directive in sorted key order, then the restart step when enabled.
func (p *Provider) Compile(section map[string]interface{}) ([]step.Step, error) {
	if section == nil {
		return nil, nil
	}

	cfg, err := ParseConfig(section)
	if err != nil {
		return nil, err
	}

	steps := make([]step.Step, 0, len(cfg.Directives)+1)

	for _, key := range cfg.DirectiveKeys() {
		if err := validation.ValidateDirectiveName(key); err != nil {
			return nil, fmt.Errorf("directive %q: %w", key, err)
		}
		steps = append(steps, NewDirectiveStep(cfg.Path, key, cfg.Directives[key], p.fs))
	}

	if cfg.Restart && len(steps) > 0 {
		steps = append(steps, NewRestartStep(cfg.Service, p.runner))
	}

	return steps, nil
}

// Ensure Provider implements step.Provider.
var _ step.Provider = (*Provider)(nil)
