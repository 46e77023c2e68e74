package authkeys

import (
	"github.com/hostprep/hostprep/internal/domain/step"
	"github.com/hostprep/hostprep/internal/ports"
)

// Provider implements the step.Provider interface for authorized keys.
type Provider struct {
	reader ports.KeyReader
	fs     ports.FileSystem
	logger ports.Logger
}

// NewProvider creates a new authorized keys provider.
func NewProvider(reader ports.KeyReader, fs ports.FileSystem, logger ports.Logger) *Provider {
	return &Provider{reader: reader, fs: fs, logger: logger}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "authorized_keys"
}

// Compile transforms authorized_keys configuration into executable steps:
// one step per manifest key, then the interactive prompt step when enabled.
func (p *Provider) Compile(section map[string]interface{}) ([]step.Step, error) {
	if section == nil {
		return nil, nil
	}

	cfg, err := ParseConfig(section)
	if err != nil {
		return nil, err
	}

	steps := make([]step.Step, 0, len(cfg.Keys)+1)

	for i, key := range cfg.Keys {
		steps = append(steps, NewKeyStep(cfg.Path, i+1, key, p.fs, p.logger))
	}

	if cfg.Prompt {
		steps = append(steps, NewPromptStep(cfg.Path, p.reader, p.fs, p.logger))
	}

	return steps, nil
}

// Ensure Provider implements step.Provider.
var _ step.Provider = (*Provider)(nil)
