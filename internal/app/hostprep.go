// Package app provides the main application logic for hostprep.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/hostprep/hostprep/internal/adapters/command"
	"github.com/hostprep/hostprep/internal/adapters/filesystem"
	"github.com/hostprep/hostprep/internal/adapters/input"
	"github.com/hostprep/hostprep/internal/adapters/privilege"
	"github.com/hostprep/hostprep/internal/adapters/reporting"
	"github.com/hostprep/hostprep/internal/domain/config"
	"github.com/hostprep/hostprep/internal/domain/run"
	"github.com/hostprep/hostprep/internal/domain/step"
	"github.com/hostprep/hostprep/internal/ports"
	"github.com/hostprep/hostprep/internal/provider/apt"
	"github.com/hostprep/hostprep/internal/provider/authkeys"
	"github.com/hostprep/hostprep/internal/provider/docker"
	"github.com/hostprep/hostprep/internal/provider/ghcli"
	"github.com/hostprep/hostprep/internal/provider/sshd"
)

// Hostprep is the main application orchestrator.
type Hostprep struct {
	loader    *config.Loader
	providers []step.Provider
	priv      ports.Privilege
	logger    ports.Logger
	out       io.Writer
}

// New creates a Hostprep wired to the real host: exec-based commands, the
// local filesystem, stdin prompts, and the process's own privilege.
func New(out io.Writer) *Hostprep {
	runner := command.NewRealRunner()
	fs := filesystem.NewRealFileSystem()
	reader := input.NewStdinReader()

	return &Hostprep{
		loader: config.NewLoader(),
		providers: []step.Provider{
			apt.NewProvider(runner, fs),
			ghcli.NewProvider(runner, fs),
			docker.NewProvider(runner),
			sshd.NewProvider(runner, fs),
			authkeys.NewProvider(reader, fs, nil),
		},
		priv: privilege.NewEUIDChecker(),
		out:  out,
	}
}

// WithProviders replaces the provider set; registration order is execution
// order.
func (h *Hostprep) WithProviders(providers ...step.Provider) *Hostprep {
	h.providers = providers
	return h
}

// WithPrivilege replaces the privilege check.
func (h *Hostprep) WithPrivilege(p ports.Privilege) *Hostprep {
	h.priv = p
	return h
}

// WithLogger sets the structured logger.
func (h *Hostprep) WithLogger(l ports.Logger) *Hostprep {
	h.logger = l
	return h
}

// Compile loads the manifest and compiles every provider's section into the
// ordered step registry. Duplicate step names fail here, before any step
// runs.
func (h *Hostprep) Compile(manifestPath string) (*step.Registry, error) {
	manifest, err := h.loader.Load(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}

	registry := step.NewRegistry()

	for _, provider := range h.providers {
		steps, err := provider.Compile(manifest.GetSection(provider.Name()))
		if err != nil {
			return nil, fmt.Errorf("provider %q: %w", provider.Name(), err)
		}
		for _, s := range steps {
			if err := registry.Register(s); err != nil {
				return nil, fmt.Errorf("provider %q: %w", provider.Name(), err)
			}
		}
	}

	return registry, nil
}

// Apply compiles the manifest and executes the full step sequence,
// streaming progress to the output writer. The report is returned even when
// degraded; only the privilege precondition produces an error.
func (h *Hostprep) Apply(ctx context.Context, manifestPath string) (*run.Report, error) {
	registry, err := h.Compile(manifestPath)
	if err != nil {
		return nil, err
	}

	reporter := reporting.NewConsoleReporterTo(h.out)
	runner := run.NewRunner().
		WithPrivilege(h.priv).
		WithReporter(reporter).
		WithLogger(h.logger)

	report, err := runner.Run(ctx, registry)
	if err != nil {
		return report, err
	}

	reporter.Summary(report)
	return report, nil
}

// Plan compiles the manifest and runs only the completion checks, printing
// which steps would apply. No apply action is ever invoked. Returns the
// number of steps that need to run.
func (h *Hostprep) Plan(ctx context.Context, manifestPath string) (int, error) {
	registry, err := h.Compile(manifestPath)
	if err != nil {
		return 0, err
	}

	needed := 0
	for _, s := range registry.Steps() {
		satisfied, err := s.Check(ctx)
		switch {
		case err != nil:
			needed++
			h.printf("  ? %s (check failed: %v)\n", s.ID(), err)
		case satisfied:
			h.printf("  ✓ %s\n", s.ID())
		default:
			needed++
			h.printf("  + %s\n", s.ID())
		}
	}

	if needed == 0 {
		h.printf("\nNothing to do. The host matches the manifest.\n")
	} else {
		h.printf("\n%d step(s) would apply. Run 'hostprep apply' to execute.\n", needed)
	}

	return needed, nil
}

// printf writes to the output writer, ignoring errors.
func (h *Hostprep) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(h.out, format, args...)
}
