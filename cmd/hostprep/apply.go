package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostprep/hostprep/internal/adapters/logging"
	"github.com/hostprep/hostprep/internal/app"
	"github.com/hostprep/hostprep/internal/domain/run"
	"github.com/hostprep/hostprep/internal/ports"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Converge the host onto the manifest",
	Long: `Apply compiles the manifest into provisioning steps and executes them
in order.

Each step first runs its completion check: steps whose outcome is
already in place are skipped. A failing step is recorded and the
sequence continues, so one broken step never blocks the rest of the
run. The exit status is non-zero when any step failed.`,
	RunE: runApply,
}

var applyConfigPath string

// hostprepClient is the slice of app.Hostprep the commands use, kept as an
// interface so tests can substitute a fake.
type hostprepClient interface {
	Apply(ctx context.Context, manifestPath string) (*run.Report, error)
	Plan(ctx context.Context, manifestPath string) (int, error)
}

var newHostprep = func(out io.Writer) hostprepClient {
	h := app.New(out)
	if verbose {
		h = h.WithLogger(logging.NewConsoleLogger(logging.WithLevel(ports.LevelDebug)))
	}
	return h
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVarP(&applyConfigPath, "config", "c", "hostprep.yaml", "Path to the manifest")
}

func runApply(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	hostprep := newHostprep(os.Stdout)

	report, err := hostprep.Apply(ctx, applyConfigPath)
	if err != nil {
		if errors.Is(err, run.ErrInsufficientPrivilege) {
			return fmt.Errorf("%w (re-run with sudo)", err)
		}
		return err
	}

	if !report.Clean() {
		return fmt.Errorf("some steps failed")
	}
	return nil
}
