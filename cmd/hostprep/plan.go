package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show which steps would apply",
	Long: `Plan compiles the manifest and runs only the completion checks,
printing which steps are already satisfied and which would run.
No changes are made to the host.`,
	RunE: runPlan,
}

var planConfigPath string

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVarP(&planConfigPath, "config", "c", "hostprep.yaml", "Path to the manifest")
}

func runPlan(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	hostprep := newHostprep(os.Stdout)

	_, err := hostprep.Plan(ctx, planConfigPath)
	return err
}
