package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "hostprep",
	Short: "Idempotent server provisioning",
	Long: `Hostprep converges a host onto a declarative manifest.

Every provisioning step carries a completion check and an idempotent
apply action: steps whose outcome is already in place are skipped, so
the tool can be re-run safely at any time.`,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// printError prints an error message to stderr.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", err)
}
