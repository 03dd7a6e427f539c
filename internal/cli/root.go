// Package cli implements the stackforge command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/stackforge-dev/stackforge/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "stackforge",
	Short: "Scaffold full-stack TypeScript projects",
	Long: `stackforge generates ready-to-run TypeScript monorepos from a composable
template corpus.

Pick a frontend, backend, database, ORM, auth, and tooling; stackforge
resolves the selection into template layers, renders them into a workspace
project, and finishes with git initialization and dependency installation.`,
	Version: version.GetVersion(),
}

var (
	flagVerbose bool
	flagNoColor bool
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("stackforge %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	cobra.OnInitialize(setupLogging)
}

// setupLogging wires the process-wide slog default to a terminal-friendly
// handler. Debug output is opt-in; timestamps only appear with it.
func setupLogging() {
	level := log.WarnLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: flagVerbose,
	})
	slog.SetDefault(slog.New(handler))
}
