package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stackforge-dev/stackforge/internal/assets"
	"github.com/stackforge-dev/stackforge/internal/config"
	"github.com/stackforge-dev/stackforge/internal/template"
	"github.com/stackforge-dev/stackforge/pkg/models"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Show the template layers a stack resolves to",
	Long: `Show the template layers that would be applied for a stack selection
without writing anything. Takes the same stack flags as create.

Examples:
  stackforge templates --backend hono --database sqlite --orm drizzle
  stackforge templates --frontend next --frontend native --backend hono --auth`,
	RunE: runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	addStackFlags(templatesCmd)
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	cfg := config.NewDefaultConfig()
	cfg.ProjectName = "preview"
	if err := applyStackFlags(cmd, cfg); err != nil {
		return err
	}
	// The layer plan never depends on the runtime, so a dry run must not
	// demand one. Default it instead of rejecting the query.
	if cfg.Backend.HasServer() && cfg.Runtime == models.RuntimeNone {
		cfg.Runtime = models.RuntimeBun
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	resolver := template.NewResolver(assets.Corpus())
	layers, err := resolver.ResolveLayers(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LAYER\tSOURCE\tDEST\tPOLICY")
	for _, l := range layers {
		name := l.Name
		if l.Mandatory {
			name += " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, l.Source, l.Dest, l.Policy)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d layers (* mandatory)\n", len(layers))
	return nil
}
