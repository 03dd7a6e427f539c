package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/stackforge-dev/stackforge/internal/config"
	"github.com/stackforge-dev/stackforge/pkg/models"
)

// RenderSummary renders the post-generation next-steps guide. The markdown
// is passed through glamour when the terminal supports it; on any render
// failure the raw markdown is returned so the user always sees the steps.
func RenderSummary(theme *Theme, cfg *config.ProjectConfig) string {
	md := summaryMarkdown(cfg)
	if theme.NoColor {
		return md
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// summaryMarkdown builds the next-steps document for a generated project.
func summaryMarkdown(cfg *config.ProjectConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s is ready\n\n", cfg.ProjectName)

	b.WriteString("## Next steps\n\n")
	fmt.Fprintf(&b, "```sh\ncd %s\n", cfg.ProjectName)
	if !cfg.Install {
		fmt.Fprintf(&b, "%s install\n", cfg.PackageManager)
	}
	fmt.Fprintf(&b, "%s dev\n```\n\n", cfg.PackageManager.RunCommand())

	if steps := stackNotes(cfg); len(steps) > 0 {
		b.WriteString("## Stack notes\n\n")
		for _, s := range steps {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Your selections are recorded in `%s`.\n", "stackforge.yaml")
	return b.String()
}

// stackNotes returns per-selection follow-up reminders.
func stackNotes(cfg *config.ProjectConfig) []string {
	var notes []string
	run := cfg.PackageManager.RunCommand()

	if cfg.HasDatabase() {
		notes = append(notes, fmt.Sprintf("Apply the database schema with `%s db:push` once your connection string is set in `.env`.", run))
	}
	switch cfg.DBSetup {
	case models.DBSetupTurso:
		notes = append(notes, "Create a Turso database and copy its URL and auth token into `.env`.")
	case models.DBSetupNeon:
		notes = append(notes, "Create a Neon project and copy its connection string into `.env`.")
	case models.DBSetupSupabase:
		notes = append(notes, "Create a Supabase project and copy its connection string into `.env`.")
	case models.DBSetupD1:
		notes = append(notes, "Provision a Cloudflare D1 database and record its binding in `wrangler.jsonc`.")
	}
	if cfg.Auth {
		notes = append(notes, "Set `BETTER_AUTH_SECRET` in `apps/server/.env` before signing in.")
	}
	if cfg.Backend == models.BackendConvex {
		notes = append(notes, fmt.Sprintf("Run `%s dev:setup` to link your Convex deployment.", run))
	}
	if cfg.Deployment == models.DeploymentWrangler {
		notes = append(notes, fmt.Sprintf("Deploy with `%s deploy` after authenticating wrangler.", run))
	}
	if !cfg.Git {
		notes = append(notes, "Initialize version control with `git init` when you are ready.")
	}
	return notes
}
