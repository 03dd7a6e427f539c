package ui

import (
	"strings"
	"testing"

	"github.com/stackforge-dev/stackforge/internal/config"
	"github.com/stackforge-dev/stackforge/pkg/models"
)

func recommended(name string) *config.ProjectConfig {
	cfg := config.NewRecommendedConfig()
	cfg.ProjectName = name
	return cfg
}

func bare(name string) *config.ProjectConfig {
	cfg := config.NewDefaultConfig()
	cfg.ProjectName = name
	return cfg
}

func TestSummaryMarkdown(t *testing.T) {
	t.Run("contains_next_steps", func(t *testing.T) {
		cfg := recommended("my-app")
		md := summaryMarkdown(cfg)

		if !strings.Contains(md, "# my-app is ready") {
			t.Errorf("missing title, got %q", md)
		}
		if !strings.Contains(md, "cd my-app") {
			t.Error("missing cd step")
		}
		if !strings.Contains(md, "dev") {
			t.Error("missing dev command")
		}
		if !strings.Contains(md, "stackforge.yaml") {
			t.Error("missing artifact pointer")
		}
	})

	t.Run("install_step_only_when_skipped", func(t *testing.T) {
		cfg := recommended("my-app")
		cfg.Install = false
		if !strings.Contains(summaryMarkdown(cfg), "bun install") {
			t.Error("expected install step when install was skipped")
		}

		cfg.Install = true
		if strings.Contains(summaryMarkdown(cfg), "bun install\n") {
			t.Error("expected no install step when dependencies were installed")
		}
	})

	t.Run("database_note", func(t *testing.T) {
		cfg := recommended("my-app")
		if !strings.Contains(summaryMarkdown(cfg), "db:push") {
			t.Error("expected schema push note for database stack")
		}
	})

	t.Run("auth_note", func(t *testing.T) {
		cfg := recommended("my-app")
		cfg.Auth = true
		if !strings.Contains(summaryMarkdown(cfg), "BETTER_AUTH_SECRET") {
			t.Error("expected auth secret note")
		}
	})

	t.Run("minimal_stack_has_no_stack_notes", func(t *testing.T) {
		cfg := bare("bare")
		cfg.Git = true
		md := summaryMarkdown(cfg)
		if strings.Contains(md, "## Stack notes") {
			t.Errorf("expected no stack notes for bare project, got %q", md)
		}
	})

	t.Run("convex_setup_note", func(t *testing.T) {
		cfg := bare("cvx")
		cfg.Backend = models.BackendConvex
		cfg.Git = true
		if !strings.Contains(summaryMarkdown(cfg), "dev:setup") {
			t.Error("expected convex setup note")
		}
	})
}

func TestRenderSummary(t *testing.T) {
	t.Run("no_color_returns_raw_markdown", func(t *testing.T) {
		cfg := recommended("my-app")
		out := RenderSummary(testTheme(), cfg)
		if !strings.Contains(out, "# my-app is ready") {
			t.Errorf("expected raw markdown with NoColor, got %q", out)
		}
	})
}
