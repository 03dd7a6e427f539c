package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/stackforge-dev/stackforge/internal/cli/wizard"
	"github.com/stackforge-dev/stackforge/internal/config"
	"github.com/stackforge-dev/stackforge/pkg/models"
)

// newCreateTestCmd builds a fresh command with create's flag set so tests
// never share Changed state through the package-level command.
func newCreateTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "create", Args: cobra.MaximumNArgs(1), RunE: runCreate}
	addStackFlags(cmd)
	cmd.Flags().BoolP("yes", "y", false, "")
	cmd.Flags().Bool("git", true, "")
	cmd.Flags().Bool("install", true, "")
	return cmd
}

func TestApplyStackFlags(t *testing.T) {
	t.Run("unchanged_flags_leave_config_alone", func(t *testing.T) {
		cmd := newCreateTestCmd()
		cfg := config.NewRecommendedConfig()

		if err := applyStackFlags(cmd, cfg); err != nil {
			t.Fatalf("applyStackFlags() error = %v", err)
		}
		if cfg.Backend != models.BackendHono {
			t.Errorf("backend = %v, want untouched hono", cfg.Backend)
		}
	})

	t.Run("changed_flags_override", func(t *testing.T) {
		cmd := newCreateTestCmd()
		for flag, value := range map[string]string{
			"frontend":        "react,native",
			"backend":         "fastify",
			"runtime":         "node",
			"database":        "postgres",
			"orm":             "prisma",
			"db-setup":        "neon",
			"api":             "orpc",
			"addons":          "biome,husky",
			"package-manager": "pnpm",
			"deploy":          "wrangler",
		} {
			if err := cmd.Flags().Set(flag, value); err != nil {
				t.Fatalf("set %s: %v", flag, err)
			}
		}

		cfg := config.NewDefaultConfig()
		if err := applyStackFlags(cmd, cfg); err != nil {
			t.Fatalf("applyStackFlags() error = %v", err)
		}

		if len(cfg.Frontends) != 2 || cfg.Backend != models.BackendFastify ||
			cfg.Runtime != models.RuntimeNode || cfg.Database != models.DatabasePostgres ||
			cfg.ORM != models.ORMPrisma || cfg.DBSetup != models.DBSetupNeon ||
			cfg.API != models.APIORPC || len(cfg.Addons) != 2 ||
			cfg.PackageManager != models.PackageManagerPnpm ||
			cfg.Deployment != models.DeploymentWrangler {
			t.Errorf("config not overridden as expected: %+v", cfg)
		}
	})

	t.Run("invalid_value_rejected", func(t *testing.T) {
		cmd := newCreateTestCmd()
		if err := cmd.Flags().Set("backend", "rails"); err != nil {
			t.Fatal(err)
		}
		if err := applyStackFlags(cmd, config.NewDefaultConfig()); err == nil {
			t.Error("expected error for unknown backend")
		}
	})

	t.Run("frontend_none_clears_selection", func(t *testing.T) {
		cmd := newCreateTestCmd()
		if err := cmd.Flags().Set("frontend", "none"); err != nil {
			t.Fatal(err)
		}
		cfg := config.NewRecommendedConfig()
		if err := applyStackFlags(cmd, cfg); err != nil {
			t.Fatal(err)
		}
		if len(cfg.Frontends) != 0 {
			t.Errorf("frontends = %v, want empty", cfg.Frontends)
		}
	})
}

func TestFlagForQuestion(t *testing.T) {
	cmd := newCreateTestCmd()
	questions := wizard.DefaultQuestions("demo")

	for id, flag := range flagForQuestion {
		if wizard.QuestionByID(questions, id) == nil {
			t.Errorf("flagForQuestion key %q is not a wizard question", id)
		}
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("flagForQuestion value %q is not a registered flag", flag)
		}
	}
}

func TestCreateHeadless(t *testing.T) {
	t.Run("generates_minimal_project", func(t *testing.T) {
		dir := t.TempDir()
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(cwd) })

		cmd := newCreateTestCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"demo", "--git=false", "--install=false"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("create failed: %v\noutput:\n%s", err, out.String())
		}

		for _, name := range []string{"package.json", ".gitignore", "stackforge.yaml"} {
			if _, err := os.Stat(filepath.Join(dir, "demo", name)); err != nil {
				t.Errorf("expected %s in generated project: %v", name, err)
			}
		}
		if !strings.Contains(out.String(), "demo is ready") {
			t.Errorf("expected summary in output, got:\n%s", out.String())
		}
	})

	t.Run("existing_directory_fails", func(t *testing.T) {
		dir := t.TempDir()
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(cwd) })

		if err := os.MkdirAll(filepath.Join(dir, "taken"), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "taken", "file"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		cmd := newCreateTestCmd()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{"taken", "--git=false", "--install=false"})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for non-empty target directory")
		}
	})
}
