package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/stackforge-dev/stackforge/internal/assets"
	"github.com/stackforge-dev/stackforge/internal/cli/wizard"
	"github.com/stackforge-dev/stackforge/internal/config"
	"github.com/stackforge-dev/stackforge/internal/core/project"
	"github.com/stackforge-dev/stackforge/internal/ui"
	"github.com/stackforge-dev/stackforge/internal/update"
	"github.com/stackforge-dev/stackforge/pkg/models"
	"github.com/stackforge-dev/stackforge/pkg/version"
)

var createCmd = &cobra.Command{
	Use:   "create [project-name]",
	Short: "Create a new project",
	Long: `Create a new full-stack TypeScript project.

In a terminal the stack is chosen through an interactive wizard; any axis
already pinned by a flag is skipped. Without a terminal, or with --yes,
the wizard is skipped entirely and flags plus defaults decide the stack.

Examples:
  stackforge create my-app
  stackforge create my-app --yes
  stackforge create my-app --frontend next --backend hono --database sqlite --orm drizzle
  stackforge create my-app --backend convex --frontend react`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
	addStackFlags(createCmd)

	createCmd.Flags().BoolP("yes", "y", false, "Skip the wizard; use the recommended stack plus any flags")
	createCmd.Flags().Bool("git", true, "Initialize a git repository")
	createCmd.Flags().Bool("install", true, "Install dependencies after generation")
}

// addStackFlags registers the stack-selection flags shared by create and
// templates.
func addStackFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("frontend", nil, "Frontends: next, react, svelte, native")
	cmd.Flags().String("backend", "", "Backend: hono, express, fastify, convex, none")
	cmd.Flags().String("runtime", "", "Runtime: bun, node")
	cmd.Flags().String("database", "", "Database: sqlite, postgres, mysql, mongodb, none")
	cmd.Flags().String("orm", "", "ORM: drizzle, prisma, mongoose, none")
	cmd.Flags().String("db-setup", "", "Database hosting: turso, neon, supabase, d1, atlas, none")
	cmd.Flags().Bool("auth", false, "Include authentication")
	cmd.Flags().String("api", "", "API layer: trpc, orpc, none")
	cmd.Flags().StringSlice("addons", nil, "Addons: pwa, biome, husky")
	cmd.Flags().StringSlice("examples", nil, "Examples: todo, ai")
	cmd.Flags().String("package-manager", "", "Package manager: npm, pnpm, bun")
	cmd.Flags().String("deploy", "", "Web deployment: wrangler, none")
}

// flagForQuestion maps wizard question IDs to their flag names.
var flagForQuestion = map[string]string{
	"frontends":       "frontend",
	"backend":         "backend",
	"runtime":         "runtime",
	"database":        "database",
	"orm":             "orm",
	"db_setup":        "db-setup",
	"auth":            "auth",
	"api":             "api",
	"addons":          "addons",
	"examples":        "examples",
	"package_manager": "package-manager",
	"deployment":      "deploy",
	"git":             "git",
	"install":         "install",
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := slog.Default()

	yes, _ := cmd.Flags().GetBool("yes")

	cfg := config.NewDefaultConfig()
	if yes {
		cfg = config.NewRecommendedConfig()
	}
	if len(args) == 1 {
		cfg.ProjectName = args[0]
	}

	if err := applyStackFlags(cmd, cfg); err != nil {
		return err
	}

	hm := ui.NewHeadlessManager()
	theme := ui.NewTheme(ui.ThemeConfig{NoColor: flagNoColor})

	if !yes && !hm.IsHeadless() {
		if err := runWizard(cmd, cfg); err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			return err
		}
	}
	if cfg.ProjectName == "" {
		cfg.ProjectName = "my-app"
	}
	cfg.Version = version.GetVersion()
	cfg.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	progress := ui.NewProgress(theme, hm)
	var bar ui.ProgressBar

	orch := project.NewOrchestrator(assets.Corpus(),
		project.WithLogger(logger),
		project.WithLayerObserver(func(name string, index, total int) {
			if bar == nil {
				bar = progress.Start(name, total)
				return
			}
			bar.Increment(1)
			bar.SetTitle(name)
		}),
	)

	result, err := orch.Run(ctx, cfg)
	if bar != nil {
		bar.Done()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, w := range result.Warnings {
		fmt.Fprintln(out, theme.WarnStyle().Render("warning: "+w))
	}
	fmt.Fprint(out, ui.RenderSummary(theme, cfg))

	// Upgrade nags are for interactive sessions; CI logs stay clean.
	if !hm.IsHeadless() {
		printUpdateNotice(ctx, out, theme, logger)
	}
	return nil
}

// runWizard asks every question not already pinned by an explicit flag.
func runWizard(cmd *cobra.Command, cfg *config.ProjectConfig) error {
	defaultName := cfg.ProjectName
	if defaultName == "" {
		if cwd, err := os.Getwd(); err == nil {
			defaultName = filepath.Base(cwd)
		}
	}

	all := wizard.DefaultQuestions(defaultName)
	questions := make([]wizard.Question, 0, len(all))
	for _, q := range all {
		if q.ID == "project_name" && cfg.ProjectName != "" {
			continue
		}
		if flag, ok := flagForQuestion[q.ID]; ok && cmd.Flags().Changed(flag) {
			continue
		}
		questions = append(questions, q)
	}

	return wizard.Run(questions, cfg)
}

// applyStackFlags overrides cfg with every stack flag the user set.
func applyStackFlags(cmd *cobra.Command, cfg *config.ProjectConfig) error {
	flags := cmd.Flags()

	if flags.Changed("frontend") {
		values, _ := flags.GetStringSlice("frontend")
		cfg.Frontends = cfg.Frontends[:0]
		for _, v := range values {
			if v == "none" {
				continue
			}
			f, err := models.ParseFrontend(v)
			if err != nil {
				return err
			}
			cfg.Frontends = append(cfg.Frontends, f)
		}
	}
	if flags.Changed("backend") {
		v, _ := flags.GetString("backend")
		b, err := models.ParseBackend(v)
		if err != nil {
			return err
		}
		cfg.Backend = b
	}
	if flags.Changed("runtime") {
		v, _ := flags.GetString("runtime")
		r, err := models.ParseRuntime(v)
		if err != nil {
			return err
		}
		cfg.Runtime = r
	}
	if flags.Changed("database") {
		v, _ := flags.GetString("database")
		d, err := models.ParseDatabase(v)
		if err != nil {
			return err
		}
		cfg.Database = d
	}
	if flags.Changed("orm") {
		v, _ := flags.GetString("orm")
		o, err := models.ParseORM(v)
		if err != nil {
			return err
		}
		cfg.ORM = o
	}
	if flags.Changed("db-setup") {
		v, _ := flags.GetString("db-setup")
		s, err := models.ParseDBSetup(v)
		if err != nil {
			return err
		}
		cfg.DBSetup = s
	}
	if flags.Changed("auth") {
		cfg.Auth, _ = flags.GetBool("auth")
	}
	if flags.Changed("api") {
		v, _ := flags.GetString("api")
		a, err := models.ParseAPI(v)
		if err != nil {
			return err
		}
		cfg.API = a
	}
	if flags.Changed("addons") {
		values, _ := flags.GetStringSlice("addons")
		cfg.Addons = cfg.Addons[:0]
		for _, v := range values {
			a, err := models.ParseAddon(v)
			if err != nil {
				return err
			}
			cfg.Addons = append(cfg.Addons, a)
		}
	}
	if flags.Changed("examples") {
		values, _ := flags.GetStringSlice("examples")
		cfg.Examples = cfg.Examples[:0]
		for _, v := range values {
			e, err := models.ParseExample(v)
			if err != nil {
				return err
			}
			cfg.Examples = append(cfg.Examples, e)
		}
	}
	if flags.Changed("package-manager") {
		v, _ := flags.GetString("package-manager")
		pm, err := models.ParsePackageManager(v)
		if err != nil {
			return err
		}
		cfg.PackageManager = pm
	}
	if flags.Changed("deploy") {
		v, _ := flags.GetString("deploy")
		d, err := models.ParseDeployment(v)
		if err != nil {
			return err
		}
		cfg.Deployment = d
	}
	if flags.Changed("git") {
		cfg.Git, _ = flags.GetBool("git")
	}
	if flags.Changed("install") {
		cfg.Install, _ = flags.GetBool("install")
	}

	return nil
}

// printUpdateNotice prints a one-line upgrade hint when a newer release
// exists. Bounded and best-effort: it must never delay or fail a create.
func printUpdateNotice(ctx context.Context, out io.Writer, theme *ui.Theme, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	notifier := update.NewNotifier(update.NewChecker(update.DefaultAPIURL, nil), logger)
	if info := notifier.Notice(ctx, version.GetVersion()); info != nil {
		line := fmt.Sprintf("A new version of stackforge is available: %s (current %s)",
			info.Version, version.GetVersion())
		fmt.Fprintln(out, theme.MutedStyle().Render(line))
	}
}
