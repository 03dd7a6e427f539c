package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/stackforge-dev/stackforge/internal/config"
	"github.com/stackforge-dev/stackforge/internal/core/git"
	"github.com/stackforge-dev/stackforge/internal/installer"
	"github.com/stackforge-dev/stackforge/internal/template"
)

// LayerObserver is notified before each layer materializes. The CLI wires
// a progress bar through it; headless runs wire nothing.
type LayerObserver func(name string, index, total int)

// Orchestrator drives a full generation run against a template corpus.
type Orchestrator struct {
	corpus    fs.FS
	renderer  *template.Renderer
	logger    *slog.Logger
	git       git.Initializer
	installer installer.Installer
	observe   LayerObserver
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// WithGit sets the version-control collaborator.
func WithGit(g git.Initializer) Option {
	return func(o *Orchestrator) { o.git = g }
}

// WithInstaller sets the dependency installer.
func WithInstaller(i installer.Installer) Option {
	return func(o *Orchestrator) { o.installer = i }
}

// WithLayerObserver sets the per-layer progress callback.
func WithLayerObserver(fn LayerObserver) Option {
	return func(o *Orchestrator) { o.observe = fn }
}

// NewOrchestrator creates an Orchestrator over the given corpus.
func NewOrchestrator(corpus fs.FS, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		corpus:   corpus,
		renderer: template.NewRenderer(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.logger = o.logger.With("module", "project")
	if o.git == nil {
		o.git = git.NewInitializer(o.logger)
	}
	if o.installer == nil {
		o.installer = installer.NewInstaller(o.logger)
	}
	return o
}

// Result aggregates the outcome of one generation run.
type Result struct {
	// ProjectRoot is the absolute path of the generated project.
	ProjectRoot string

	// Layers holds per-layer materialization outcomes in apply order.
	Layers []*template.MaterializeResult

	// Warnings lists non-fatal problems: optional layer failures, env or
	// artifact write issues, git and install errors.
	Warnings []string

	// ArtifactPath is where the config artifact was written, if it was.
	ArtifactPath string

	// GitInitialized reports whether a repository was created and committed.
	GitInitialized bool

	// Installed reports whether dependency installation succeeded.
	Installed bool

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Run generates a project from cfg. It validates the config, resolves the
// layer plan, materializes each layer in order, reconciles the root
// manifest and env files, records the config artifact, and finishes with
// git initialization and dependency installation.
//
// A mandatory layer failure aborts the run. Everything after
// materialization is best-effort: failures degrade to warnings because the
// generated tree is already usable.
func (o *Orchestrator) Run(ctx context.Context, cfg *config.ProjectConfig) (*Result, error) {
	start := time.Now()

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	projectRoot, err := o.targetDir(cfg)
	if err != nil {
		return nil, err
	}

	resolver := template.NewResolver(o.corpus)
	layers, err := resolver.ResolveLayers(cfg)
	if err != nil {
		return nil, err
	}

	o.logger.Info("generating project",
		"name", cfg.ProjectName,
		"root", projectRoot,
		"layers", len(layers))

	result := &Result{ProjectRoot: projectRoot}
	rctx := template.NewRenderContext(cfg)
	mat := template.NewMaterializer(o.corpus, o.renderer)

	for i, layer := range layers {
		if o.observe != nil {
			o.observe(layer.Name, i+1, len(layers))
		}

		res, err := mat.Materialize(ctx, layer, projectRoot, rctx)
		if err != nil {
			// Cancellation is not a per-layer condition; the remaining
			// layers and the post-generation steps would only fail the
			// same way.
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			if layer.Mandatory {
				return nil, &MandatoryLayerFailure{Layer: layer.Name, Err: err}
			}
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("layer %q skipped: %v", layer.Name, err))
			continue
		}

		result.Layers = append(result.Layers, res)

		if res.OK() {
			continue
		}
		if layer.Mandatory {
			var errs []error
			for _, f := range res.Failed {
				errs = append(errs, f)
			}
			return nil, &MandatoryLayerFailure{Layer: layer.Name, Err: errors.Join(errs...)}
		}
		for _, f := range res.Failed {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("layer %q: %v", layer.Name, f))
		}
	}

	if err := reconcileManifest(projectRoot, cfg); err != nil {
		return nil, err
	}
	if _, err := reconcileEnv(projectRoot, cfg); err != nil {
		result.Warnings = append(result.Warnings, err.Error())
	}

	if path, err := config.SaveArtifact(cfg, projectRoot); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("config artifact not written: %v", err))
	} else {
		result.ArtifactPath = path
	}

	o.finish(ctx, cfg, projectRoot, result)

	result.Elapsed = time.Since(start)
	o.logger.Info("project generated",
		"name", cfg.ProjectName,
		"elapsed", result.Elapsed,
		"warnings", len(result.Warnings))
	return result, nil
}

// finish runs the post-generation steps: git init plus initial commit, then
// dependency installation. Both degrade to warnings on failure.
func (o *Orchestrator) finish(ctx context.Context, cfg *config.ProjectConfig, projectRoot string, result *Result) {
	if cfg.Git {
		if err := o.initRepository(ctx, projectRoot); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("git initialization failed: %v", err))
		} else {
			result.GitInitialized = true
		}
	}

	if cfg.Install {
		if err := o.installer.Install(ctx, projectRoot, cfg.PackageManager); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("dependency installation failed: %v", err))
		} else {
			result.Installed = true
		}
	}
}

func (o *Orchestrator) initRepository(ctx context.Context, projectRoot string) error {
	if err := o.git.Init(ctx, projectRoot); err != nil {
		return err
	}
	return o.git.CommitAll(ctx, projectRoot, "initial commit")
}

// targetDir resolves and prepares the project root. An existing directory
// is acceptable only when empty.
func (o *Orchestrator) targetDir(cfg *config.ProjectConfig) (string, error) {
	root := cfg.ProjectRoot
	if root == "" {
		root = cfg.ProjectName
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("project: resolve target dir: %w", err)
	}

	entries, err := os.ReadDir(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return "", fmt.Errorf("project: create target dir: %w", err)
		}
	case err != nil:
		return "", fmt.Errorf("project: inspect target dir: %w", err)
	case len(entries) > 0:
		return "", fmt.Errorf("%w: %s", ErrProjectDirNotEmpty, abs)
	}

	return abs, nil
}
