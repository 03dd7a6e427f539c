package template

import (
	"github.com/stackforge-dev/stackforge/internal/config"
)

// RenderContext is the flat key/value mapping a template is rendered
// against. Keys are unique; lookup is by key only. List-valued entries
// ([]string) feed the contains helper and stringify as comma-joined.
type RenderContext map[string]any

// Lookup returns the value for a key and whether it exists.
func (c RenderContext) Lookup(key string) (any, bool) {
	v, ok := c[key]
	return v, ok
}

// ContextOption adds caller-supplied values to a RenderContext.
type ContextOption func(RenderContext)

// WithValue sets one extra key (e.g. a generated secret).
func WithValue(key string, value any) ContextOption {
	return func(c RenderContext) {
		c[key] = value
	}
}

// NewRenderContext projects a validated ProjectConfig into the flat
// key space templates substitute from, then applies any options. The
// projection is explicit and closed: templates can only see what is
// enumerated here.
func NewRenderContext(cfg *config.ProjectConfig, opts ...ContextOption) RenderContext {
	frontends := make([]string, len(cfg.Frontends))
	for i, f := range cfg.Frontends {
		frontends[i] = string(f)
	}
	addons := make([]string, len(cfg.Addons))
	for i, a := range cfg.Addons {
		addons[i] = string(a)
	}
	examples := make([]string, len(cfg.Examples))
	for i, e := range cfg.Examples {
		examples[i] = string(e)
	}

	ctx := RenderContext{
		"projectName":    cfg.ProjectName,
		"frontends":      frontends,
		"backend":        string(cfg.Backend),
		"runtime":        string(cfg.Runtime),
		"database":       string(cfg.Database),
		"orm":            string(cfg.ORM),
		"dbSetup":        string(cfg.DBSetup),
		"auth":           cfg.Auth,
		"api":            string(cfg.API),
		"addons":         addons,
		"examples":       examples,
		"packageManager": string(cfg.PackageManager),
		"deployment":     string(cfg.Deployment),
		"version":        cfg.Version,
		"createdAt":      cfg.CreatedAt,

		// Derived command prefixes, so templates never branch on the
		// package manager themselves.
		"pmRun":  cfg.PackageManager.RunCommand(),
		"pmExec": cfg.PackageManager.ExecCommand(),
	}

	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}
