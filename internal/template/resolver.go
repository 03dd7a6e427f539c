package template

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/stackforge-dev/stackforge/internal/config"
	"github.com/stackforge-dev/stackforge/pkg/models"
)

// Resolver maps a validated ProjectConfig onto the ordered list of template
// layers to apply. The mapping is table-driven and deterministic: resolving
// the same config twice yields an identical list.
//
// Ordering invariant: within every append step, base/shared sub-layers are
// listed strictly before their specific/override counterparts, so the
// materializer's overwrite semantics let specific layers win ties.
type Resolver struct {
	corpus fs.FS
}

// NewResolver creates a Resolver over the given template corpus.
func NewResolver(corpus fs.FS) *Resolver {
	return &Resolver{corpus: corpus}
}

// ResolveLayers produces the ordered layer list for one generation run.
// A config axis whose corpus directory is missing is a programming-error
// class *LayerResolutionError: validated configs only reference corpus
// subtrees that ship with the binary.
func (r *Resolver) ResolveLayers(cfg *config.ProjectConfig) ([]Layer, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	var layers []Layer

	add := func(l Layer) error {
		if err := r.checkSource(l); err != nil {
			return err
		}
		layers = append(layers, l)
		return nil
	}

	// Base scaffolding applies to every configuration and is the only
	// mandatory layer.
	if err := add(Layer{Name: "base", Source: "base", Dest: destRoot, Mandatory: true}); err != nil {
		return nil, err
	}

	steps := []func(*config.ProjectConfig, func(Layer) error) error{
		r.frontendLayers,
		r.backendLayers,
		r.apiLayers,
		r.databaseLayers,
		r.authLayers,
		r.exampleLayers,
		r.addonLayers,
		r.deploymentLayers,
	}
	for _, step := range steps {
		if err := step(cfg, add); err != nil {
			return nil, err
		}
	}

	return layers, nil
}

// checkSource verifies the layer's source directory exists in the corpus.
func (r *Resolver) checkSource(l Layer) error {
	info, err := fs.Stat(r.corpus, l.Source)
	if err != nil || !info.IsDir() {
		return &LayerResolutionError{
			Layer:  l.Name,
			Detail: fmt.Sprintf("corpus directory %q does not exist", l.Source),
		}
	}
	return nil
}

// frontendFamily returns the family sub-layer name and destination for a
// frontend variant. Web frontends share the web-base family; native has
// its own.
func frontendFamily(f models.Frontend) (family, dest string) {
	if f.IsWeb() {
		return "web-base", destWeb
	}
	return "native-base", destNative
}

// frontendLayers appends one family-base + framework-specific pair per
// selected frontend, family base first.
func (r *Resolver) frontendLayers(cfg *config.ProjectConfig, add func(Layer) error) error {
	for _, f := range cfg.Frontends {
		family, dest := frontendFamily(f)
		if err := add(Layer{
			Name:   "frontend:" + family,
			Source: path.Join("frontend", family),
			Dest:   dest,
		}); err != nil {
			return err
		}
		if err := add(Layer{
			Name:   "frontend:" + string(f),
			Source: path.Join("frontend", string(f)),
			Dest:   dest,
		}); err != nil {
			return err
		}
	}
	return nil
}

// backendLayers appends the server-base + framework pair for server
// backends, or the single serverless layer for Convex.
func (r *Resolver) backendLayers(cfg *config.ProjectConfig, add func(Layer) error) error {
	switch {
	case cfg.Backend.HasServer():
		if err := add(Layer{
			Name:   "backend:server-base",
			Source: "backend/server-base",
			Dest:   destServer,
		}); err != nil {
			return err
		}
		return add(Layer{
			Name:   "backend:" + string(cfg.Backend),
			Source: path.Join("backend", string(cfg.Backend)),
			Dest:   destServer,
		})
	case cfg.Backend.Serverless():
		return add(Layer{
			Name:   "backend:" + string(cfg.Backend),
			Source: path.Join("backend", string(cfg.Backend)),
			Dest:   destBackend,
		})
	}
	return nil
}

// apiLayers appends the typed API server layer plus one client layer per
// selected frontend family. Skipped entirely for serverless backends,
// which forbid a generated server-side API.
func (r *Resolver) apiLayers(cfg *config.ProjectConfig, add func(Layer) error) error {
	if cfg.API == models.APINone || !cfg.Backend.HasServer() {
		return nil
	}

	if err := add(Layer{
		Name:   "api:" + string(cfg.API) + ":server",
		Source: path.Join("api", string(cfg.API), "server"),
		Dest:   destServer,
	}); err != nil {
		return err
	}

	for _, family := range selectedFamilies(cfg) {
		dest := destWeb
		if family == "native" {
			dest = destNative
		}
		if err := add(Layer{
			Name:   "api:" + string(cfg.API) + ":client:" + family,
			Source: path.Join("api", string(cfg.API), "client", family),
			Dest:   dest,
		}); err != nil {
			return err
		}
	}
	return nil
}

// databaseLayers appends the schema layer keyed by the (orm, database)
// pair. Schema syntax differs per engine, so the pair is the corpus key.
func (r *Resolver) databaseLayers(cfg *config.ProjectConfig, add func(Layer) error) error {
	if !cfg.HasDatabase() {
		return nil
	}
	return add(Layer{
		Name:   fmt.Sprintf("db:%s:%s", cfg.ORM, cfg.Database),
		Source: path.Join("db", string(cfg.ORM), string(cfg.Database)),
		Dest:   destServer,
	})
}

// authLayers appends server/base, server/framework, one client layer per
// frontend family, and the database-adapter layer keyed by (orm, database).
func (r *Resolver) authLayers(cfg *config.ProjectConfig, add func(Layer) error) error {
	if !cfg.Auth || !cfg.Backend.HasServer() {
		return nil
	}

	if err := add(Layer{
		Name:   "auth:server:base",
		Source: "auth/server/base",
		Dest:   destServer,
	}); err != nil {
		return err
	}
	if err := add(Layer{
		Name:   "auth:server:" + string(cfg.Backend),
		Source: path.Join("auth", "server", string(cfg.Backend)),
		Dest:   destServer,
	}); err != nil {
		return err
	}

	for _, family := range selectedFamilies(cfg) {
		dest := destWeb
		if family == "native" {
			dest = destNative
		}
		if err := add(Layer{
			Name:   "auth:client:" + family,
			Source: path.Join("auth", "client", family),
			Dest:   dest,
		}); err != nil {
			return err
		}
	}

	if cfg.HasDatabase() {
		return add(Layer{
			Name:   fmt.Sprintf("auth:db:%s:%s", cfg.ORM, cfg.Database),
			Source: path.Join("auth", "db", string(cfg.ORM), string(cfg.Database)),
			Dest:   destServer,
		})
	}
	return nil
}

// exampleLayers appends the selected example layers with PreserveExisting
// policy: example code fills gaps, it never replaces scaffolding already
// placed by framework layers.
func (r *Resolver) exampleLayers(cfg *config.ProjectConfig, add func(Layer) error) error {
	for _, e := range cfg.Examples {
		if cfg.Backend.HasServer() && cfg.HasDatabase() {
			if err := add(Layer{
				Name:   fmt.Sprintf("example:%s:server:%s", e, cfg.ORM),
				Source: path.Join("examples", string(e), "server", string(cfg.ORM)),
				Dest:   destServer,
				Policy: PreserveExisting,
			}); err != nil {
				return err
			}
		}
		for _, family := range selectedFamilies(cfg) {
			dest := destWeb
			if family == "native" {
				dest = destNative
			}
			if err := add(Layer{
				Name:   fmt.Sprintf("example:%s:client:%s", e, family),
				Source: path.Join("examples", string(e), "client", family),
				Dest:   dest,
				Policy: PreserveExisting,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// addonLayers appends the selected add-ons, each independently gated.
// An add-on whose frontend requirement is not met is silently skipped,
// not an error.
func (r *Resolver) addonLayers(cfg *config.ProjectConfig, add func(Layer) error) error {
	for _, a := range cfg.Addons {
		dest := destRoot
		switch a {
		case models.AddonPWA:
			if !cfg.HasWebFrontend() {
				continue // silent skip: no compatible frontend selected
			}
			dest = destWeb
		case models.AddonBiome, models.AddonHusky:
			// workspace-root add-ons, no gate
		}
		if err := add(Layer{
			Name:   "addon:" + string(a),
			Source: path.Join("addons", string(a)),
			Dest:   dest,
		}); err != nil {
			return err
		}
	}
	return nil
}

// deploymentLayers appends deployment templates keyed by the
// (deploymentTarget, frontendFramework) pair.
func (r *Resolver) deploymentLayers(cfg *config.ProjectConfig, add func(Layer) error) error {
	if cfg.Deployment == models.DeploymentNone {
		return nil
	}
	for _, f := range cfg.WebFrontends() {
		if err := add(Layer{
			Name:   fmt.Sprintf("deploy:%s:%s", cfg.Deployment, f),
			Source: path.Join("deploy", string(cfg.Deployment), string(f)),
			Dest:   destWeb,
		}); err != nil {
			return err
		}
	}
	return nil
}

// selectedFamilies returns the frontend families present in the selection,
// web before native, each at most once.
func selectedFamilies(cfg *config.ProjectConfig) []string {
	var families []string
	if cfg.HasWebFrontend() {
		families = append(families, "web")
	}
	if cfg.HasFrontend(models.FrontendNative) {
		families = append(families, "native")
	}
	return families
}
