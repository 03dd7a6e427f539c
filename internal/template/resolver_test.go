package template

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stackforge-dev/stackforge/internal/config"
	"github.com/stackforge-dev/stackforge/pkg/models"
)

// testCorpus returns a corpus covering every subtree the resolver tests
// reference. One marker file per directory is enough: the resolver only
// checks directory existence.
func testCorpus() fstest.MapFS {
	dirs := []string{
		"base",
		"frontend/web-base", "frontend/next", "frontend/react", "frontend/svelte",
		"frontend/native-base", "frontend/native",
		"backend/server-base", "backend/hono", "backend/express", "backend/fastify",
		"backend/convex",
		"api/trpc/server", "api/trpc/client/web", "api/trpc/client/native",
		"api/orpc/server", "api/orpc/client/web", "api/orpc/client/native",
		"db/drizzle/sqlite", "db/drizzle/postgres", "db/prisma/postgres", "db/mongoose/mongodb",
		"auth/server/base", "auth/server/hono", "auth/server/express", "auth/server/fastify",
		"auth/client/web", "auth/client/native",
		"auth/db/drizzle/sqlite", "auth/db/drizzle/postgres", "auth/db/prisma/postgres",
		"examples/todo/server/drizzle", "examples/todo/server/prisma",
		"examples/todo/client/web", "examples/todo/client/native",
		"examples/ai/server/drizzle", "examples/ai/client/web", "examples/ai/client/native",
		"addons/pwa", "addons/biome", "addons/husky",
		"deploy/wrangler/next", "deploy/wrangler/react", "deploy/wrangler/svelte",
	}
	corpus := fstest.MapFS{}
	for _, d := range dirs {
		corpus[d+"/.keep"] = &fstest.MapFile{Data: []byte{}}
	}
	return corpus
}

func scenarioAConfig() *config.ProjectConfig {
	cfg := config.NewDefaultConfig()
	cfg.ProjectName = "scenario-a"
	cfg.Frontends = []models.Frontend{models.FrontendNext}
	cfg.Backend = models.BackendHono
	cfg.Runtime = models.RuntimeBun
	cfg.Database = models.DatabaseSQLite
	cfg.ORM = models.ORMDrizzle
	cfg.Auth = true
	return cfg
}

func layerSources(layers []Layer) []string {
	sources := make([]string, len(layers))
	for i, l := range layers {
		sources[i] = l.Source
	}
	return sources
}

func indexOf(sources []string, want string) int {
	for i, s := range sources {
		if s == want {
			return i
		}
	}
	return -1
}

func TestResolveLayers(t *testing.T) {
	r := NewResolver(testCorpus())

	t.Run("nil_config", func(t *testing.T) {
		if _, err := r.ResolveLayers(nil); !errors.Is(err, ErrNilConfig) {
			t.Errorf("expected ErrNilConfig, got %v", err)
		}
	})

	t.Run("base_layer_always_first_and_mandatory", func(t *testing.T) {
		layers, err := r.ResolveLayers(scenarioAConfig())
		if err != nil {
			t.Fatalf("ResolveLayers error: %v", err)
		}
		if len(layers) == 0 || layers[0].Source != "base" {
			t.Fatalf("first layer = %+v, want base", layers[0])
		}
		if !layers[0].Mandatory {
			t.Error("base layer must be mandatory")
		}
		for _, l := range layers[1:] {
			if l.Mandatory {
				t.Errorf("layer %q should be optional", l.Name)
			}
		}
	})

	t.Run("scenario_a_orm_and_auth_adapter_keyed_by_pair", func(t *testing.T) {
		layers, err := r.ResolveLayers(scenarioAConfig())
		if err != nil {
			t.Fatalf("ResolveLayers error: %v", err)
		}
		sources := layerSources(layers)

		if indexOf(sources, "db/drizzle/sqlite") < 0 {
			t.Errorf("missing db layer keyed by (drizzle, sqlite): %v", sources)
		}
		if indexOf(sources, "auth/db/drizzle/sqlite") < 0 {
			t.Errorf("missing auth adapter keyed by (drizzle, sqlite): %v", sources)
		}
	})

	t.Run("scenario_b_docs_only_run", func(t *testing.T) {
		cfg := config.NewDefaultConfig()
		cfg.ProjectName = "scenario-b"
		cfg.Addons = []models.Addon{models.AddonBiome}

		layers, err := r.ResolveLayers(cfg)
		if err != nil {
			t.Fatalf("ResolveLayers error: %v", err)
		}
		sources := layerSources(layers)
		want := []string{"base", "addons/biome"}
		if len(sources) != len(want) {
			t.Fatalf("layers = %v, want %v", sources, want)
		}
		for i := range want {
			if sources[i] != want[i] {
				t.Errorf("layers[%d] = %q, want %q", i, sources[i], want[i])
			}
		}
	})

	t.Run("determinism", func(t *testing.T) {
		cfg := scenarioAConfig()
		cfg.Frontends = append(cfg.Frontends, models.FrontendNative)
		cfg.Addons = []models.Addon{models.AddonPWA, models.AddonHusky}
		cfg.Examples = []models.Example{models.ExampleTodo}
		cfg.API = models.APITRPC
		cfg.Deployment = models.DeploymentWrangler

		first, err := r.ResolveLayers(cfg)
		if err != nil {
			t.Fatalf("ResolveLayers error: %v", err)
		}
		second, err := r.ResolveLayers(cfg)
		if err != nil {
			t.Fatalf("ResolveLayers error: %v", err)
		}
		if len(first) != len(second) {
			t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("layer %d differs: %+v vs %+v", i, first[i], second[i])
			}
		}
	})

	t.Run("base_before_specific_within_each_group", func(t *testing.T) {
		layers, err := r.ResolveLayers(scenarioAConfig())
		if err != nil {
			t.Fatalf("ResolveLayers error: %v", err)
		}
		sources := layerSources(layers)

		pairs := [][2]string{
			{"frontend/web-base", "frontend/next"},
			{"backend/server-base", "backend/hono"},
			{"auth/server/base", "auth/server/hono"},
		}
		for _, p := range pairs {
			bi, si := indexOf(sources, p[0]), indexOf(sources, p[1])
			if bi < 0 || si < 0 {
				t.Fatalf("missing pair %v in %v", p, sources)
			}
			if bi >= si {
				t.Errorf("%q (index %d) must precede %q (index %d)", p[0], bi, p[1], si)
			}
		}
	})

	t.Run("examples_use_preserve_existing", func(t *testing.T) {
		cfg := scenarioAConfig()
		cfg.Examples = []models.Example{models.ExampleTodo}
		layers, err := r.ResolveLayers(cfg)
		if err != nil {
			t.Fatalf("ResolveLayers error: %v", err)
		}
		found := false
		for _, l := range layers {
			if l.Source == "examples/todo/server/drizzle" {
				found = true
				if l.Policy != PreserveExisting {
					t.Errorf("example layer policy = %v, want PreserveExisting", l.Policy)
				}
			}
		}
		if !found {
			t.Error("todo example server layer not resolved")
		}
	})

	t.Run("api_skipped_for_serverless_backend", func(t *testing.T) {
		cfg := scenarioAConfig()
		cfg.Backend = models.BackendConvex
		cfg.Runtime = models.RuntimeNone
		cfg.Auth = false
		cfg.Database = models.DatabaseNone
		cfg.ORM = models.ORMNone
		cfg.API = models.APITRPC

		layers, err := r.ResolveLayers(cfg)
		if err != nil {
			t.Fatalf("ResolveLayers error: %v", err)
		}
		for _, l := range layers {
			if l.Source == "api/trpc/server" {
				t.Error("api server layer resolved for serverless backend")
			}
			if l.Source == "backend/server-base" {
				t.Error("server-base resolved for serverless backend")
			}
		}
		if indexOf(layerSources(layers), "backend/convex") < 0 {
			t.Error("convex backend layer missing")
		}
	})

	t.Run("pwa_silently_skipped_without_web_frontend", func(t *testing.T) {
		cfg := config.NewDefaultConfig()
		cfg.ProjectName = "native-only"
		cfg.Frontends = []models.Frontend{models.FrontendNative}
		cfg.Addons = []models.Addon{models.AddonPWA, models.AddonBiome}

		layers, err := r.ResolveLayers(cfg)
		if err != nil {
			t.Fatalf("ResolveLayers error: %v", err)
		}
		sources := layerSources(layers)
		if indexOf(sources, "addons/pwa") >= 0 {
			t.Error("pwa layer resolved without a web frontend")
		}
		if indexOf(sources, "addons/biome") < 0 {
			t.Error("biome layer missing")
		}
	})

	t.Run("deployment_keyed_by_target_and_frontend", func(t *testing.T) {
		cfg := scenarioAConfig()
		cfg.Deployment = models.DeploymentWrangler
		layers, err := r.ResolveLayers(cfg)
		if err != nil {
			t.Fatalf("ResolveLayers error: %v", err)
		}
		if indexOf(layerSources(layers), "deploy/wrangler/next") < 0 {
			t.Error("deploy layer for (wrangler, next) missing")
		}
	})

	t.Run("missing_corpus_directory_is_resolution_error", func(t *testing.T) {
		sparse := fstest.MapFS{"base/.keep": &fstest.MapFile{Data: []byte{}}}
		cfg := scenarioAConfig()
		_, err := NewResolver(sparse).ResolveLayers(cfg)
		var lerr *LayerResolutionError
		if !errors.As(err, &lerr) {
			t.Fatalf("expected *LayerResolutionError, got %v", err)
		}
	})
}
