package assets

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stackforge-dev/stackforge/internal/template"
)

// requiredDirs lists every corpus subtree the resolver can reference for
// some valid ProjectConfig. A missing directory would surface as a
// LayerResolutionError at runtime, so it is pinned here instead.
var requiredDirs = []string{
	"base",
	"frontend/web-base", "frontend/next", "frontend/react", "frontend/svelte",
	"frontend/native-base", "frontend/native",
	"backend/server-base", "backend/hono", "backend/express", "backend/fastify", "backend/convex",
	"api/trpc/server", "api/trpc/client/web", "api/trpc/client/native",
	"api/orpc/server", "api/orpc/client/web", "api/orpc/client/native",
	"db/drizzle/sqlite", "db/drizzle/postgres", "db/drizzle/mysql",
	"db/prisma/sqlite", "db/prisma/postgres", "db/prisma/mysql",
	"db/mongoose/mongodb",
	"auth/server/base", "auth/server/hono", "auth/server/express", "auth/server/fastify",
	"auth/client/web", "auth/client/native",
	"auth/db/drizzle/sqlite", "auth/db/drizzle/postgres", "auth/db/drizzle/mysql",
	"auth/db/prisma/sqlite", "auth/db/prisma/postgres", "auth/db/prisma/mysql",
	"auth/db/mongoose/mongodb",
	"examples/todo/server/drizzle", "examples/todo/server/prisma", "examples/todo/server/mongoose",
	"examples/todo/client/web", "examples/todo/client/native",
	"examples/ai/server/drizzle", "examples/ai/server/prisma", "examples/ai/server/mongoose",
	"examples/ai/client/web", "examples/ai/client/native",
	"addons/pwa", "addons/biome", "addons/husky",
	"deploy/wrangler/next", "deploy/wrangler/react", "deploy/wrangler/svelte",
}

func TestCorpusCoversResolverKeys(t *testing.T) {
	corpus := Corpus()
	for _, dir := range requiredDirs {
		info, err := fs.Stat(corpus, dir)
		if err != nil {
			t.Errorf("corpus directory %q missing: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("corpus entry %q is not a directory", dir)
		}
	}
}

func TestCorpusTemplatesAreWellFormed(t *testing.T) {
	corpus := Corpus()
	r := template.NewRenderer()

	// Render every .tmpl against an empty context: unresolved tokens are
	// legal and left verbatim, but unbalanced blocks are authoring bugs
	// this test catches before they ship.
	err := fs.WalkDir(corpus, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}
		data, err := fs.ReadFile(corpus, path)
		if err != nil {
			t.Errorf("read %q: %v", path, err)
			return nil
		}
		if _, err := r.Render(string(data), template.RenderContext{}); err != nil {
			t.Errorf("template %q is malformed: %v", path, err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk error: %v", err)
	}
}

func TestCorpusDotfileAliases(t *testing.T) {
	corpus := Corpus()
	if _, err := fs.Stat(corpus, "base/_gitignore"); err != nil {
		t.Errorf("base layer should ship a _gitignore alias: %v", err)
	}
	if _, err := fs.Stat(corpus, "base/.gitignore"); err == nil {
		t.Error("corpus must not contain a literal .gitignore; use the alias")
	}
}
