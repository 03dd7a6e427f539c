package template

import (
	"testing"

	"github.com/stackforge-dev/stackforge/internal/config"
	"github.com/stackforge-dev/stackforge/pkg/models"
)

func TestNewRenderContext(t *testing.T) {
	cfg := config.NewRecommendedConfig()
	cfg.ProjectName = "ctx-test"
	cfg.Addons = []models.Addon{models.AddonPWA}
	cfg.Version = "v1.4.0"

	t.Run("projects_config_fields", func(t *testing.T) {
		ctx := NewRenderContext(cfg)

		cases := map[string]string{
			"projectName":    "ctx-test",
			"backend":        "hono",
			"runtime":        "bun",
			"database":       "sqlite",
			"orm":            "drizzle",
			"api":            "trpc",
			"packageManager": "bun",
			"version":        "v1.4.0",
			"pmRun":          "bun",
			"pmExec":         "bunx",
		}
		for key, want := range cases {
			v, ok := ctx.Lookup(key)
			if !ok {
				t.Errorf("key %q missing", key)
				continue
			}
			if v != want {
				t.Errorf("ctx[%q] = %v, want %q", key, v, want)
			}
		}

		if v, _ := ctx.Lookup("auth"); v != true {
			t.Errorf("ctx[auth] = %v, want true", v)
		}
		addons, _ := ctx.Lookup("addons")
		list, ok := addons.([]string)
		if !ok || len(list) != 1 || list[0] != "pwa" {
			t.Errorf("ctx[addons] = %v", addons)
		}
	})

	t.Run("caller_extras_win", func(t *testing.T) {
		ctx := NewRenderContext(cfg, WithValue("authSecret", "s3cr3t"), WithValue("version", "override"))
		if v, _ := ctx.Lookup("authSecret"); v != "s3cr3t" {
			t.Errorf("extra value missing: %v", v)
		}
		if v, _ := ctx.Lookup("version"); v != "override" {
			t.Errorf("option should override projection: %v", v)
		}
	})

	t.Run("npm_command_prefixes", func(t *testing.T) {
		npmCfg := config.NewRecommendedConfig()
		npmCfg.ProjectName = "npm-test"
		npmCfg.PackageManager = models.PackageManagerNpm
		ctx := NewRenderContext(npmCfg)
		if v, _ := ctx.Lookup("pmRun"); v != "npm run" {
			t.Errorf("pmRun = %v", v)
		}
		if v, _ := ctx.Lookup("pmExec"); v != "npx" {
			t.Errorf("pmExec = %v", v)
		}
	})
}
