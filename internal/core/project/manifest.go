package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stackforge-dev/stackforge/internal/config"
	"github.com/stackforge-dev/stackforge/internal/defs"
	"github.com/stackforge-dev/stackforge/pkg/models"
)

// packageManagerPins maps each package manager to the pinned version written
// into the root manifest's packageManager field, as corepack expects.
var packageManagerPins = map[models.PackageManager]string{
	models.PackageManagerNpm:  "npm@10.9.2",
	models.PackageManagerPnpm: "pnpm@10.4.1",
	models.PackageManagerBun:  "bun@1.2.4",
}

// reconcileManifest merges stack-dependent scripts into the root
// package.json after all layers are down. The base layer ships an empty
// scripts block; everything in it is owned by this step.
func reconcileManifest(projectRoot string, cfg *config.ProjectConfig) error {
	path := filepath.Join(projectRoot, defs.PackageJSON)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("project: read root manifest: %w", err)
	}

	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("project: parse root manifest: %w", err)
	}

	scripts, _ := manifest["scripts"].(map[string]any)
	if scripts == nil {
		scripts = make(map[string]any)
	}
	for name, cmd := range rootScripts(cfg) {
		scripts[name] = cmd
	}
	manifest["scripts"] = scripts

	if pin, ok := packageManagerPins[cfg.PackageManager]; ok {
		manifest["packageManager"] = pin
	}

	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("project: encode root manifest: %w", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("project: write root manifest: %w", err)
	}
	return nil
}

// rootScripts returns the scripts block for the selected stack.
func rootScripts(cfg *config.ProjectConfig) map[string]string {
	scripts := map[string]string{
		"dev":   workspaceScript(cfg.PackageManager, "dev"),
		"build": workspaceScript(cfg.PackageManager, "build"),
	}

	if cfg.HasDatabase() {
		scripts["db:push"] = serverScript(cfg.PackageManager, "db:push")
		scripts["db:studio"] = serverScript(cfg.PackageManager, "db:studio")
	}
	if cfg.Backend == models.BackendConvex {
		scripts["dev:setup"] = "convex dev --configure"
	}
	if cfg.HasAddon(models.AddonHusky) {
		scripts["prepare"] = "husky"
	}
	if cfg.HasAddon(models.AddonBiome) {
		scripts["check"] = "biome check --write ."
	}
	if cfg.Deployment == models.DeploymentWrangler {
		scripts["deploy"] = webScript(cfg.PackageManager, "deploy")
	}

	return scripts
}

// workspaceScript fans a script out to every workspace that defines it.
func workspaceScript(pm models.PackageManager, script string) string {
	switch pm {
	case models.PackageManagerPnpm:
		return "pnpm -r " + script
	case models.PackageManagerBun:
		return "bun run --filter '*' " + script
	default:
		return "npm run " + script + " --workspaces --if-present"
	}
}

// serverScript runs a script inside the server workspace.
func serverScript(pm models.PackageManager, script string) string {
	return workspaceDirScript(pm, "apps/server", script)
}

// webScript runs a script inside the web workspace.
func webScript(pm models.PackageManager, script string) string {
	return workspaceDirScript(pm, "apps/web", script)
}

func workspaceDirScript(pm models.PackageManager, dir, script string) string {
	switch pm {
	case models.PackageManagerPnpm:
		return fmt.Sprintf("pnpm --filter ./%s %s", dir, script)
	case models.PackageManagerBun:
		return fmt.Sprintf("bun run --cwd %s %s", dir, script)
	default:
		return fmt.Sprintf("npm run %s -w %s", script, dir)
	}
}
