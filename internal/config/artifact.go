package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/stackforge-dev/stackforge/internal/defs"
)

// SaveArtifact writes the ProjectConfig as stackforge.yaml into the project
// root. The artifact records what was generated so later tooling can add
// features to an existing project without re-asking every question.
func SaveArtifact(cfg *ProjectConfig, projectRoot string) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("config: marshal artifact: %w", err)
	}

	path := filepath.Join(filepath.Clean(projectRoot), defs.ConfigYAML)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("config: write artifact %q: %w", path, err)
	}
	return path, nil
}

// LoadArtifact reads a stackforge.yaml from the project root. Defaults are
// applied first so artifacts written by older versions with fewer fields
// still load into a complete config.
//
// Generation never calls this; it is the read side for tooling that
// operates on an already-generated project, such as adding a stack
// component after the fact.
func LoadArtifact(projectRoot string) (*ProjectConfig, error) {
	path := filepath.Join(filepath.Clean(projectRoot), defs.ConfigYAML)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("config: read artifact %q: %w", path, err)
	}

	cfg := NewDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
	}
	cfg.ProjectRoot = filepath.Clean(projectRoot)
	return cfg, nil
}
