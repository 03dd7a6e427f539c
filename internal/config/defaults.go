package config

import (
	"github.com/stackforge-dev/stackforge/pkg/models"
)

// NewDefaultConfig returns a ProjectConfig with every none-capable axis set
// to its none/empty variant. Layer resolution never has to handle absence:
// an unset choice is an explicit none.
func NewDefaultConfig() *ProjectConfig {
	return &ProjectConfig{
		Frontends:      []models.Frontend{},
		Backend:        models.BackendNone,
		Runtime:        models.RuntimeNone,
		Database:       models.DatabaseNone,
		ORM:            models.ORMNone,
		DBSetup:        models.DBSetupNone,
		Auth:           false,
		API:            models.APINone,
		Addons:         []models.Addon{},
		Examples:       []models.Example{},
		PackageManager: models.PackageManagerNpm,
		Deployment:     models.DeploymentNone,
		Git:            true,
		Install:        true,
	}
}

// NewRecommendedConfig returns the stack offered as the one-keystroke
// default in the wizard and used by --yes runs.
func NewRecommendedConfig() *ProjectConfig {
	cfg := NewDefaultConfig()
	cfg.Frontends = []models.Frontend{models.FrontendNext}
	cfg.Backend = models.BackendHono
	cfg.Runtime = models.RuntimeBun
	cfg.Database = models.DatabaseSQLite
	cfg.ORM = models.ORMDrizzle
	cfg.DBSetup = models.DBSetupNone
	cfg.Auth = true
	cfg.API = models.APITRPC
	cfg.PackageManager = models.PackageManagerBun
	return cfg
}
