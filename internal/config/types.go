package config

import (
	"github.com/stackforge-dev/stackforge/pkg/models"
)

// ProjectConfig is the immutable description of one generation run.
// It is constructed once from CLI flags or wizard answers, validated once,
// and only read afterwards. The template engine never mutates it.
type ProjectConfig struct {
	// ProjectName is the filesystem-safe name of the generated project.
	ProjectName string `yaml:"project_name"`

	// ProjectRoot is the absolute destination directory. Not serialized:
	// the artifact must stay valid when the project directory moves.
	ProjectRoot string `yaml:"-"`

	// Frontends holds zero or more selected frontend variants.
	Frontends []models.Frontend `yaml:"frontends"`

	// Backend is the server framework, or none.
	Backend models.Backend `yaml:"backend"`

	// Runtime is the server runtime target, or none.
	Runtime models.Runtime `yaml:"runtime"`

	// Database is the database engine, or none.
	Database models.Database `yaml:"database"`

	// ORM is the schema layer, or none.
	ORM models.ORM `yaml:"orm"`

	// DBSetup is the hosted database provider whose setup runs after
	// materialization, or none.
	DBSetup models.DBSetup `yaml:"db_setup"`

	// Auth enables authentication templates.
	Auth bool `yaml:"auth"`

	// API is the typed API flavor, or none.
	API models.API `yaml:"api"`

	// Addons holds zero or more selected add-ons.
	Addons []models.Addon `yaml:"addons"`

	// Examples holds zero or more selected example applications.
	Examples []models.Example `yaml:"examples"`

	// PackageManager drives workspace manifests and the install step.
	PackageManager models.PackageManager `yaml:"package_manager"`

	// Deployment is the deployment target, or none.
	Deployment models.Deployment `yaml:"deployment"`

	// Git enables repository initialization after generation.
	Git bool `yaml:"git"`

	// Install enables dependency installation after generation.
	Install bool `yaml:"install"`

	// Version is the stackforge version that generated the project.
	Version string `yaml:"version"`

	// CreatedAt is the ISO 8601 timestamp of the generation run.
	CreatedAt string `yaml:"created_at"`
}

// HasFrontend reports whether the given frontend variant is selected.
func (c *ProjectConfig) HasFrontend(f models.Frontend) bool {
	for _, sel := range c.Frontends {
		if sel == f {
			return true
		}
	}
	return false
}

// HasWebFrontend reports whether any selected frontend renders in a browser.
func (c *ProjectConfig) HasWebFrontend() bool {
	for _, sel := range c.Frontends {
		if sel.IsWeb() {
			return true
		}
	}
	return false
}

// WebFrontends returns the selected web frontend variants in selection order.
func (c *ProjectConfig) WebFrontends() []models.Frontend {
	var web []models.Frontend
	for _, sel := range c.Frontends {
		if sel.IsWeb() {
			web = append(web, sel)
		}
	}
	return web
}

// HasAddon reports whether the given add-on is selected.
func (c *ProjectConfig) HasAddon(a models.Addon) bool {
	for _, sel := range c.Addons {
		if sel == a {
			return true
		}
	}
	return false
}

// HasDatabase reports whether a database/ORM layer is generated.
// Both sides of the (orm, database) pair must be selected.
func (c *ProjectConfig) HasDatabase() bool {
	return c.Database != models.DatabaseNone && c.ORM != models.ORMNone
}
