package config

import (
	"fmt"
	"regexp"

	"golang.org/x/text/unicode/norm"

	"github.com/stackforge-dev/stackforge/pkg/models"
)

// projectNamePattern restricts project names to filesystem-safe characters.
var projectNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// Validate checks the configuration for correctness. It enforces the mutual
// constraints between option axes exactly once, at construction time; the
// template engine trusts a validated config and never re-checks.
func Validate(cfg *ProjectConfig) error {
	var errs []ValidationError

	errs = append(errs, validateProjectName(cfg.ProjectName)...)
	errs = append(errs, validateEnums(cfg)...)
	errs = append(errs, validateFrontends(cfg.Frontends)...)
	errs = append(errs, validateDatabasePair(cfg)...)
	errs = append(errs, validateDBSetup(cfg)...)
	errs = append(errs, validateAuth(cfg)...)
	errs = append(errs, validateAPI(cfg)...)
	errs = append(errs, validateRuntime(cfg)...)
	errs = append(errs, validateDeployment(cfg)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateProjectName checks that the name is non-empty and filesystem-safe.
// Names are NFC-normalized before matching so macOS NFD input does not
// produce a different on-disk identity than the same name typed on Linux.
func validateProjectName(name string) []ValidationError {
	normalized := norm.NFC.String(name)
	if normalized == "" {
		return []ValidationError{{
			Field:   "project_name",
			Message: "required field is empty",
			Wrapped: ErrInvalidProjectName,
		}}
	}
	if len(normalized) > 255 {
		return []ValidationError{{
			Field:   "project_name",
			Message: "must be at most 255 characters",
			Value:   name,
			Wrapped: ErrInvalidProjectName,
		}}
	}
	if !projectNamePattern.MatchString(normalized) {
		return []ValidationError{{
			Field:   "project_name",
			Message: "must start with a letter or digit and contain only letters, digits, '.', '_' and '-'",
			Value:   name,
			Wrapped: ErrInvalidProjectName,
		}}
	}
	return nil
}

// validateEnums checks every enum-typed field for membership.
func validateEnums(cfg *ProjectConfig) []ValidationError {
	var errs []ValidationError

	check := func(field string, ok bool, value any) {
		if !ok {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "unknown value",
				Value:   value,
				Wrapped: ErrInvalidConfig,
			})
		}
	}

	for _, f := range cfg.Frontends {
		check("frontends", f.IsValid() && f != models.FrontendNone, string(f))
	}
	check("backend", cfg.Backend.IsValid(), string(cfg.Backend))
	check("runtime", cfg.Runtime.IsValid(), string(cfg.Runtime))
	check("database", cfg.Database.IsValid(), string(cfg.Database))
	check("orm", cfg.ORM.IsValid(), string(cfg.ORM))
	check("db_setup", cfg.DBSetup.IsValid(), string(cfg.DBSetup))
	check("api", cfg.API.IsValid(), string(cfg.API))
	check("package_manager", cfg.PackageManager.IsValid(), string(cfg.PackageManager))
	check("deployment", cfg.Deployment.IsValid(), string(cfg.Deployment))
	for _, a := range cfg.Addons {
		check("addons", a.IsValid(), string(a))
	}
	for _, e := range cfg.Examples {
		check("examples", e.IsValid(), string(e))
	}

	return errs
}

// validateFrontends rejects duplicates and multiple web frontends. Two web
// frontends would collide in the apps/web destination subroot.
func validateFrontends(frontends []models.Frontend) []ValidationError {
	var errs []ValidationError

	seen := make(map[models.Frontend]bool, len(frontends))
	webCount := 0
	for _, f := range frontends {
		if seen[f] {
			errs = append(errs, ValidationError{
				Field:   "frontends",
				Message: "duplicate selection",
				Value:   string(f),
				Wrapped: ErrIncompatibleChoice,
			})
		}
		seen[f] = true
		if f.IsWeb() {
			webCount++
		}
	}
	if webCount > 1 {
		errs = append(errs, ValidationError{
			Field:   "frontends",
			Message: "at most one web frontend may be selected",
			Wrapped: ErrIncompatibleChoice,
		})
	}

	return errs
}

// validateDatabasePair checks that database and ORM are selected together
// and that the ORM has a schema flavor for the engine.
func validateDatabasePair(cfg *ProjectConfig) []ValidationError {
	dbNone := cfg.Database == models.DatabaseNone
	ormNone := cfg.ORM == models.ORMNone

	if dbNone && ormNone {
		return nil
	}
	if dbNone != ormNone {
		return []ValidationError{{
			Field:   "orm",
			Message: "database and orm must be selected together or both be none",
			Value:   fmt.Sprintf("database=%s orm=%s", cfg.Database, cfg.ORM),
			Wrapped: ErrIncompatibleChoice,
		}}
	}
	if !cfg.ORM.Supports(cfg.Database) {
		return []ValidationError{{
			Field:   "orm",
			Message: fmt.Sprintf("orm %q does not support database %q", cfg.ORM, cfg.Database),
			Wrapped: ErrIncompatibleChoice,
		}}
	}
	return nil
}

// validateDBSetup checks provider/engine compatibility (e.g. turso implies sqlite).
func validateDBSetup(cfg *ProjectConfig) []ValidationError {
	if cfg.DBSetup == models.DBSetupNone {
		return nil
	}
	if cfg.Database == models.DatabaseNone {
		return []ValidationError{{
			Field:   "db_setup",
			Message: "database provider requires a database engine",
			Value:   string(cfg.DBSetup),
			Wrapped: ErrIncompatibleChoice,
		}}
	}
	if !cfg.DBSetup.CompatibleWith(cfg.Database) {
		return []ValidationError{{
			Field:   "db_setup",
			Message: fmt.Sprintf("provider %q does not serve database %q", cfg.DBSetup, cfg.Database),
			Wrapped: ErrIncompatibleChoice,
		}}
	}
	return nil
}

// validateAuth checks that authentication has a server to live in.
func validateAuth(cfg *ProjectConfig) []ValidationError {
	if !cfg.Auth {
		return nil
	}
	if !cfg.Backend.HasServer() {
		return []ValidationError{{
			Field:   "auth",
			Message: fmt.Sprintf("authentication requires a server backend (got backend %q)", cfg.Backend),
			Wrapped: ErrIncompatibleChoice,
		}}
	}
	return nil
}

// validateAPI checks that a typed API layer has a backend to attach to.
// A serverless backend is handled by silent skip in the layer resolver;
// no backend at all is a contradiction worth surfacing.
func validateAPI(cfg *ProjectConfig) []ValidationError {
	if cfg.API == models.APINone {
		return nil
	}
	if cfg.Backend == models.BackendNone {
		return []ValidationError{{
			Field:   "api",
			Message: fmt.Sprintf("api %q requires a backend", cfg.API),
			Wrapped: ErrIncompatibleChoice,
		}}
	}
	return nil
}

// validateRuntime checks that a generated server declares its runtime.
func validateRuntime(cfg *ProjectConfig) []ValidationError {
	if cfg.Backend.HasServer() && cfg.Runtime == models.RuntimeNone {
		return []ValidationError{{
			Field:   "runtime",
			Message: fmt.Sprintf("backend %q requires a runtime", cfg.Backend),
			Wrapped: ErrIncompatibleChoice,
		}}
	}
	return nil
}

// validateDeployment checks that the deployment target has a web frontend.
func validateDeployment(cfg *ProjectConfig) []ValidationError {
	if cfg.Deployment == models.DeploymentNone {
		return nil
	}
	if !cfg.HasWebFrontend() {
		return []ValidationError{{
			Field:   "deployment",
			Message: fmt.Sprintf("deployment target %q requires a web frontend", cfg.Deployment),
			Wrapped: ErrIncompatibleChoice,
		}}
	}
	return nil
}
