package config

import (
	"errors"
	"testing"

	"github.com/stackforge-dev/stackforge/pkg/models"
)

// validConfig returns a fully-specified config that passes validation.
func validConfig() *ProjectConfig {
	cfg := NewRecommendedConfig()
	cfg.ProjectName = "my-app"
	return cfg
}

func TestValidate(t *testing.T) {
	t.Run("recommended_config_is_valid", func(t *testing.T) {
		if err := Validate(validConfig()); err != nil {
			t.Fatalf("Validate error: %v", err)
		}
	})

	t.Run("default_config_needs_only_name", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.ProjectName = "empty-stack"
		if err := Validate(cfg); err != nil {
			t.Fatalf("Validate error: %v", err)
		}
	})

	t.Run("empty_project_name", func(t *testing.T) {
		cfg := validConfig()
		cfg.ProjectName = ""
		err := Validate(cfg)
		if !errors.Is(err, ErrInvalidProjectName) {
			t.Errorf("expected ErrInvalidProjectName, got %v", err)
		}
	})

	t.Run("unsafe_project_name", func(t *testing.T) {
		for _, name := range []string{"../escape", "has space", "-leading", "a/b"} {
			cfg := validConfig()
			cfg.ProjectName = name
			if err := Validate(cfg); !errors.Is(err, ErrInvalidProjectName) {
				t.Errorf("name %q: expected ErrInvalidProjectName, got %v", name, err)
			}
		}
	})

	t.Run("orm_without_database", func(t *testing.T) {
		cfg := validConfig()
		cfg.Database = models.DatabaseNone
		cfg.DBSetup = models.DBSetupNone
		cfg.Auth = false
		err := Validate(cfg)
		if !errors.Is(err, ErrIncompatibleChoice) {
			t.Errorf("expected ErrIncompatibleChoice, got %v", err)
		}
	})

	t.Run("orm_unsupported_engine", func(t *testing.T) {
		cfg := validConfig()
		cfg.ORM = models.ORMMongoose
		cfg.Database = models.DatabaseSQLite
		err := Validate(cfg)
		if !errors.Is(err, ErrIncompatibleChoice) {
			t.Errorf("expected ErrIncompatibleChoice, got %v", err)
		}
	})

	t.Run("turso_implies_sqlite", func(t *testing.T) {
		cfg := validConfig()
		cfg.Database = models.DatabasePostgres
		cfg.DBSetup = models.DBSetupTurso
		err := Validate(cfg)
		if !errors.Is(err, ErrIncompatibleChoice) {
			t.Errorf("expected ErrIncompatibleChoice, got %v", err)
		}
	})

	t.Run("provider_without_database", func(t *testing.T) {
		cfg := validConfig()
		cfg.Database = models.DatabaseNone
		cfg.ORM = models.ORMNone
		cfg.Auth = false
		cfg.DBSetup = models.DBSetupNeon
		err := Validate(cfg)
		if !errors.Is(err, ErrIncompatibleChoice) {
			t.Errorf("expected ErrIncompatibleChoice, got %v", err)
		}
	})

	t.Run("auth_without_server", func(t *testing.T) {
		cfg := validConfig()
		cfg.Backend = models.BackendNone
		cfg.Runtime = models.RuntimeNone
		cfg.API = models.APINone
		err := Validate(cfg)
		if !errors.Is(err, ErrIncompatibleChoice) {
			t.Errorf("expected ErrIncompatibleChoice, got %v", err)
		}
	})

	t.Run("auth_with_convex_backend", func(t *testing.T) {
		cfg := validConfig()
		cfg.Backend = models.BackendConvex
		cfg.Runtime = models.RuntimeNone
		err := Validate(cfg)
		if !errors.Is(err, ErrIncompatibleChoice) {
			t.Errorf("expected ErrIncompatibleChoice, got %v", err)
		}
	})

	t.Run("api_without_backend", func(t *testing.T) {
		cfg := validConfig()
		cfg.Backend = models.BackendNone
		cfg.Runtime = models.RuntimeNone
		cfg.Auth = false
		cfg.API = models.APITRPC
		err := Validate(cfg)
		if !errors.Is(err, ErrIncompatibleChoice) {
			t.Errorf("expected ErrIncompatibleChoice, got %v", err)
		}
	})

	t.Run("server_without_runtime", func(t *testing.T) {
		cfg := validConfig()
		cfg.Runtime = models.RuntimeNone
		err := Validate(cfg)
		if !errors.Is(err, ErrIncompatibleChoice) {
			t.Errorf("expected ErrIncompatibleChoice, got %v", err)
		}
	})

	t.Run("duplicate_frontends", func(t *testing.T) {
		cfg := validConfig()
		cfg.Frontends = []models.Frontend{models.FrontendNext, models.FrontendNext}
		err := Validate(cfg)
		if !errors.Is(err, ErrIncompatibleChoice) {
			t.Errorf("expected ErrIncompatibleChoice, got %v", err)
		}
	})

	t.Run("two_web_frontends", func(t *testing.T) {
		cfg := validConfig()
		cfg.Frontends = []models.Frontend{models.FrontendNext, models.FrontendReact}
		err := Validate(cfg)
		if !errors.Is(err, ErrIncompatibleChoice) {
			t.Errorf("expected ErrIncompatibleChoice, got %v", err)
		}
	})

	t.Run("web_plus_native_is_valid", func(t *testing.T) {
		cfg := validConfig()
		cfg.Frontends = []models.Frontend{models.FrontendNext, models.FrontendNative}
		if err := Validate(cfg); err != nil {
			t.Errorf("Validate error: %v", err)
		}
	})

	t.Run("deployment_without_web_frontend", func(t *testing.T) {
		cfg := validConfig()
		cfg.Frontends = []models.Frontend{models.FrontendNative}
		cfg.Deployment = models.DeploymentWrangler
		err := Validate(cfg)
		if !errors.Is(err, ErrIncompatibleChoice) {
			t.Errorf("expected ErrIncompatibleChoice, got %v", err)
		}
	})

	t.Run("unknown_enum_value", func(t *testing.T) {
		cfg := validConfig()
		cfg.Backend = models.Backend("rails")
		err := Validate(cfg)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestValidationErrorsAggregate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.ProjectName = ""
	cfg.Backend = models.Backend("rails")

	err := Validate(cfg)
	var verrs *ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}
	if len(verrs.Errors) < 2 {
		t.Errorf("expected at least 2 errors, got %d: %v", len(verrs.Errors), verrs)
	}
	if !errors.Is(err, ErrInvalidProjectName) {
		t.Error("aggregate should match ErrInvalidProjectName")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("aggregate should match ErrInvalidConfig")
	}
}
