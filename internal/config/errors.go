// Package config defines the ProjectConfig value object describing one
// generation run, its defaults, its cross-field validation, and the
// stackforge.yaml artifact written into generated projects.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the configuration violates a constraint.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidProjectName indicates the project name is not filesystem-safe.
	ErrInvalidProjectName = errors.New("config: invalid project name")

	// ErrIncompatibleChoice indicates two selected options cannot be combined.
	ErrIncompatibleChoice = errors.New("config: incompatible option combination")

	// ErrArtifactNotFound indicates no stackforge.yaml exists at the path.
	ErrArtifactNotFound = errors.New("config: project artifact not found")

	// ErrInvalidYAML indicates invalid YAML syntax in an artifact file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is supports errors.Is by checking contained validation errors against the target.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}
