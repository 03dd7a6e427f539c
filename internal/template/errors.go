// Package template implements the template materialization engine: a
// placeholder renderer, a path transformer, a layer resolver, and the
// materializer that applies resolved layers onto a destination tree.
package template

import (
	"errors"
	"fmt"
)

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates a named template does not exist in the corpus.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrPathTraversal indicates a template path would escape the destination root.
	ErrPathTraversal = errors.New("template: path escapes destination root")

	// ErrNilConfig indicates a nil ProjectConfig was passed to the resolver.
	ErrNilConfig = errors.New("template: nil project config")
)

// SyntaxError reports malformed block syntax in a template file. It is fatal
// for the file it occurs in; whether it is fatal for the run depends on the
// layer it occurred in (mandatory vs optional).
type SyntaxError struct {
	Path   string // template file path, attached by the materializer
	Detail string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("template syntax: %s", e.Detail)
	}
	return fmt.Sprintf("template syntax in %q: %s", e.Path, e.Detail)
}

// LayerResolutionError reports a ProjectConfig that violates an internal
// constraint the resolver cannot default around. Given validated input it
// should never occur; it is a programming-error-class fault.
type LayerResolutionError struct {
	Layer  string
	Detail string
}

// Error implements the error interface.
func (e *LayerResolutionError) Error() string {
	return fmt.Sprintf("template: resolve layer %q: %s", e.Layer, e.Detail)
}

// FileFailure records one file that could not be materialized. Failures are
// aggregated per layer; a single unwritable file never aborts the walk.
type FileFailure struct {
	Path string // destination-relative path
	Err  error
}

// Error implements the error interface.
func (f FileFailure) Error() string {
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}

// Unwrap returns the underlying cause.
func (f FileFailure) Unwrap() error {
	return f.Err
}
