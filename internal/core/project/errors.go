// Package project orchestrates end-to-end project generation: layer
// resolution, materialization, manifest and env reconciliation, the
// config artifact, git initialization, and dependency installation.
package project

import (
	"errors"
	"fmt"
)

// ErrProjectDirNotEmpty indicates the target directory already has content.
var ErrProjectDirNotEmpty = errors.New("project: target directory is not empty")

// MandatoryLayerFailure aborts a generation run: a layer the project cannot
// exist without failed to materialize completely.
type MandatoryLayerFailure struct {
	Layer string
	Err   error
}

// Error implements the error interface.
func (e *MandatoryLayerFailure) Error() string {
	return fmt.Sprintf("project: mandatory layer %q failed: %v", e.Layer, e.Err)
}

// Unwrap returns the underlying cause.
func (e *MandatoryLayerFailure) Unwrap() error {
	return e.Err
}
