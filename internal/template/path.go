package template

import (
	"path"
	"strings"

	"github.com/stackforge-dev/stackforge/internal/defs"
)

// TransformPath computes the destination-relative path for a template
// source path. It strips the .tmpl marker suffix so rendered output keeps
// its real extension, and maps reserved alias basenames back to their
// dotfile names. Every other segment passes through unchanged.
//
// The function is total: every slash-separated relative path has exactly
// one output and there is no failure mode.
func TransformPath(relSourcePath string) string {
	p := strings.TrimSuffix(relSourcePath, defs.TemplateSuffix)

	dir, base := path.Split(p)
	if real, ok := defs.DotfileAliases[base]; ok {
		base = real
	}
	return dir + base
}

// IsRenderCandidate reports whether a source path names a file that must be
// passed through the renderer rather than copied verbatim.
func IsRenderCandidate(relSourcePath string) bool {
	return strings.HasSuffix(relSourcePath, defs.TemplateSuffix)
}
