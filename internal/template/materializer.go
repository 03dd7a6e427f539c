package template

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MaterializeResult aggregates the outcome of applying one layer.
type MaterializeResult struct {
	// Layer is the layer that was applied.
	Layer Layer

	// Written holds project-root-relative paths of files written.
	Written []string

	// Skipped holds paths left untouched under PreserveExisting policy.
	Skipped []string

	// Failed holds per-file failures. The walk continues past them; the
	// caller decides whether the layer's failures abort the run.
	Failed []FileFailure
}

// OK reports whether the layer materialized without any file failure.
func (r *MaterializeResult) OK() bool {
	return len(r.Failed) == 0
}

// Materializer applies resolved layers onto a destination tree. All side
// effects are confined to the filesystem under the project root; nothing
// outside the layer's destination subroot is read or written.
type Materializer struct {
	corpus   fs.FS
	renderer *Renderer
}

// NewMaterializer creates a Materializer over the given corpus using the
// given renderer for .tmpl files.
func NewMaterializer(corpus fs.FS, renderer *Renderer) *Materializer {
	return &Materializer{corpus: corpus, renderer: renderer}
}

// Materialize walks the layer's source directory and writes every file into
// projectRoot under the layer's destination subroot. Render candidates are
// rendered with ctx's RenderContext; everything else is copied verbatim.
//
// Individual file errors are recorded and the walk continues: a generation
// run should not abort entirely because one optional template was
// unwritable. Only corpus walk errors and context cancellation abort.
func (m *Materializer) Materialize(ctx context.Context, layer Layer, projectRoot string, rctx RenderContext) (*MaterializeResult, error) {
	projectRoot = filepath.Clean(projectRoot)
	result := &MaterializeResult{Layer: layer}

	sub, err := fs.Sub(m.corpus, layer.Source)
	if err != nil {
		return nil, &LayerResolutionError{Layer: layer.Name, Detail: err.Error()}
	}

	walkErr := fs.WalkDir(sub, ".", func(srcPath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation before each file
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if srcPath == "." || entry.IsDir() {
			return nil
		}

		relDest := filepath.Join(filepath.FromSlash(layer.Dest), filepath.FromSlash(TransformPath(srcPath)))

		if err := validateDestPath(projectRoot, relDest); err != nil {
			result.Failed = append(result.Failed, FileFailure{Path: relDest, Err: err})
			return nil
		}

		destPath := filepath.Join(projectRoot, relDest)

		// PreserveExisting is the sole branch point: an existing file is
		// recorded as skipped and no content merge is attempted.
		if layer.Policy == PreserveExisting {
			if _, statErr := os.Stat(destPath); statErr == nil {
				result.Skipped = append(result.Skipped, relDest)
				return nil
			}
		}

		content, err := m.fileContent(sub, layer, srcPath, rctx)
		if err != nil {
			result.Failed = append(result.Failed, FileFailure{Path: relDest, Err: err})
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			result.Failed = append(result.Failed, FileFailure{Path: relDest, Err: err})
			return nil
		}

		// Shell scripts keep their executable bit.
		perm := fs.FileMode(0o644)
		if strings.HasSuffix(relDest, ".sh") {
			perm = 0o755
		}

		if err := os.WriteFile(destPath, content, perm); err != nil {
			result.Failed = append(result.Failed, FileFailure{Path: relDest, Err: err})
			return nil
		}

		result.Written = append(result.Written, relDest)
		return nil
	})

	if walkErr != nil {
		return nil, walkErr
	}
	return result, nil
}

// fileContent reads one source file from the layer's sub-filesystem,
// rendering it when it is a render candidate. Syntax errors carry the
// corpus-relative source path for the caller.
func (m *Materializer) fileContent(sub fs.FS, layer Layer, srcPath string, rctx RenderContext) ([]byte, error) {
	raw, err := fs.ReadFile(sub, srcPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, path.Join(layer.Source, srcPath))
	}
	if !IsRenderCandidate(srcPath) {
		return raw, nil
	}

	rendered, err := m.renderer.Render(string(raw), rctx)
	if err != nil {
		var serr *SyntaxError
		if errors.As(err, &serr) {
			return nil, &SyntaxError{Path: path.Join(layer.Source, srcPath), Detail: serr.Detail}
		}
		return nil, err
	}
	return []byte(rendered), nil
}

// validateDestPath ensures a destination-relative path stays inside the
// project root. Paths are NFC-normalized before the containment check so
// macOS NFD segments cannot dodge the prefix comparison.
func validateDestPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(relPath)

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	absPath := norm.NFC.String(filepath.Join(absRoot, cleaned))
	absRoot = norm.NFC.String(absRoot)
	if absPath != absRoot && !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q", ErrPathTraversal, relPath)
	}
	return nil
}
