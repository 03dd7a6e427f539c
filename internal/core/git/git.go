// Package git is the thin version-control collaborator: it initializes a
// repository in a freshly generated project and makes the initial commit
// using the system git binary.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// defaultTimeout bounds each git invocation.
const defaultTimeout = 30 * time.Second

// ErrGitNotFound indicates the git binary is not on PATH.
var ErrGitNotFound = errors.New("git: binary not found in PATH")

// Initializer creates repositories in generated projects.
type Initializer interface {
	// Init runs `git init` in root. No-op error if git is unavailable.
	Init(ctx context.Context, root string) error

	// CommitAll stages everything under root and commits with the message.
	CommitAll(ctx context.Context, root, message string) error
}

// systemGit implements Initializer using the system git binary.
type systemGit struct {
	logger *slog.Logger
}

// NewInitializer creates an Initializer backed by the system git binary.
func NewInitializer(logger *slog.Logger) Initializer {
	if logger == nil {
		logger = slog.Default()
	}
	return &systemGit{logger: logger.With("module", "git")}
}

// Init runs `git init` in root.
func (g *systemGit) Init(ctx context.Context, root string) error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	out, err := execGit(ctx, root, "init")
	if err != nil {
		return fmt.Errorf("git init in %q: %w", root, err)
	}
	g.logger.Debug("repository initialized", "root", root, "output", out)
	return nil
}

// CommitAll stages all files and commits. An empty tree is not an error:
// generation always writes at least the base layer before this runs.
func (g *systemGit) CommitAll(ctx context.Context, root, message string) error {
	if _, err := execGit(ctx, root, "add", "-A"); err != nil {
		return fmt.Errorf("git add in %q: %w", root, err)
	}
	if _, err := execGit(ctx, root, "commit", "-m", message, "--no-verify"); err != nil {
		return fmt.Errorf("git commit in %q: %w", root, err)
	}
	g.logger.Debug("initial commit created", "root", root)
	return nil
}

// execGit runs one git command rooted at dir and returns trimmed stdout.
func execGit(ctx context.Context, dir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}
