// Package installer runs the dependency install step of a generated project
// with the package manager the user selected.
package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/stackforge-dev/stackforge/internal/resilience"
	"github.com/stackforge-dev/stackforge/pkg/models"
)

// defaultTimeout bounds a single install attempt. Workspace installs over
// slow registries can take a while, so this is generous.
const defaultTimeout = 10 * time.Minute

// ErrUnknownPackageManager indicates a package manager without an install command.
var ErrUnknownPackageManager = errors.New("installer: unknown package manager")

// Installer runs dependency installation in a project root.
type Installer interface {
	// Install runs `<pm> install` in root, retrying transient failures.
	Install(ctx context.Context, root string, pm models.PackageManager) error
}

type commandInstaller struct {
	logger *slog.Logger
	policy resilience.RetryPolicy
}

// NewInstaller creates an Installer that shells out to the package manager.
func NewInstaller(logger *slog.Logger) Installer {
	if logger == nil {
		logger = slog.Default()
	}
	return &commandInstaller{
		logger: logger.With("module", "installer"),
		policy: resilience.DefaultPolicy(),
	}
}

// Install runs the package manager's install command in root.
func (i *commandInstaller) Install(ctx context.Context, root string, pm models.PackageManager) error {
	argv, err := installArgs(pm)
	if err != nil {
		return err
	}
	if _, err := exec.LookPath(argv[0]); err != nil {
		return fmt.Errorf("installer: %s not found in PATH: %w", argv[0], err)
	}

	i.logger.Info("installing dependencies", "packageManager", pm, "root", root)

	return resilience.Retry(ctx, i.policy, func() error {
		return runInstall(ctx, root, argv)
	})
}

// installArgs returns the argv for the package manager's install command.
func installArgs(pm models.PackageManager) ([]string, error) {
	switch pm {
	case models.PackageManagerNpm:
		return []string{"npm", "install"}, nil
	case models.PackageManagerPnpm:
		return []string{"pnpm", "install"}, nil
	case models.PackageManagerBun:
		return []string{"bun", "install"}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPackageManager, pm)
	}
}

func runInstall(ctx context.Context, root string, argv []string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = root

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		wrapped := fmt.Errorf("%s: %w: %s", strings.Join(argv, " "), err, strings.TrimSpace(stderr.String()))
		// A command that ran to completion and exited non-zero is
		// deterministic (bad manifest, unknown workspace); retrying can
		// only repeat it. Startup failures, timeouts, and signal kills
		// stay retryable.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return resilience.Permanent(wrapped)
		}
		return wrapped
	}
	return nil
}
