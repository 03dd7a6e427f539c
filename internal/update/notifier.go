package update

import (
	"context"
	"log/slog"
	"time"
)

// Notifier decides whether an upgrade notice should be shown. It throttles
// network checks through an on-disk cache so at most one request is made
// per day.
type Notifier struct {
	checker   Checker
	logger    *slog.Logger
	cachePath string
	now       func() time.Time
}

// NewNotifier creates a Notifier with the default cache location.
func NewNotifier(checker Checker, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	path, err := cachePath()
	if err != nil {
		// Without a cache path every run checks the network. Acceptable.
		path = ""
	}
	return &Notifier{
		checker:   checker,
		logger:    logger.With("module", "update"),
		cachePath: path,
		now:       time.Now,
	}
}

// Notice returns the latest release if it is newer than current, or nil.
// Errors are logged and swallowed: an offline machine must never break
// project generation.
func (n *Notifier) Notice(ctx context.Context, current string) *VersionInfo {
	if n.cachePath != "" {
		if entry := loadCache(n.cachePath); entry.isFresh(n.now()) {
			if entry.Latest != nil && compareSemver(entry.Latest.Version, current) > 0 {
				return entry.Latest
			}
			return nil
		}
	}

	available, info, err := n.checker.IsUpdateAvailable(ctx, current)
	if err != nil {
		n.logger.Debug("update check failed", "error", err)
		return nil
	}

	if n.cachePath != "" {
		entry := &cacheEntry{CheckedAt: n.now()}
		if available {
			entry.Latest = info
		}
		if err := saveCache(n.cachePath, entry); err != nil {
			n.logger.Debug("update cache write failed", "error", err)
		}
	}

	if !available {
		return nil
	}
	return info
}
