package update

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// checkInterval is the minimum time between network checks.
const checkInterval = 24 * time.Hour

// cacheEntry is the on-disk record of the last check.
type cacheEntry struct {
	CheckedAt time.Time    `json:"checked_at"`
	Latest    *VersionInfo `json:"latest,omitempty"`
}

// cachePath returns the XDG cache location for the check record.
func cachePath() (string, error) {
	return xdg.CacheFile(filepath.Join("stackforge", "update-check.json"))
}

// loadCache reads the last check record. A missing or corrupt file is
// treated as no cache.
func loadCache(path string) *cacheEntry {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}
	return &entry
}

// saveCache writes the check record. Failures are ignored by callers:
// the cache only throttles, it never gates.
func saveCache(path string, entry *cacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// isFresh reports whether the cached check is recent enough to skip
// the network.
func (e *cacheEntry) isFresh(now time.Time) bool {
	if e == nil {
		return false
	}
	return now.Sub(e.CheckedAt) < checkInterval
}
