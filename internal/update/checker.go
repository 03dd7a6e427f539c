// Package update checks the GitHub Releases API for newer stackforge
// versions so the CLI can print an upgrade notice after generation.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultAPIURL is the production releases endpoint.
const DefaultAPIURL = "https://api.github.com/repos/stackforge-dev/stackforge/releases/latest"

// VersionInfo describes the latest published release.
type VersionInfo struct {
	Version string
	Date    time.Time
	URL     string
}

// Checker queries a release endpoint for version metadata.
type Checker interface {
	// CheckLatest fetches the latest release metadata.
	CheckLatest(ctx context.Context) (*VersionInfo, error)

	// IsUpdateAvailable compares current against the latest release.
	IsUpdateAvailable(ctx context.Context, current string) (bool, *VersionInfo, error)
}

// releaseResponse represents the GitHub Releases API JSON response.
type releaseResponse struct {
	TagName     string    `json:"tag_name"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
}

// checker is the concrete implementation of Checker.
type checker struct {
	apiURL string
	client *http.Client
}

// NewChecker creates a Checker that queries the given API URL.
// For testing, pass the httptest.Server URL directly.
func NewChecker(apiURL string, client *http.Client) Checker {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &checker{
		apiURL: apiURL,
		client: client,
	}
}

// CheckLatest fetches the latest release metadata.
func (c *checker) CheckLatest(ctx context.Context) (*VersionInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("checker: create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "stackforge-updater")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("checker: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("checker: release not found (status 404)")
		}
		return nil, fmt.Errorf("checker: unexpected status %d", resp.StatusCode)
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("checker: decode response: %w", err)
	}

	return &VersionInfo{
		Version: release.TagName,
		Date:    release.PublishedAt,
		URL:     release.HTMLURL,
	}, nil
}

// IsUpdateAvailable compares the current version against the latest release.
func (c *checker) IsUpdateAvailable(ctx context.Context, current string) (bool, *VersionInfo, error) {
	info, err := c.CheckLatest(ctx)
	if err != nil {
		return false, nil, err
	}

	if compareSemver(info.Version, current) <= 0 {
		// Latest is same or older than current.
		return false, nil, nil
	}

	return true, info, nil
}

// compareSemver compares two semantic version strings.
// Returns -1 if a < b, 0 if a == b, 1 if a > b. Handles an optional "v" prefix.
func compareSemver(a, b string) int {
	a = strings.TrimPrefix(a, "v")
	b = strings.TrimPrefix(b, "v")

	aParts := parseSemverParts(a)
	bParts := parseSemverParts(b)

	for i := range 3 {
		if aParts[i] > bParts[i] {
			return 1
		}
		if aParts[i] < bParts[i] {
			return -1
		}
	}
	return 0
}

// parseSemverParts extracts [major, minor, patch] from a version string.
func parseSemverParts(v string) [3]int {
	var parts [3]int
	segments := strings.SplitN(v, ".", 3)
	for i, seg := range segments {
		if i >= 3 {
			break
		}
		// Strip any pre-release suffix (e.g., "1-beta").
		if idx := strings.IndexAny(seg, "-+"); idx >= 0 {
			seg = seg[:idx]
		}
		n, err := strconv.Atoi(seg)
		if err == nil {
			parts[i] = n
		}
	}
	return parts
}
