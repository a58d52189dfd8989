package updater

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultCacheMaxAge is how long a release check result stays fresh.
const DefaultCacheMaxAge = 24 * time.Hour

const cacheFile = "version-check.json"

// VersionCache is the on-disk record of the last release check.
type VersionCache struct {
	LatestVersion   string    `json:"latest_version"`
	CurrentVersion  string    `json:"current_version"`
	CheckedAt       time.Time `json:"checked_at"`
	UpdateAvailable bool      `json:"update_available"`
}

// Stale reports whether the cache is missing or older than maxAge.
// Safe on a nil receiver (no cache yet).
func (c *VersionCache) Stale(maxAge time.Duration) bool {
	return c == nil || time.Since(c.CheckedAt) > maxAge
}

func cachePath(configDir string) string {
	return filepath.Join(configDir, cacheFile)
}

// LoadCache reads the cached release check from the config directory.
// A missing cache file is not an error; it returns nil, nil.
func LoadCache(configDir string) (*VersionCache, error) {
	data, err := os.ReadFile(cachePath(configDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading version cache: %w", err)
	}

	cache := &VersionCache{}
	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("parsing version cache: %w", err)
	}
	return cache, nil
}

// SaveCache writes the release check result, creating the config directory
// if needed.
func SaveCache(configDir string, cache *VersionCache) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling version cache: %w", err)
	}
	if err := os.WriteFile(cachePath(configDir), data, 0644); err != nil {
		return fmt.Errorf("writing version cache: %w", err)
	}
	return nil
}
