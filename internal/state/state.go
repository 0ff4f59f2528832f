package state

import (
	"strings"

	"github.com/spf13/afero"

	"devcli/internal/logger" // Custom logger package for logging errors and debug info
)

// DefaultPath is where the last interactively chosen catalog location is remembered.
const DefaultPath = ".devcli_config"

// PathCache persists a single line: the catalog file location the user entered.
type PathCache struct {
	fs   afero.Fs
	path string
}

// NewPathCache creates a cache stored at path on fs.
func NewPathCache(fs afero.Fs, path string) *PathCache {
	return &PathCache{fs: fs, path: path}
}

// Load returns the cached location, or false if the cache file is missing or empty.
func (c *PathCache) Load() (string, bool) {
	// Read the whole cache file; only its first line matters
	data, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		// Missing cache is the normal first-run case
		logger.Debug("[DEBUG] No catalog path cache at %s: %v\n", c.path, err)
		return "", false
	}

	line, _, _ := strings.Cut(string(data), "\n")
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return "", false
	}
	return line, true
}

// Save writes location to the cache file.
// Errors are logged but not propagated; the cache only saves a prompt next time.
func (c *PathCache) Save(location string) {
	logger.Debug("[DEBUG] Writing catalog path %s to %s\n", location, c.path)

	// Write the single line with mode 0644 (read/write owner, read others)
	if err := afero.WriteFile(c.fs, c.path, []byte(location+"\n"), 0644); err != nil {
		// Log write errors, e.g., permission denied or read-only working directory
		logger.Error("[ERROR] Failed to write catalog path cache %s: %v\n", c.path, err)
	}
}
