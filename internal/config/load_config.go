package config

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"devcli/internal/logger"
	"devcli/internal/state"
)

// ErrCatalogNotFound is returned when no usable catalog location could be found.
var ErrCatalogNotFound = errors.New("task catalog not found")

// DefaultCandidates are tried, in order, when the cache has nothing usable.
var DefaultCandidates = []string{"../tasks.json", "tasks.json"}

// Prompter asks the user for a line of input.
type Prompter interface {
	Prompt(label string) (string, error)
}

// Locator finds the task catalog: cached location first, then the default
// candidates, then the user. A location typed in by the user is cached.
type Locator struct {
	FS         afero.Fs
	Cache      *state.PathCache
	Candidates []string
	Prompter   Prompter
}

// NewLocator creates a Locator over fs with the default cache and candidates.
func NewLocator(fs afero.Fs, prompter Prompter) *Locator {
	return &Locator{
		FS:         fs,
		Cache:      state.NewPathCache(fs, state.DefaultPath),
		Candidates: DefaultCandidates,
		Prompter:   prompter,
	}
}

// Resolve returns the catalog location to load.
func (l *Locator) Resolve() (string, error) {
	if cached, ok := l.Cache.Load(); ok {
		if l.isFile(cached) {
			logger.Debug("[DEBUG] Using cached catalog path: %s\n", cached)
			return cached, nil
		}
		logger.Debug("[DEBUG] Cached catalog path %s no longer exists\n", cached)
	}

	for _, candidate := range l.Candidates {
		if l.isFile(candidate) {
			logger.Debug("[DEBUG] Using %s\n", candidate)
			return candidate, nil
		}
	}

	if l.Prompter == nil {
		return "", ErrCatalogNotFound
	}

	logger.Warn("[WARN] tasks.json not found in expected locations.\n")
	entered, err := l.Prompter.Prompt("Please enter path to tasks.json manually: ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCatalogNotFound, err)
	}
	if entered == "" || !l.isFile(entered) {
		return "", fmt.Errorf("%w: provided path %q is invalid", ErrCatalogNotFound, entered)
	}

	logger.Info("[INFO] Using manually entered path: %s\n", entered)
	l.Cache.Save(entered)
	return entered, nil
}

func (l *Locator) isFile(path string) bool {
	info, err := l.FS.Stat(path)
	return err == nil && !info.IsDir()
}

// LoadCatalog reads and parses the catalog stored at path.
func LoadCatalog(fs afero.Fs, path string) (*Catalog, error) {
	data, err := ReadCatalogSource(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidCatalog, path)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cat, nil
}
