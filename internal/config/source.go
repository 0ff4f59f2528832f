package config

import (
	"compress/gzip" // For reading .gz compressed catalogs
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/bodgit/sevenzip" // For reading .7z catalog bundles
	"github.com/spf13/afero"
	"github.com/xi2/xz" // For reading .xz compressed catalogs

	"devcli/internal/logger"
)

// catalogExtensions are the entry names accepted inside a .7z bundle.
var catalogExtensions = []string{".json", ".yaml", ".yml"}

// ReadCatalogSource returns the raw catalog bytes stored at path, decompressing
// .gz and .xz files and pulling the first catalog entry out of a .7z bundle.
func ReadCatalogSource(fs afero.Fs, file string) ([]byte, error) {
	lower := strings.ToLower(file)
	switch {
	case strings.HasSuffix(lower, ".7z"):
		logger.Debug("[DEBUG] Catalog source is a .7z bundle\n")
		return read7z(fs, file)
	case strings.HasSuffix(lower, ".xz"):
		logger.Debug("[DEBUG] Catalog source is .xz compressed\n")
		return readCompressed(fs, file, func(r io.Reader) (io.Reader, error) {
			return xz.NewReader(r, 0)
		})
	case strings.HasSuffix(lower, ".gz"):
		logger.Debug("[DEBUG] Catalog source is .gz compressed\n")
		return readCompressed(fs, file, func(r io.Reader) (io.Reader, error) {
			return gzip.NewReader(r)
		})
	default:
		return afero.ReadFile(fs, file)
	}
}

// readCompressed streams file through the given decompressor.
func readCompressed(fs afero.Fs, file string, open func(io.Reader) (io.Reader, error)) ([]byte, error) {
	f, err := fs.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := open(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", file, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", file, err)
	}
	return data, nil
}

// read7z returns the first .json/.yaml/.yml entry of a 7z archive.
func read7z(fs afero.Fs, file string) ([]byte, error) {
	f, err := fs.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	r, err := sevenzip.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open 7z archive: %w", err)
	}

	for _, entry := range r.File {
		if entry.FileInfo().IsDir() || !isCatalogName(entry.Name) {
			continue
		}
		logger.Debug("[DEBUG] Using %s from %s\n", entry.Name, file)
		rc, err := entry.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s from %s: %w", entry.Name, file, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("no catalog file (.json, .yaml, .yml) inside %s", file)
}

func isCatalogName(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, want := range catalogExtensions {
		if ext == want {
			return true
		}
	}
	return false
}
