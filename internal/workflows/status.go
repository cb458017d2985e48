package workflows

import (
	"errors"
	"os"

	serrors "secretstore/internal/errors"
	"secretstore/internal/store"
)

// StatusResult summarizes the state of the store for display.
type StatusResult struct {
	// KeyDir is the resolved key directory path.
	KeyDir string

	// Origin records how the key directory was determined.
	Origin store.Origin

	// KeyDirExists reports whether the directory is actually on disk.
	KeyDirExists bool

	// Entries are the registry entries, nil when no registry exists.
	Entries []store.Entry

	// PublicKeyCount is the number of .pub files in the key directory.
	PublicKeyCount int
}

// Status inspects the store without modifying anything.
func Status(cfg store.Config) (*StatusResult, error) {
	result := &StatusResult{
		KeyDir: cfg.KeyDir,
		Origin: cfg.Origin,
	}

	if info, err := os.Stat(cfg.KeyDir); err == nil && info.IsDir() {
		result.KeyDirExists = true
	}

	entries, err := cfg.ReadRegistry()
	if err != nil && !errors.Is(err, serrors.ErrRegistryNotFound) {
		return nil, err
	}
	result.Entries = entries

	if keyFiles, err := cfg.ListPublicKeyFiles(); err == nil {
		result.PublicKeyCount = len(keyFiles)
	}

	return result, nil
}
