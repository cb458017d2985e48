package store

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	serrors "secretstore/internal/errors"
)

// ResolveFiles expands user-provided paths and globs into a deduplicated
// file list, preserving argument order. Literal paths must exist. When
// forDecrypt is true every resolved file must carry the ciphertext suffix,
// since the output name is derived by stripping it.
func ResolveFiles(patterns []string, forDecrypt bool) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern, forDecrypt)
		if err != nil {
			return nil, err
		}
		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, serrors.ErrNoFilesFound
	}
	return files, nil
}

func resolvePattern(pattern string, forDecrypt bool) ([]string, error) {
	if strings.ContainsAny(pattern, "*?[") {
		return expandGlob(pattern, forDecrypt)
	}

	abs, err := filepath.Abs(pattern)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", pattern, err)
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", serrors.ErrFileNotFound, pattern)
	}
	if forDecrypt && !strings.HasSuffix(abs, CipherSuffix) {
		return nil, fmt.Errorf("%w: %s", serrors.ErrNotCiphertext, pattern)
	}
	return []string{abs}, nil
}

func expandGlob(pattern string, forDecrypt bool) ([]string, error) {
	abs := pattern
	if !filepath.IsAbs(pattern) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		abs = filepath.Join(wd, pattern)
	}

	matches, err := doublestar.FilepathGlob(abs)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	var filtered []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if isInMarkerDir(m) {
			continue
		}
		if forDecrypt && !strings.HasSuffix(m, CipherSuffix) {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered, nil
}

// ListPublicKeyFiles returns the .pub files in the key directory, in
// directory-listing order.
func (c Config) ListPublicKeyFiles() ([]string, error) {
	entries, err := os.ReadDir(c.KeyDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serrors.ErrNoPublicKeys
		}
		return nil, fmt.Errorf("reading key directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), PublicKeySuffix) {
			continue
		}
		files = append(files, filepath.Join(c.KeyDir, entry.Name()))
	}
	if len(files) == 0 {
		return nil, serrors.ErrNoPublicKeys
	}
	return files, nil
}

// FindCipherFiles walks root recursively and returns every regular file
// with the ciphertext suffix, sorted for deterministic reporting. The
// marker directory is skipped: the store's own files are never clean
// candidates.
func FindCipherFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == MarkerDirName {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if strings.HasSuffix(path, CipherSuffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

func isInMarkerDir(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == MarkerDirName {
			return true
		}
	}
	return false
}
