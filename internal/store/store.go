package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// MarkerDirName is the directory searched for when locating the store.
	MarkerDirName = ".secretstore"

	// RegistryName is the keylist file inside the key directory.
	RegistryName = "keylist"

	// PublicKeySuffix is the extension of exported public key files.
	PublicKeySuffix = ".pub"

	// CipherSuffix is appended to a plaintext name to form its ciphertext name.
	CipherSuffix = ".gpg"

	// EnvKeyDir overrides the key directory location and skips the search.
	EnvKeyDir = "SECRETSTORE_DIR"
)

// Origin records how the key directory path was determined.
type Origin int

const (
	// OriginFound means a marker directory was found in the start directory
	// or one of its ancestors.
	OriginFound Origin = iota

	// OriginEnv means the SECRETSTORE_DIR environment variable was set.
	OriginEnv

	// OriginFallback means no marker directory exists yet; the path points
	// into the start directory and is created lazily by export.
	OriginFallback
)

func (o Origin) String() string {
	switch o {
	case OriginFound:
		return "found"
	case OriginEnv:
		return "environment"
	case OriginFallback:
		return "fallback"
	}
	return "unknown"
}

// Config holds the resolved store paths. It is threaded explicitly into
// every operation so tests can inject temporary directories.
type Config struct {
	// KeyDir is the absolute path of the key directory. It may not exist
	// yet when Origin is OriginFallback.
	KeyDir string

	// RegistryPath is the absolute path of the keylist file.
	RegistryPath string

	// Origin records how KeyDir was determined.
	Origin Origin
}

// Locate resolves the key directory for a process started in startDir.
//
// The start directory and each of its ancestors, up to and including the
// filesystem root, are checked for a sub-directory named MarkerDirName; the
// closest match wins. If none exists, the key directory is defined to be the
// marker name inside startDir, created lazily by the first operation that
// writes to it. Setting SECRETSTORE_DIR bypasses the search entirely.
//
// Locate itself never creates anything, and all returned paths are absolute
// so later working-directory changes cannot shift them.
func Locate(startDir string) (Config, error) {
	if override := os.Getenv(EnvKeyDir); override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return Config{}, fmt.Errorf("resolving %s: %w", EnvKeyDir, err)
		}
		return newConfig(abs, OriginEnv), nil
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return Config{}, fmt.Errorf("resolving start directory: %w", err)
	}
	start := dir

	for {
		marker := filepath.Join(dir, MarkerDirName)
		info, err := os.Stat(marker)
		if err == nil {
			if info.IsDir() {
				return newConfig(marker, OriginFound), nil
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("checking for %s at %s: %w", MarkerDirName, dir, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return newConfig(filepath.Join(start, MarkerDirName), OriginFallback), nil
}

func newConfig(keyDir string, origin Origin) Config {
	return Config{
		KeyDir:       keyDir,
		RegistryPath: filepath.Join(keyDir, RegistryName),
		Origin:       origin,
	}
}

// EnsureKeyDir creates the key directory if it does not exist.
func (c Config) EnsureKeyDir() error {
	if err := os.MkdirAll(c.KeyDir, 0700); err != nil {
		return fmt.Errorf("creating key directory: %w", err)
	}
	return nil
}

// KeyFilePath returns the public key file path for a key name.
func (c Config) KeyFilePath(name string) string {
	return filepath.Join(c.KeyDir, name+PublicKeySuffix)
}
