package workflows

import (
	"path/filepath"
	"testing"

	"secretstore/internal/store"
)

func TestStatus_EmptyStore(t *testing.T) {
	parent := t.TempDir()
	keyDir := filepath.Join(parent, store.MarkerDirName)
	cfg := store.Config{
		KeyDir:       keyDir,
		RegistryPath: filepath.Join(keyDir, store.RegistryName),
		Origin:       store.OriginFallback,
	}

	result, err := Status(cfg)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if result.KeyDirExists {
		t.Errorf("KeyDirExists = true for a store that was never created")
	}
	if len(result.Entries) != 0 || result.PublicKeyCount != 0 {
		t.Errorf("Status of empty store = %+v, want no entries and no keys", result)
	}
}

func TestStatus_PopulatedStore(t *testing.T) {
	cfg := testStore(t)
	writeRegistry(t, cfg,
		store.Entry{KeyID: "AAAA111", Name: "alice"},
		store.Entry{KeyID: "BBBB222", Name: "bob"},
	)
	writeFile(t, filepath.Join(cfg.KeyDir, "alice.pub"), "key")

	result, err := Status(cfg)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if !result.KeyDirExists {
		t.Errorf("KeyDirExists = false, want true")
	}
	if len(result.Entries) != 2 {
		t.Errorf("Entries = %v, want 2", result.Entries)
	}
	if result.PublicKeyCount != 1 {
		t.Errorf("PublicKeyCount = %d, want 1", result.PublicKeyCount)
	}
}
