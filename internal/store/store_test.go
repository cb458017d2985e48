package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLocate_MarkerInStartDir(t *testing.T) {
	t.Setenv(EnvKeyDir, "")
	tempDir := t.TempDir()
	markerDir := filepath.Join(tempDir, MarkerDirName)
	if err := os.MkdirAll(markerDir, 0700); err != nil {
		t.Fatalf("Failed to create marker dir: %v", err)
	}

	cfg, err := Locate(tempDir)
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if cfg.KeyDir != markerDir {
		t.Errorf("KeyDir = %q, want %q", cfg.KeyDir, markerDir)
	}
	if cfg.Origin != OriginFound {
		t.Errorf("Origin = %v, want OriginFound", cfg.Origin)
	}
	if cfg.RegistryPath != filepath.Join(markerDir, RegistryName) {
		t.Errorf("RegistryPath = %q, want keylist inside marker dir", cfg.RegistryPath)
	}
}

func TestLocate_MarkerInAncestor(t *testing.T) {
	t.Setenv(EnvKeyDir, "")
	tempDir := t.TempDir()
	markerDir := filepath.Join(tempDir, MarkerDirName)
	nested := filepath.Join(tempDir, "a", "b", "c")
	if err := os.MkdirAll(markerDir, 0700); err != nil {
		t.Fatalf("Failed to create marker dir: %v", err)
	}
	if err := os.MkdirAll(nested, 0700); err != nil {
		t.Fatalf("Failed to create nested dirs: %v", err)
	}

	cfg, err := Locate(nested)
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if cfg.KeyDir != markerDir {
		t.Errorf("KeyDir = %q, want ancestor marker %q", cfg.KeyDir, markerDir)
	}
}

func TestLocate_ClosestAncestorWins(t *testing.T) {
	t.Setenv(EnvKeyDir, "")
	tempDir := t.TempDir()
	outerMarker := filepath.Join(tempDir, MarkerDirName)
	innerMarker := filepath.Join(tempDir, "sub", MarkerDirName)
	start := filepath.Join(tempDir, "sub", "deep")
	for _, dir := range []string{outerMarker, innerMarker, start} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	cfg, err := Locate(start)
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if cfg.KeyDir != innerMarker {
		t.Errorf("KeyDir = %q, want closest marker %q", cfg.KeyDir, innerMarker)
	}
}

func TestLocate_NoMarkerFallsBackToStartDir(t *testing.T) {
	t.Setenv(EnvKeyDir, "")
	tempDir := t.TempDir()
	start := filepath.Join(tempDir, "work")
	if err := os.MkdirAll(start, 0700); err != nil {
		t.Fatalf("Failed to create start dir: %v", err)
	}

	cfg, err := Locate(start)
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	want := filepath.Join(start, MarkerDirName)
	if cfg.KeyDir != want {
		t.Errorf("KeyDir = %q, want fallback %q", cfg.KeyDir, want)
	}
	if cfg.Origin != OriginFallback {
		t.Errorf("Origin = %v, want OriginFallback", cfg.Origin)
	}

	// Locate must not create anything.
	if _, err := os.Stat(want); !os.IsNotExist(err) {
		t.Errorf("Locate created the fallback directory")
	}
}

func TestLocate_MarkerFileIsIgnored(t *testing.T) {
	t.Setenv(EnvKeyDir, "")
	tempDir := t.TempDir()
	// A plain file with the marker name is not a key directory.
	if err := os.WriteFile(filepath.Join(tempDir, MarkerDirName), []byte("not a dir"), 0600); err != nil {
		t.Fatalf("Failed to create marker file: %v", err)
	}

	cfg, err := Locate(tempDir)
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if cfg.Origin != OriginFallback {
		t.Errorf("Origin = %v, want OriginFallback when marker is a file", cfg.Origin)
	}
}

func TestLocate_EnvOverride(t *testing.T) {
	tempDir := t.TempDir()
	override := filepath.Join(tempDir, "custom-keys")
	t.Setenv(EnvKeyDir, override)

	cfg, err := Locate(t.TempDir())
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if cfg.KeyDir != override {
		t.Errorf("KeyDir = %q, want env override %q", cfg.KeyDir, override)
	}
	if cfg.Origin != OriginEnv {
		t.Errorf("Origin = %v, want OriginEnv", cfg.Origin)
	}
}

func TestEnsureKeyDirAndKeyFilePath(t *testing.T) {
	tempDir := t.TempDir()
	cfg := Config{
		KeyDir:       filepath.Join(tempDir, MarkerDirName),
		RegistryPath: filepath.Join(tempDir, MarkerDirName, RegistryName),
	}

	if err := cfg.EnsureKeyDir(); err != nil {
		t.Fatalf("EnsureKeyDir failed: %v", err)
	}
	info, err := os.Stat(cfg.KeyDir)
	if err != nil || !info.IsDir() {
		t.Fatalf("Key directory was not created: %v", err)
	}

	got := cfg.KeyFilePath("alice")
	want := filepath.Join(cfg.KeyDir, "alice"+PublicKeySuffix)
	if got != want {
		t.Errorf("KeyFilePath = %q, want %q", got, want)
	}
}
