package configs

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestUserConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	want := &UserConfig{
		User: User{
			UUID:           "11111111-2222-3333-4444-555555555555",
			DefaultKeyName: "alice-laptop",
		},
		GPG: GPG{Binary: "gpg2"},
	}
	if err := SaveTOML(path, want); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	got, err := loadUserConfigFrom(path)
	if err != nil {
		t.Fatalf("loadUserConfigFrom failed: %v", err)
	}
	if *got != *want {
		t.Errorf("Round trip = %+v, want %+v", got, want)
	}
}

func TestLoadUserConfig_MissingFileIsEmptyConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	got, err := loadUserConfigFrom(path)
	if err != nil {
		t.Fatalf("loadUserConfigFrom failed: %v", err)
	}
	if got.User.UUID != "" || got.GPG.Binary != "" {
		t.Errorf("Missing config should load empty, got %+v", got)
	}
}

func TestEnsureUserConfig_GeneratesStableUUID(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME redirection is linux-specific")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	first, err := EnsureUserConfig()
	if err != nil {
		t.Fatalf("EnsureUserConfig failed: %v", err)
	}
	if first.User.UUID == "" {
		t.Fatalf("EnsureUserConfig did not generate a UUID")
	}

	second, err := EnsureUserConfig()
	if err != nil {
		t.Fatalf("EnsureUserConfig failed on second call: %v", err)
	}
	if second.User.UUID != first.User.UUID {
		t.Errorf("UUID changed between runs: %q then %q", first.User.UUID, second.User.UUID)
	}
}
