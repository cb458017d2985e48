package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"secretstore/internal/keyring"
	"secretstore/internal/store"
)

var _ keyring.Client = (*fakeClient)(nil)

// fakeCall records one invocation of the fake keyring client.
type fakeCall struct {
	Op         string
	KeyID      string
	Path       string
	Recipients []string
	In         string
	Out        string
}

// fakeClient satisfies keyring.Client without touching real cryptography.
// "Ciphertext" is the plaintext prefixed with a marker line.
type fakeClient struct {
	Calls []fakeCall

	// Keys maps key ids to armored blobs returned by ExportKey.
	Keys map[string][]byte

	// FailOn makes the named operation fail when it sees this path or id.
	FailOn string
}

var errFakeTool = errors.New("fake keyring tool failure")

func (f *fakeClient) ExportKey(ctx context.Context, keyID string) ([]byte, error) {
	f.Calls = append(f.Calls, fakeCall{Op: "export", KeyID: keyID})
	if keyID == f.FailOn {
		return nil, errFakeTool
	}
	armored, ok := f.Keys[keyID]
	if !ok {
		return nil, fmt.Errorf("%w: no such key %s", errFakeTool, keyID)
	}
	return armored, nil
}

func (f *fakeClient) ImportKey(ctx context.Context, path string) error {
	f.Calls = append(f.Calls, fakeCall{Op: "import", Path: path})
	if filepath.Base(path) == f.FailOn {
		return errFakeTool
	}
	return nil
}

func (f *fakeClient) EncryptTo(ctx context.Context, recipients []string, inPath, outPath string) error {
	f.Calls = append(f.Calls, fakeCall{Op: "encrypt", Recipients: recipients, In: inPath, Out: outPath})
	if filepath.Base(inPath) == f.FailOn {
		return errFakeTool
	}
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, append([]byte("ENCRYPTED\n"), data...), 0600)
}

func (f *fakeClient) Decrypt(ctx context.Context, inPath, outPath string) error {
	f.Calls = append(f.Calls, fakeCall{Op: "decrypt", In: inPath, Out: outPath})
	if filepath.Base(inPath) == f.FailOn {
		return errFakeTool
	}
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, data[len("ENCRYPTED\n"):], 0600)
}

func testStore(t *testing.T) store.Config {
	t.Helper()
	keyDir := filepath.Join(t.TempDir(), store.MarkerDirName)
	if err := os.MkdirAll(keyDir, 0700); err != nil {
		t.Fatalf("Failed to create key dir: %v", err)
	}
	return store.Config{
		KeyDir:       keyDir,
		RegistryPath: filepath.Join(keyDir, store.RegistryName),
	}
}

func writeRegistry(t *testing.T, cfg store.Config, entries ...store.Entry) {
	t.Helper()
	for _, e := range entries {
		if err := cfg.AppendEntry(e); err != nil {
			t.Fatalf("Failed to append registry entry: %v", err)
		}
	}
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func removeFile(path string) error {
	return os.Remove(path)
}

func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("%s content = %q, want %q", path, data, want)
	}
}
