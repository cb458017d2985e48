package keyring

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	serrors "secretstore/internal/errors"
)

// DefaultBinary is the gpg executable looked up on PATH when the user
// config does not override it.
const DefaultBinary = "gpg"

// GPG shells out to a GnuPG binary. The tool is expected to be on PATH and
// already configured with the user's own keypair; a hung gpg call hangs the
// operation unless the context carries a deadline.
type GPG struct {
	Binary string
}

// NewGPG returns a GPG client for the given binary, falling back to
// DefaultBinary when empty.
func NewGPG(binary string) *GPG {
	if binary == "" {
		binary = DefaultBinary
	}
	return &GPG{Binary: binary}
}

// LookPath reports where the configured binary resolves on PATH.
func (g *GPG) LookPath() (string, error) {
	return exec.LookPath(g.Binary)
}

func (g *GPG) ExportKey(ctx context.Context, keyID string) ([]byte, error) {
	out, err := g.run(ctx, "--armor", "--export", keyID)
	if err != nil {
		return nil, err
	}
	// gpg exits 0 for an unknown key id and just writes nothing.
	if len(bytes.TrimSpace(out)) == 0 {
		return nil, fmt.Errorf("%w: %s", serrors.ErrKeyNotFound, keyID)
	}
	return out, nil
}

func (g *GPG) ImportKey(ctx context.Context, path string) error {
	_, err := g.run(ctx, "--import", path)
	return err
}

func (g *GPG) EncryptTo(ctx context.Context, recipients []string, inPath, outPath string) error {
	// Imported team keys are unsigned, so skip the web-of-trust check.
	args := []string{"--batch", "--yes", "--trust-model", "always", "--output", outPath}
	for _, id := range recipients {
		args = append(args, "--recipient", id)
	}
	args = append(args, "--encrypt", inPath)

	_, err := g.run(ctx, args...)
	return err
}

func (g *GPG) Decrypt(ctx context.Context, inPath, outPath string) error {
	_, err := g.run(ctx, "--batch", "--yes", "--output", outPath, "--decrypt", inPath)
	return err
}

// run executes the binary, returning stdout. On failure the tool's stderr
// is propagated verbatim inside the error.
func (g *GPG) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, g.Binary, args...)
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("%s %s: %w", g.Binary, args[0], err)
		}
		return nil, fmt.Errorf("%s %s: %w: %s", g.Binary, args[0], err, msg)
	}
	return stdout.Bytes(), nil
}
