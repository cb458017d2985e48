package workflows

import (
	"context"
	"fmt"
	"strings"

	"secretstore/internal/audit"
	"secretstore/internal/keyring"
	"secretstore/internal/store"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Patterns are the file arguments, literal paths or globs. Every
	// resolved file must carry the ciphertext suffix.
	Patterns []string

	// Actor identifies the user in the audit trail.
	Actor string
}

// DecryptResult describes a completed decryption batch.
type DecryptResult struct {
	// Decrypted lists the plaintext files produced, in input order.
	Decrypted []string
}

// Decrypt reproduces the plaintext for each ciphertext input, writing to
// the input name with the suffix stripped. Which private key unlocks a file
// is gpg's business: it tries everything in the local keyring.
//
// Sequential, abort-on-first-failure, same batch semantics as Encrypt.
// Ciphertext inputs are left untouched.
func Decrypt(ctx context.Context, cfg store.Config, client keyring.Client, opts DecryptOptions) (*DecryptResult, error) {
	files, err := store.ResolveFiles(opts.Patterns, true)
	if err != nil {
		return nil, err
	}

	result := &DecryptResult{}
	for _, in := range files {
		out := strings.TrimSuffix(in, store.CipherSuffix)
		if err := client.Decrypt(ctx, in, out); err != nil {
			return result, fmt.Errorf("decrypting %s: %w", in, err)
		}
		result.Decrypted = append(result.Decrypted, out)
	}

	entry := audit.New(opts.Actor, "decrypt")
	entry.Files = result.Decrypted
	entry.FilesCount = len(result.Decrypted)
	audit.Log(cfg, entry)

	return result, nil
}
