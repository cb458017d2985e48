package workflows

import (
	"context"
	"fmt"

	"secretstore/internal/audit"
	serrors "secretstore/internal/errors"
	"secretstore/internal/keyring"
	"secretstore/internal/store"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// Patterns are the file arguments, literal paths or globs.
	Patterns []string

	// Actor identifies the user in the audit trail.
	Actor string
}

// EncryptResult describes a completed encryption batch.
type EncryptResult struct {
	// Encrypted lists the ciphertext files produced, in input order.
	Encrypted []string

	// Recipients are the key ids every file was encrypted to.
	Recipients []string
}

// Encrypt produces <input>.gpg for each input, encrypted to every key id in
// the registry at once, so any one matching private key can decrypt it.
//
// All preconditions are checked before the first gpg invocation: every
// input must exist and the registry must exist with at least one entry.
// Files are processed sequentially in argument order; the first failure
// aborts the rest of the batch. Plaintext inputs are never touched.
func Encrypt(ctx context.Context, cfg store.Config, client keyring.Client, opts EncryptOptions) (*EncryptResult, error) {
	files, err := store.ResolveFiles(opts.Patterns, false)
	if err != nil {
		return nil, err
	}

	entries, err := cfg.ReadRegistry()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, serrors.ErrRegistryEmpty
	}
	recipients := store.Recipients(entries)

	result := &EncryptResult{Recipients: recipients}
	for _, in := range files {
		out := in + store.CipherSuffix
		if err := client.EncryptTo(ctx, recipients, in, out); err != nil {
			return result, fmt.Errorf("encrypting %s: %w", in, err)
		}
		result.Encrypted = append(result.Encrypted, out)
	}

	entry := audit.New(opts.Actor, "encrypt")
	entry.Files = result.Encrypted
	entry.FilesCount = len(result.Encrypted)
	entry.Recipients = len(recipients)
	audit.Log(cfg, entry)

	return result, nil
}
