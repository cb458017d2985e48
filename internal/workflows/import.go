package workflows

import (
	"context"
	"fmt"
	"os"

	"secretstore/internal/audit"
	"secretstore/internal/keyring"
	"secretstore/internal/store"
)

// ImportOptions configures the import workflow.
type ImportOptions struct {
	// Actor identifies the user in the audit trail.
	Actor string
}

// ImportResult describes a completed import.
type ImportResult struct {
	// Imported lists the key files loaded, in directory-listing order.
	Imported []string

	// Warnings lists files that did not look like armored public keys but
	// were handed to gpg anyway.
	Warnings []string
}

// Import loads every .pub file in the key directory into the local keyring.
//
// The batch aborts on the first gpg failure, propagating that file's error;
// keys already imported stay imported. Import order carries no meaning, and
// re-importing a known key is idempotent on the gpg side.
func Import(ctx context.Context, cfg store.Config, client keyring.Client, opts ImportOptions) (*ImportResult, error) {
	files, err := cfg.ListPublicKeyFiles()
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for _, path := range files {
		if data, err := os.ReadFile(path); err == nil {
			if err := keyring.CheckArmoredPublicKey(data); err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", path, err))
			}
		}

		if err := client.ImportKey(ctx, path); err != nil {
			return result, fmt.Errorf("importing %s: %w", path, err)
		}
		result.Imported = append(result.Imported, path)
	}

	entry := audit.New(opts.Actor, "import")
	entry.FilesCount = len(result.Imported)
	audit.Log(cfg, entry)

	return result, nil
}
