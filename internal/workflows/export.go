package workflows

import (
	"context"
	"fmt"
	"os"

	"secretstore/internal/audit"
	serrors "secretstore/internal/errors"
	"secretstore/internal/keyring"
	"secretstore/internal/store"
	"secretstore/internal/utils"
)

// ExportOptions configures the export workflow.
type ExportOptions struct {
	// KeyID selects the key in the local keyring. Passed through opaquely
	// to gpg; only emptiness is checked here.
	KeyID string

	// KeyName labels the exported key file and registry entry. Empty means
	// the configured default, falling back to username@hostname.
	KeyName string

	// DefaultKeyName is the user-configured fallback name, may be empty.
	DefaultKeyName string

	// Actor identifies the user in the audit trail.
	Actor string
}

// ExportResult describes a completed export.
type ExportResult struct {
	KeyID       string
	KeyName     string
	KeyFilePath string
}

// Export extracts a public key from the local keyring into the key
// directory and appends a registry line for it.
//
// The key file must not already exist; that guard forces explicit manual
// removal of stale entries rather than silent overwrites. The armored key
// is fetched into memory first, so a failed gpg export writes neither a
// partial key file nor a registry line.
func Export(ctx context.Context, cfg store.Config, client keyring.Client, opts ExportOptions) (*ExportResult, error) {
	if opts.KeyID == "" {
		return nil, serrors.ErrMissingKeyID
	}

	name := opts.KeyName
	if name == "" {
		name = opts.DefaultKeyName
	}
	if name == "" {
		var err error
		name, err = utils.DefaultKeyName()
		if err != nil {
			return nil, fmt.Errorf("deriving default key name: %w", err)
		}
	}

	if err := cfg.EnsureKeyDir(); err != nil {
		return nil, err
	}

	keyPath := cfg.KeyFilePath(name)
	if _, err := os.Stat(keyPath); err == nil {
		return nil, fmt.Errorf("%w: %s", serrors.ErrKeyFileExists, keyPath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking key file: %w", err)
	}

	armored, err := client.ExportKey(ctx, opts.KeyID)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(keyPath, armored, 0644); err != nil {
		return nil, fmt.Errorf("writing key file: %w", err)
	}

	if err := cfg.AppendEntry(store.Entry{KeyID: opts.KeyID, Name: name}); err != nil {
		return nil, err
	}

	entry := audit.New(opts.Actor, "export")
	entry.KeyID = opts.KeyID
	entry.KeyName = name
	audit.Log(cfg, entry)

	return &ExportResult{
		KeyID:       opts.KeyID,
		KeyName:     name,
		KeyFilePath: keyPath,
	}, nil
}
