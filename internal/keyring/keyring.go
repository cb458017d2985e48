package keyring

import "context"

// Client is the narrow surface of the external keyring tool. Workflows
// depend on this interface so they can be tested against a fake without
// invoking real cryptography.
type Client interface {
	// ExportKey returns the armored public key for keyID from the local
	// keyring. The caller writes it to disk, so a failed export leaves no
	// partial key file behind.
	ExportKey(ctx context.Context, keyID string) ([]byte, error)

	// ImportKey loads the public key file at path into the local keyring.
	// Importing an already-known key is a no-op for the tool.
	ImportKey(ctx context.Context, path string) error

	// EncryptTo encrypts inPath to outPath for all recipient key ids at
	// once; any one matching private key can decrypt the result.
	EncryptTo(ctx context.Context, recipients []string, inPath, outPath string) error

	// Decrypt decrypts inPath to outPath using whatever private keys the
	// local keyring holds. No key selection happens on this side.
	Decrypt(ctx context.Context, inPath, outPath string) error
}
