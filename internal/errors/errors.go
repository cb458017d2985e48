package errors

import "errors"

// Store state errors indicate problems with the key directory or registry.
var (
	// ErrRegistryNotFound indicates the keylist file does not exist yet.
	ErrRegistryNotFound = errors.New("registry file not found")

	// ErrRegistryEmpty indicates the keylist file exists but has no entries.
	ErrRegistryEmpty = errors.New("registry contains no entries")

	// ErrKeyFileExists indicates a public key file with that name is already
	// present. Recovery is manual: remove the file and its keylist line.
	ErrKeyFileExists = errors.New("key file already exists")

	// ErrNoPublicKeys indicates the key directory holds no .pub files.
	ErrNoPublicKeys = errors.New("no public key files found")
)

// Input errors indicate problems with user-supplied files or arguments.
var (
	// ErrFileNotFound indicates a named input file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrNotCiphertext indicates a decrypt input does not carry the
	// ciphertext suffix, so the output name would collide with the input.
	ErrNotCiphertext = errors.New("file does not have the ciphertext suffix")

	// ErrMissingKeyID indicates the export key id argument was empty.
	ErrMissingKeyID = errors.New("key id is required")
)

// External tool errors.
var (
	// ErrKeyNotFound indicates gpg produced no output for the requested key
	// id, meaning the key is not in the local keyring.
	ErrKeyNotFound = errors.New("key not found in local keyring")
)
