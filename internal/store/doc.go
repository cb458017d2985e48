// Package store resolves the key directory and maintains the keylist
// registry.
//
// The key directory is a marker directory (.secretstore) holding exported
// public keys and the registry, found by searching upward from the working
// directory. All paths live in an explicit Config value passed into every
// operation; nothing in this package keeps process-wide state.
//
// The registry is an append-only text file of "<key-id> <name>" lines. It
// is never compacted, rewritten, or checked for duplicates.
package store
