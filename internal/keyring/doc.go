// Package keyring wraps the external GnuPG tool behind a narrow Client
// interface.
//
// secretstore implements no cryptography of its own: exporting, importing,
// encrypting, and decrypting are all delegated to gpg subprocesses. The
// interface exists so the orchestration in internal/workflows can be tested
// against a fake client.
package keyring
