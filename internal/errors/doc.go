// Package errors defines sentinel errors shared across secretstore packages.
//
// Workflows return these typed errors so the CLI layer can choose
// user-facing messages with errors.Is instead of string matching. External
// tool failures are not represented here; gpg's own stderr is wrapped and
// propagated verbatim.
package errors
