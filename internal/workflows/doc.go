// Package workflows provides the orchestration behind each secretstore
// command.
//
// The cmd/ package stays a thin layer: parse flags, resolve the store
// config, call the workflow, format the result. Workflows take the resolved
// store.Config and a keyring.Client explicitly, so tests can run them
// against temporary directories and a fake client without touching a real
// keyring.
//
// Workflows return sentinel errors from internal/errors where the failure
// is a usage or precondition problem; gpg failures are wrapped and carry
// the tool's stderr verbatim. Every workflow is synchronous and
// run-to-completion; batches abort on the first failure.
package workflows
