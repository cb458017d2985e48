// Package configs manages the per-user TOML configuration.
//
// The config file lives at <UserConfigDir>/secretstore/config.toml and
// holds a stable user UUID for audit entries plus optional overrides for
// the gpg binary and the default export key name. Store-level state (the
// key directory and registry) is handled by internal/store, not here.
package configs
