package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// UserConfig is the per-user configuration stored under the OS config
// directory. It is independent of which store the user is working in.
type UserConfig struct {
	User User `toml:"user"`
	GPG  GPG  `toml:"gpg"`
}

type User struct {
	// UUID is a stable identifier for this user, generated on first run
	// and recorded in audit entries.
	UUID string `toml:"user_uuid"`

	// DefaultKeyName, when set, overrides the username@hostname default
	// used by export when no name argument is given.
	DefaultKeyName string `toml:"default_key_name,omitempty"`
}

type GPG struct {
	// Binary overrides the gpg executable name or path.
	Binary string `toml:"binary,omitempty"`
}

// ConfigPath returns the user config file path. The directory may not
// exist yet.
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting config directory: %w", err)
	}
	return filepath.Join(configDir, "secretstore", "config.toml"), nil
}

// LoadUserConfig loads the user configuration, returning an empty config
// when the file does not exist.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return loadUserConfigFrom(configPath)
}

func loadUserConfigFrom(configPath string) (*UserConfig, error) {
	config := &UserConfig{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}
	return config, nil
}

// SaveUserConfig writes the user configuration back to the config file.
func SaveUserConfig(config *UserConfig) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}
	return nil
}

// EnsureUserConfig loads the user configuration and guarantees it carries a
// UUID, generating and persisting one on first run.
func EnsureUserConfig() (*UserConfig, error) {
	config, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}

	if config.User.UUID == "" {
		config.User.UUID = uuid.New().String()
		if err := SaveUserConfig(config); err != nil {
			return nil, fmt.Errorf("failed to save user config: %w", err)
		}
	}

	return config, nil
}
