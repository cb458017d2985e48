package utils

import (
	"os"
	"os/user"
)

// GetUsername returns the current username.
func GetUsername() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// GetHostname returns the system hostname.
func GetHostname() (string, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return "", err
	}
	return hostname, nil
}

// DefaultKeyName derives the key name used when export is given none:
// username@hostname. It is a convenience default, not a uniqueness
// guarantee.
func DefaultKeyName() (string, error) {
	username, err := GetUsername()
	if err != nil {
		return "", err
	}
	hostname, err := GetHostname()
	if err != nil {
		return "", err
	}
	return username + "@" + hostname, nil
}
