package config

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	// keyringService is the service name used in the system keychain.
	keyringService = "yapi-mcp"

	// keyringTokenKey is the key the registry token is stored under.
	keyringTokenKey = "token"
)

// StoredToken retrieves the registry token from the system keychain.
// Returns an empty string if no token is stored.
func StoredToken() (string, error) {
	tok, err := keyring.Get(keyringService, keyringTokenKey)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", nil
		}
		return "", fmt.Errorf("keyring get: %w", err)
	}
	return tok, nil
}

// StoreToken saves the registry token in the system keychain.
func StoreToken(token string) error {
	if err := keyring.Set(keyringService, keyringTokenKey, token); err != nil {
		return fmt.Errorf("keyring set: %w", err)
	}
	return nil
}

// ClearToken removes the registry token from the system keychain.
// Clearing an absent token is not an error.
func ClearToken() error {
	if err := keyring.Delete(keyringService, keyringTokenKey); err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("keyring delete: %w", err)
	}
	return nil
}
