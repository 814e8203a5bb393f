// Package config loads the adapter's settings from flags, environment,
// an optional config file, and the OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDir  = ".config/yapi-mcp"
	configFile = "config.json"

	// EnvBaseURL names the environment variable holding the registry base URL.
	EnvBaseURL = "YAPI_BASE_URL"
	// EnvToken names the environment variable holding the registry token.
	EnvToken = "YAPI_TOKEN"
)

// ErrTokenMissing is returned when no registry token can be resolved.
// The token is mandatory; the adapter refuses to start without it.
var ErrTokenMissing = errors.New("YAPI token not set: export " + EnvToken + " or run 'yapi-mcp auth set-token'")

// Config holds the adapter's settings. It is built once at process
// entry and never mutated afterwards.
type Config struct {
	// BaseURL is the YAPI registry base URL. Empty means relative
	// paths against the HTTP client's default resolution.
	BaseURL string

	// Token is the registry bearer credential. Required.
	Token string
}

// fileConfig is the on-disk shape of the config file. The token is
// deliberately absent: it lives in the environment or the keychain.
type fileConfig struct {
	BaseURL string `json:"baseUrl"`
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, configDir, configFile), nil
}

// Load resolves the configuration: environment first, then the config
// file at the default path, then the keychain for the token.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom resolves the configuration using the config file at a
// specific path. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	fc, err := readFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BaseURL: os.Getenv(EnvBaseURL),
		Token:   os.Getenv(EnvToken),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fc.BaseURL
	}
	if cfg.Token == "" {
		// Keychain errors are not fatal here; a missing token is
		// reported by Validate with an actionable message.
		if tok, err := StoredToken(); err == nil {
			cfg.Token = tok
		}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return cfg, nil
}

// Validate checks that mandatory settings are present.
func (c *Config) Validate() error {
	if c.Token == "" {
		return ErrTokenMissing
	}
	return nil
}

func readFile(path string) (*fileConfig, error) {
	path, err := expand(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &fileConfig{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &fc, nil
}

// SaveBaseURL writes the base URL to the config file atomically.
// Uses a temp file + rename pattern for atomic writes.
func SaveBaseURL(path, baseURL string) error {
	path, err := expand(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(&fileConfig{BaseURL: baseURL}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("rename config: %w", err)
	}

	return nil
}

// expand resolves a leading ~/ to the user's home directory.
func expand(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
