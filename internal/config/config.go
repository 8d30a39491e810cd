// Package config provides configuration loading for the fobini CLI.
//
// Configuration is file-based (fobini.yaml) with FOBINI_-prefixed
// environment variable overrides. The keystore passphrase is deliberately
// env-only: it never lives in the config file.
package config

import (
	"os"
	"path/filepath"
	"time"

	fobini "github.com/fobiniyen/fobini-go"
)

// Config is the top-level configuration for the fobini CLI.
type Config struct {
	// API configures the client transport.
	API APIConfig `yaml:"api" mapstructure:"api"`

	// Keystore configures where credentials are persisted.
	Keystore KeystoreConfig `yaml:"keystore" mapstructure:"keystore"`

	// LogLevel controls slog verbosity: debug, info, warn, or error.
	LogLevel string `yaml:"log_level" mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// APIConfig configures the API client.
type APIConfig struct {
	// BaseURL is the API origin, e.g. "https://tech-brain-api.onrender.com".
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,api_origin"`

	// Timeout is the uniform per-request timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// KeystoreConfig configures the credential store.
type KeystoreConfig struct {
	// Path is the secrets file location.
	Path string `yaml:"path" mapstructure:"path" validate:"required"`

	// Passphrase protects the keystore when set. Env-only
	// (FOBINI_KEYSTORE_PASSPHRASE); excluded from YAML output.
	Passphrase string `yaml:"-" mapstructure:"passphrase"`
}

// SetDefaults fills in default values for optional fields.
func (c *Config) SetDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = fobini.DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = fobini.DefaultTimeout
	}
	if c.Keystore.Path == "" {
		c.Keystore.Path = DefaultKeystorePath()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// DefaultKeystorePath returns the standard credentials file location under
// the user's home directory.
func DefaultKeystorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".fobini", "credentials.json")
	}
	return filepath.Join(home, ".fobini", "credentials.json")
}
