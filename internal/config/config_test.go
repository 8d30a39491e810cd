package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	fobini "github.com/fobiniyen/fobini-go"
)

func TestSetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()

	if cfg.API.BaseURL != fobini.DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != fobini.DefaultTimeout {
		t.Errorf("expected default timeout, got %v", cfg.API.Timeout)
	}
	if cfg.Keystore.Path == "" {
		t.Error("expected a default keystore path")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %q", cfg.LogLevel)
	}
}

func TestSetDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		API:      APIConfig{BaseURL: "https://staging.example.com", Timeout: 5 * time.Second},
		Keystore: KeystoreConfig{Path: "/tmp/ks.json"},
		LogLevel: "debug",
	}
	cfg.SetDefaults()

	if cfg.API.BaseURL != "https://staging.example.com" {
		t.Errorf("explicit base URL overwritten: %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("explicit timeout overwritten: %v", cfg.API.Timeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("explicit log level overwritten: %q", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := Config{}
		cfg.SetDefaults()
		return cfg
	}

	t.Run("defaults pass", func(t *testing.T) {
		cfg := valid()
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("trailing slash rejected", func(t *testing.T) {
		cfg := valid()
		cfg.API.BaseURL = "https://api.example.com/"
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "api.base_url") {
			t.Errorf("expected api.base_url error, got %v", err)
		}
	})

	t.Run("non-http scheme rejected", func(t *testing.T) {
		cfg := valid()
		cfg.API.BaseURL = "ftp://api.example.com"
		if err := cfg.Validate(); err == nil {
			t.Error("expected an error for a non-http scheme")
		}
	})

	t.Run("missing base url rejected", func(t *testing.T) {
		cfg := valid()
		cfg.API.BaseURL = ""
		if err := cfg.Validate(); err == nil {
			t.Error("expected an error for a missing base URL")
		}
	})

	t.Run("bad log level rejected", func(t *testing.T) {
		cfg := valid()
		cfg.LogLevel = "verbose"
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "log_level") {
			t.Errorf("expected log_level error, got %v", err)
		}
	})

	t.Run("negative timeout rejected", func(t *testing.T) {
		cfg := valid()
		cfg.API.Timeout = -time.Second
		if err := cfg.Validate(); err == nil {
			t.Error("expected an error for a negative timeout")
		}
	})
}

func TestFindConfigFileInPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fobini.yaml")
	if err := os.WriteFile(path, []byte("log_level: debug\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if got := findConfigFileInPaths([]string{t.TempDir(), dir}); got != path {
		t.Errorf("expected %s, got %s", path, got)
	}
	if got := findConfigFileInPaths([]string{t.TempDir()}); got != "" {
		t.Errorf("expected no match, got %s", got)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, "fobini.yaml")
	content := "api:\n  base_url: https://staging.example.com\n  timeout: 30s\nlog_level: warn\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	InitViper(path)
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "https://staging.example.com" {
		t.Errorf("expected staging base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.API.Timeout)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected warn, got %q", cfg.LogLevel)
	}
	// Unset fields fall back to defaults.
	if cfg.Keystore.Path == "" {
		t.Error("expected default keystore path")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("FOBINI_API_BASE_URL", "https://env.example.com")
	t.Setenv("FOBINI_LOG_LEVEL", "error")

	dir := t.TempDir()
	path := filepath.Join(dir, "fobini.yaml")
	if err := os.WriteFile(path, []byte("log_level: info\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	InitViper(path)
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "https://env.example.com" {
		t.Errorf("expected env override, got %q", cfg.API.BaseURL)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("expected env override for log level, got %q", cfg.LogLevel)
	}
}
