package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gravitrone/bugform/internal/api"
)

// EnvServer overrides the configured server URL.
const EnvServer = "BUGFORM_SERVER"

// Config holds CLI configuration stored at ~/.bugform/config.
type Config struct {
	ServerURL      string `yaml:"server_url"`
	APIKey         string `yaml:"api_key,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
	RetryMax       int    `yaml:"retry_max,omitempty"`
	Theme          string `yaml:"theme,omitempty"`
	VimKeys        bool   `yaml:"vim_keys"`
	LogPath        string `yaml:"log_path,omitempty"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		ServerURL:      api.DefaultBaseURL,
		TimeoutSeconds: int(api.DefaultTimeout / time.Second),
		Theme:          "dark",
	}
}

// Dir returns the bugform state directory.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".bugform")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config")
}

// Load reads and parses the config file. Returns error if missing or insecure.
// A missing file is reported with an error wrapping os.ErrNotExist.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault returns the stored config, or defaults when none exists.
// Other load errors are returned as-is.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Validate checks the server URL and numeric limits.
func (c *Config) Validate() error {
	url := strings.TrimSpace(c.ServerURL)
	if url == "" {
		return fmt.Errorf("config missing server_url")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("server_url must start with http:// or https://")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative")
	}
	if c.RetryMax < 0 {
		return fmt.Errorf("retry_max must not be negative")
	}
	return nil
}

// Server returns the effective server URL, honouring BUGFORM_SERVER.
func (c *Config) Server() string {
	if v := strings.TrimSpace(os.Getenv(EnvServer)); v != "" {
		return v
	}
	return c.ServerURL
}

// Timeout returns the per-request timeout.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return api.DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ResolvedLogPath returns where the log file is written.
func (c *Config) ResolvedLogPath() string {
	if c.LogPath == "" {
		return filepath.Join(Dir(), "bugform.log")
	}
	if strings.HasPrefix(c.LogPath, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, c.LogPath[2:])
	}
	return c.LogPath
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
