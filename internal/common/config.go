// Package common provides shared configuration, logging, and version
// utilities for the Pappers MCP server.
package common

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the Pappers MCP server.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Pappers PappersConfig `toml:"pappers"`
	Auth    AuthConfig    `toml:"auth"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// PappersConfig holds Pappers API client configuration.
type PappersConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration.
func (c *PappersConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// AuthConfig holds the optional shared-secret gate configuration.
// An empty token disables the gate entirely (public mode).
type AuthConfig struct {
	Token string `toml:"token"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Format     string   `toml:"format"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "Pappers-MCP",
			Port: "4270",
		},
		Pappers: PappersConfig{
			BaseURL: "https://api.pappers.fr/v2",
			Timeout: "30s",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			Outputs:    []string{"console"},
			FilePath:   "logs/pappers-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// Validate checks that mandatory settings are present. The Pappers API key is
// the only fatal omission: without it every upstream call would be rejected.
func (c *Config) Validate() error {
	if c.Pappers.APIKey == "" {
		return fmt.Errorf("PAPPERS_API_KEY environment variable is required")
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if key := os.Getenv("PAPPERS_API_KEY"); key != "" {
		config.Pappers.APIKey = key
	}

	if base := os.Getenv("PAPPERS_BASE_URL"); base != "" {
		config.Pappers.BaseURL = base
	}

	if token := os.Getenv("MCP_AUTH_TOKEN"); token != "" {
		config.Auth.Token = token
	}

	if port := os.Getenv("PAPPERS_MCP_PORT"); port != "" {
		config.Server.Port = port
	}

	if level := os.Getenv("PAPPERS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}
