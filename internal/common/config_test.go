package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Pappers.BaseURL != "https://api.pappers.fr/v2" {
		t.Errorf("Expected Pappers base URL default, got %s", cfg.Pappers.BaseURL)
	}
	if cfg.Pappers.GetTimeout() != 30*time.Second {
		t.Errorf("Expected 30s timeout default, got %v", cfg.Pappers.GetTimeout())
	}
	if cfg.Auth.Token != "" {
		t.Error("Auth token must default to empty (public mode)")
	}
	if cfg.Server.Port == "" {
		t.Error("Expected a default port")
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pappers-mcp.toml")
	content := `
[server]
name = "Test-MCP"
port = "9999"

[pappers]
api_key = "file-key"
timeout = "10s"

[auth]
token = "file-secret"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Server.Name != "Test-MCP" || cfg.Server.Port != "9999" {
		t.Errorf("Server config not loaded: %+v", cfg.Server)
	}
	if cfg.Pappers.APIKey != "file-key" {
		t.Errorf("Expected api_key file-key, got %s", cfg.Pappers.APIKey)
	}
	if cfg.Pappers.GetTimeout() != 10*time.Second {
		t.Errorf("Expected 10s timeout, got %v", cfg.Pappers.GetTimeout())
	}
	if cfg.Auth.Token != "file-secret" {
		t.Errorf("Expected auth token from file, got %s", cfg.Auth.Token)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected debug level, got %s", cfg.Logging.Level)
	}
	// Unset file values keep defaults
	if cfg.Pappers.BaseURL != "https://api.pappers.fr/v2" {
		t.Errorf("Expected default base URL preserved, got %s", cfg.Pappers.BaseURL)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.toml"))
	if err != nil {
		t.Fatalf("Missing file should not error: %v", err)
	}
	if cfg.Server.Name != "Pappers-MCP" {
		t.Errorf("Expected defaults, got %+v", cfg.Server)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PAPPERS_API_KEY", "env-key")
	t.Setenv("PAPPERS_BASE_URL", "http://localhost:8080")
	t.Setenv("MCP_AUTH_TOKEN", "env-secret")
	t.Setenv("PAPPERS_MCP_PORT", "5555")
	t.Setenv("PAPPERS_LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Pappers.APIKey != "env-key" {
		t.Errorf("Expected env api key, got %s", cfg.Pappers.APIKey)
	}
	if cfg.Pappers.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected env base URL, got %s", cfg.Pappers.BaseURL)
	}
	if cfg.Auth.Token != "env-secret" {
		t.Errorf("Expected env auth token, got %s", cfg.Auth.Token)
	}
	if cfg.Server.Port != "5555" {
		t.Errorf("Expected env port, got %s", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected env log level, got %s", cfg.Logging.Level)
	}
}

func TestValidate_RequiresAPIKey(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("Expected validation failure without API key")
	}

	cfg.Pappers.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Unexpected validation error: %v", err)
	}
}

func TestPappersConfig_GetTimeout_Invalid(t *testing.T) {
	cfg := PappersConfig{Timeout: "not-a-duration"}
	if cfg.GetTimeout() != 30*time.Second {
		t.Errorf("Expected 30s fallback, got %v", cfg.GetTimeout())
	}
}
