package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigPrecedence(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")
	configContent := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  timeout: "1m"
  log_level: "debug"
checksec:
  path: "/usr/local/bin/checksec"
`)
	if err := os.WriteFile(configPath, configContent, 0644); err != nil {
		t.Fatal(err)
	}

	// Set environment variables (should override config file)
	os.Setenv("KCONFIG_SCOPE_SERVER_PORT", "9091")
	os.Setenv("KCONFIG_SCOPE_CHECKSEC_PATH", "/opt/checksec")
	defer os.Unsetenv("KCONFIG_SCOPE_SERVER_PORT")
	defer os.Unsetenv("KCONFIG_SCOPE_CHECKSEC_PATH")

	// Load the configuration
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatal(err)
	}

	// Test config file values
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("expected host 127.0.0.1, got %s", cfg.Server.Host)
	}

	// Test environment variable override
	if cfg.Server.Port != 9091 {
		t.Errorf("expected port 9091, got %d", cfg.Server.Port)
	}

	// Test duration parsing
	expectedTimeout := time.Minute
	if cfg.Server.Timeout != expectedTimeout {
		t.Errorf("expected timeout %v, got %v", expectedTimeout, cfg.Server.Timeout)
	}

	// Test checksec config
	if cfg.Checksec.Path != "/opt/checksec" {
		t.Errorf("expected checksec path /opt/checksec, got %s", cfg.Checksec.Path)
	}
}

func TestDefaultValues(t *testing.T) {
	// Load config without any file or env vars
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	// Test default values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.LogLevel != "info" {
		t.Errorf("expected log level info, got %s", cfg.Server.LogLevel)
	}
	if cfg.Checksec.Path != "checksec" {
		t.Errorf("expected checksec path checksec, got %s", cfg.Checksec.Path)
	}
}

func TestConfigFileValidation(t *testing.T) {
	// Test non-existent config file
	_, err := Load("nonexistent.yml")
	if err == nil {
		t.Error("expected error for non-existent config file")
	}

	// Test invalid config file path
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid/config.yml")
	_, err = Load(configPath)
	if err == nil {
		t.Error("expected error for invalid config file path")
	}
}

func TestInvalidValues(t *testing.T) {
	// Create config with invalid values
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")
	configContent := []byte(`
server:
  port: "invalid"
  timeout: "invalid"
`)
	if err := os.WriteFile(configPath, configContent, 0644); err != nil {
		t.Fatal(err)
	}

	// Test invalid port
	_, err := Load(configPath)
	if err == nil {
		t.Error("expected error for invalid config values")
	}
}

func TestConfigPathEnvVar(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")
	configContent := []byte(`
server:
  port: 7070
`)
	if err := os.WriteFile(configPath, configContent, 0644); err != nil {
		t.Fatal(err)
	}

	os.Setenv(KconfigScopeConfigPathEnvVar, configPath)
	defer os.Unsetenv(KconfigScopeConfigPathEnvVar)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("expected port 7070 from env config path, got %d", cfg.Server.Port)
	}

	// Pointing the env var at a missing file is an error
	os.Setenv(KconfigScopeConfigPathEnvVar, filepath.Join(tmpDir, "missing.yml"))
	if _, err := Load(""); err == nil {
		t.Error("expected error for missing env config file")
	}
}
