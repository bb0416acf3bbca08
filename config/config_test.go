package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(WithFileSystem(&mockFS{}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Name != "langflow-gateway" {
		t.Errorf("expected default name, got %q", cfg.Name)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected development environment, got %q", cfg.Environment)
	}
	if !cfg.Debug {
		t.Error("expected debug=true for development")
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Langflow.BaseURL != "http://localhost:7860" {
		t.Errorf("expected default base url, got %q", cfg.Langflow.BaseURL)
	}
	if cfg.Langflow.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Langflow.Timeout)
	}
	if cfg.Langflow.MaxRetries != 3 {
		t.Errorf("expected 3 retries, got %d", cfg.Langflow.MaxRetries)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
name: my-gateway
environment: staging
server:
  port: 9000
langflow:
  base_url: http://langflow.internal:7860
  timeout: 10s
  max_retries: 5
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(WithConfigFile(configPath), WithEnvFile("/nonexistent/.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Name != "my-gateway" {
		t.Errorf("expected name my-gateway, got %q", cfg.Name)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Langflow.BaseURL != "http://langflow.internal:7860" {
		t.Errorf("unexpected base url %q", cfg.Langflow.BaseURL)
	}
	if cfg.Langflow.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.Langflow.Timeout)
	}
	if cfg.Langflow.MaxRetries != 5 {
		t.Errorf("expected 5 retries, got %d", cfg.Langflow.MaxRetries)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
langflow:
  base_url: http://from-yaml:7860
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("LANGFLOW_BASE_URL", "http://from-env:7860")

	cfg, err := Load(WithConfigFile(configPath), WithEnvFile("/nonexistent/.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Langflow.BaseURL != "http://from-env:7860" {
		t.Errorf("expected env override, got %q", cfg.Langflow.BaseURL)
	}
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("environment: nowhere\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Load(WithConfigFile(configPath), WithEnvFile("/nonexistent/.env"))
	if err == nil {
		t.Fatal("expected error for invalid environment")
	}
	if !strings.Contains(err.Error(), "environment must be one of") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	yamlContent := `
langflow:
  base_url: "not a url"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Load(WithConfigFile(configPath), WithEnvFile("/nonexistent/.env"))
	if err == nil {
		t.Fatal("expected error for invalid base url")
	}
	if !strings.Contains(err.Error(), "langflow") {
		t.Errorf("expected langflow section in error, got %v", err)
	}
}

func TestFindFile(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"./config.yml": true}}
	got := findFile(fs, configSearchPaths)
	if got != "./config.yml" {
		t.Errorf("expected ./config.yml, got %q", got)
	}

	if got := findFile(&mockFS{}, configSearchPaths); got != "" {
		t.Errorf("expected no match, got %q", got)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	variants := envKeyVariants("LANGFLOW_BASE_URL")

	want := map[string]bool{
		"langflow.base_url": false,
		"langflow.base.url": false,
	}
	for _, v := range variants {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("missing variant %q in %v", k, variants)
		}
	}
}
