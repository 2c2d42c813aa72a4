package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AIPIM_MODEL", "")
	t.Setenv("AIPIM_BASE_URL", "")
	t.Setenv("AIPIM_LISTEN", "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Model != "gpt-4o" {
		t.Errorf("expected default model gpt-4o, got %q", cfg.Model)
	}
	if cfg.Listen != ":3000" {
		t.Errorf("expected default listen :3000, got %q", cfg.Listen)
	}
	if cfg.BaseURL != "" {
		t.Errorf("expected empty base URL, got %q", cfg.BaseURL)
	}
}

func TestLoadFromYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("model: claude-3-5-sonnet\nbase_url: http://localhost:8080\nlisten: \":4000\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Model != "claude-3-5-sonnet" {
		t.Errorf("expected model from file, got %q", cfg.Model)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("expected base URL from file, got %q", cfg.BaseURL)
	}
	if cfg.Listen != ":4000" {
		t.Errorf("expected listen from file, got %q", cfg.Listen)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("model: gemini-2.0-flash\n"), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	t.Setenv("AIPIM_MODEL", "deepseek-chat")
	t.Setenv("AIPIM_LISTEN", ":9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Model != "deepseek-chat" {
		t.Errorf("expected env override for model, got %q", cfg.Model)
	}
	if cfg.Listen != ":9999" {
		t.Errorf("expected env override for listen, got %q", cfg.Listen)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("model: [unclosed"), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
