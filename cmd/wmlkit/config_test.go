package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCLIConfigDefaults(t *testing.T) {
	t.Setenv("WMLKIT_CONFIG", "")
	t.Setenv("WMLKIT_LOG_LEVEL", "")
	t.Setenv("WMLKIT_NORMALIZE_TEXT", "")

	cfg, err := loadCLIConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Codec.LogLevel != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Codec.LogLevel)
	}
	if !cfg.Codec.NormalizeText {
		t.Fatal("expected text normalization enabled by default")
	}
	if cfg.PrettyJSON {
		t.Fatal("expected compact JSON by default")
	}
	if cfg.SliceUnits != 1 || cfg.StreamStep != 1 {
		t.Fatalf("unexpected unit defaults: %d/%d", cfg.SliceUnits, cfg.StreamStep)
	}
}

func TestLoadCLIConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wmlkit.toml")
	content := `
log_level = "debug"
normalize_text = false
pretty_json = true
slice_units = 5
stream_step = 3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadCLIConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Codec.LogLevel != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.Codec.LogLevel)
	}
	if cfg.Codec.NormalizeText {
		t.Fatal("expected text normalization disabled")
	}
	if !cfg.PrettyJSON {
		t.Fatal("expected pretty JSON enabled")
	}
	if cfg.SliceUnits != 5 {
		t.Fatalf("unexpected slice units: %d", cfg.SliceUnits)
	}
	if cfg.StreamStep != 3 {
		t.Fatalf("unexpected stream step: %d", cfg.StreamStep)
	}
}

func TestLoadCLIConfigPartialOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wmlkit.toml")
	if err := os.WriteFile(path, []byte(`log_level = "warn"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadCLIConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Codec.LogLevel != "warn" {
		t.Fatalf("unexpected log level: %q", cfg.Codec.LogLevel)
	}
	// Keys absent from the file keep their defaults.
	if !cfg.Codec.NormalizeText {
		t.Fatal("expected text normalization still enabled")
	}
	if cfg.SliceUnits != 1 {
		t.Fatalf("unexpected slice units: %d", cfg.SliceUnits)
	}
}

func TestLoadCLIConfigFromEnvPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wmlkit.toml")
	if err := os.WriteFile(path, []byte(`pretty_json = true`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("WMLKIT_CONFIG", path)

	cfg, err := loadCLIConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.PrettyJSON {
		t.Fatal("expected pretty JSON from env-located config")
	}
}

func TestLoadCLIConfigRejectsBadUnits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wmlkit.toml")
	if err := os.WriteFile(path, []byte(`slice_units = 0`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadCLIConfig(path); err == nil {
		t.Fatal("expected error for non-positive slice_units")
	}
}
