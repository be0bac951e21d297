package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if !cfg.Diagnostics.Color {
		t.Fatalf("expected color on by default")
	}
	if cfg.Diagnostics.Context != 2 {
		t.Fatalf("expected 2 context lines, got %d", cfg.Diagnostics.Context)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected info level, got %q", cfg.Logging.Level)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "skein.toml", `
[diagnostics]
color = false
context = 5

[logging]
level = "debug"
file = "skein.log"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Diagnostics.Color {
		t.Fatalf("expected color off")
	}
	if cfg.Diagnostics.Context != 5 {
		t.Fatalf("expected 5 context lines, got %d", cfg.Diagnostics.Context)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "skein.log" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "skein.yaml", `
diagnostics:
  color: false
logging:
  level: warn
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Diagnostics.Color {
		t.Fatalf("expected color off")
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected warn level, got %q", cfg.Logging.Level)
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "skein.ini", "x = 1")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for unsupported format")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	if _, ok := Discover(dir); ok {
		t.Fatalf("expected no config in empty dir")
	}

	writeFile(t, dir, "skein.yaml", "")
	path, ok := Discover(dir)
	if !ok || filepath.Base(path) != "skein.yaml" {
		t.Fatalf("expected skein.yaml, got %q (%v)", path, ok)
	}

	// TOML wins when both exist.
	writeFile(t, dir, "skein.toml", "")
	path, ok = Discover(dir)
	if !ok || filepath.Base(path) != "skein.toml" {
		t.Fatalf("expected skein.toml, got %q (%v)", path, ok)
	}
}
