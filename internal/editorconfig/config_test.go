package editorconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaxLineLen != 80 {
		t.Errorf("expected MaxLineLen 80, got %d", cfg.MaxLineLen)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got %v", err)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected Default(), got %+v", cfg)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	contents := "max_line_len = 120\ntab_width = 2\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxLineLen != 120 {
		t.Errorf("expected MaxLineLen 120, got %d", cfg.MaxLineLen)
	}
	if cfg.TabWidth != 2 {
		t.Errorf("expected TabWidth 2, got %d", cfg.TabWidth)
	}
	if cfg.MaxLineCount != Default().MaxLineCount {
		t.Errorf("expected MaxLineCount to keep its default, got %d", cfg.MaxLineCount)
	}
}

func TestLoadRejectsZeroValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(path, []byte("max_line_len = 0\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for max_line_len = 0")
	}
}
