package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/filegrid/filegrid/internal/browser"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Missing file must not error: %v", err)
	}
	if cfg.Options.DisableSelection {
		t.Errorf("Demo defaults enable selection")
	}
	if !cfg.Options.FoldersFirst || !cfg.Options.ShowHidden {
		t.Errorf("Unexpected defaults: %+v", cfg.Options)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
show_hidden = false
sort_by = "size"
sort_order = "desc"
debug_log = "/tmp/filegrid.log"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Options.ShowHidden {
		t.Errorf("show_hidden should be off")
	}
	if !cfg.Options.FoldersFirst {
		t.Errorf("Unset toggles keep their default")
	}
	if cfg.SortProperty != browser.SortBySize || cfg.SortOrder != browser.SortDescending {
		t.Errorf("Sort config not applied: %v %v", cfg.SortProperty, cfg.SortOrder)
	}
	if cfg.DebugLog != "/tmp/filegrid.log" {
		t.Errorf("debug_log not applied: %q", cfg.DebugLog)
	}
}

func TestLoadRejectsUnknownSort(t *testing.T) {
	path := writeConfig(t, `sort_by = "color"`)
	if _, err := Load(path); err == nil {
		t.Errorf("Expected an error for unknown sort_by")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeConfig(t, `sort_by = [`)
	if _, err := Load(path); err == nil {
		t.Errorf("Expected an error for malformed TOML")
	}
}
