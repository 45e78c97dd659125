// Package config loads the demo host's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/filegrid/filegrid/internal/browser"
)

// File mirrors the on-disk TOML shape. Pointer fields distinguish "absent"
// from "explicitly false" so the documented defaults survive a partial file.
type File struct {
	ShowHidden       *bool  `toml:"show_hidden"`
	FoldersFirst     *bool  `toml:"folders_first"`
	ShowExtensions   *bool  `toml:"show_extensions"`
	ConfirmDeletions *bool  `toml:"confirm_deletions"`
	DisableSelection *bool  `toml:"disable_selection"`
	SortBy           string `toml:"sort_by"`
	SortOrder        string `toml:"sort_order"`
	DebugLog         string `toml:"debug_log"`
}

// Config is the resolved configuration used by the application.
type Config struct {
	Options      browser.Options
	SortProperty browser.SortProperty
	SortOrder    browser.SortOrder
	DebugLog     string
}

// Default returns the configuration used when no file exists. Unlike the
// widget's own defaults, the demo enables selection: a browser you cannot
// select in is not much of a demo.
func Default() Config {
	opts := browser.DefaultOptions()
	opts.DisableSelection = false
	return Config{
		Options:      opts,
		SortProperty: browser.SortByName,
		SortOrder:    browser.SortAscending,
	}
}

// DefaultPath is the conventional location of the config file.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "filegrid", "config.toml")
	}
	return ""
}

// Load reads a config file and merges it over the defaults. A missing file
// is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot load config %s: %w", path, err)
	}

	applyBool(&cfg.Options.ShowHidden, f.ShowHidden)
	applyBool(&cfg.Options.FoldersFirst, f.FoldersFirst)
	applyBool(&cfg.Options.ShowExtensions, f.ShowExtensions)
	applyBool(&cfg.Options.ConfirmDeletions, f.ConfirmDeletions)
	applyBool(&cfg.Options.DisableSelection, f.DisableSelection)
	cfg.DebugLog = f.DebugLog

	if f.SortBy != "" {
		prop, err := parseSortProperty(f.SortBy)
		if err != nil {
			return cfg, err
		}
		cfg.SortProperty = prop
	}
	if f.SortOrder != "" {
		order, err := parseSortOrder(f.SortOrder)
		if err != nil {
			return cfg, err
		}
		cfg.SortOrder = order
	}
	return cfg, nil
}

func applyBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func parseSortProperty(s string) (browser.SortProperty, error) {
	switch s {
	case "name":
		return browser.SortByName, nil
	case "size":
		return browser.SortBySize, nil
	case "modified":
		return browser.SortByModified, nil
	}
	return 0, fmt.Errorf("unknown sort_by %q (want name, size or modified)", s)
}

func parseSortOrder(s string) (browser.SortOrder, error) {
	switch s {
	case "asc":
		return browser.SortAscending, nil
	case "desc":
		return browser.SortDescending, nil
	}
	return 0, fmt.Errorf("unknown sort_order %q (want asc or desc)", s)
}
