// Package fsx turns directories on disk into browser records for hosts that
// feed the widget from the local filesystem.
package fsx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/filegrid/filegrid/internal/browser"
)

// ReadFolder lists a directory as browser records. Record IDs are absolute
// paths, names are NFC-normalized for stable comparison and display.
// Unreadable entries are skipped rather than failing the whole listing.
func ReadFolder(path string) (browser.FileList, error) {
	dirPath := filepath.Clean(path)

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dirPath, err)
	}

	files := make(browser.FileList, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}

		rawName := e.Name()
		fullPath := filepath.Join(dirPath, rawName)

		isDir := e.IsDir()
		if info.Mode()&os.ModeSymlink != 0 {
			// For symlinks, classify by the target.
			if targetInfo, err := os.Stat(fullPath); err == nil {
				isDir = targetInfo.IsDir()
			}
		}

		name := norm.NFC.String(rawName)
		files = append(files, &browser.FileRecord{
			ID:       fullPath,
			Name:     name,
			Ext:      extOf(name, isDir),
			IsDir:    isDir,
			Hidden:   IsHidden(fullPath, rawName),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}
	return files, nil
}

// Chain builds the breadcrumb path for an absolute directory, root first.
func Chain(path string) browser.FolderChain {
	dirPath := filepath.Clean(path)

	var parts []string
	for {
		parts = append(parts, dirPath)
		parent := filepath.Dir(dirPath)
		if parent == dirPath {
			break
		}
		dirPath = parent
	}

	chain := make(browser.FolderChain, 0, len(parts))
	for i := len(parts) - 1; i >= 0; i-- {
		p := parts[i]
		name := norm.NFC.String(filepath.Base(p))
		chain = append(chain, &browser.FileRecord{ID: p, Name: name, IsDir: true})
	}
	return chain
}

func extOf(name string, isDir bool) string {
	if isDir {
		return ""
	}
	ext := filepath.Ext(name)
	if ext == name {
		// Dotfiles like ".profile" have no extension.
		return ""
	}
	return strings.ToLower(ext)
}
