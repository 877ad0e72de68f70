// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DefaultDatabasePath is where favorites and settings live when no
// database.path is configured.
func DefaultDatabasePath() string {
	return ExpandPath("~/.local/share/lens/lens.db")
}

// DefaultCatalogPath is where the catalog dataset is looked up when no
// catalog.path is configured.
func DefaultCatalogPath() string {
	return ExpandPath("~/.local/share/lens/ai-tools.json")
}
