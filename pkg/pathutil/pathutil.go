// Package pathutil normalizes filesystem paths for scanning and display:
// home-directory expansion and display-friendly relative paths.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a leading ~ to the user's home directory. It is a pure
// function of the input and the home directory, and idempotent: expanding
// an already-expanded path returns it unchanged.
func Expand(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// Relativize renders path relative to base for display. The base itself
// renders as "./". A result that walks upward out of the base keeps its
// "../" form untouched. Everything else gets a "./" prefix.
func Relativize(path, base string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	rel = filepath.ToSlash(rel)
	switch {
	case rel == ".":
		return "./"
	case rel == ".." || strings.HasPrefix(rel, "../"):
		return rel
	case strings.HasPrefix(rel, "./"):
		return rel
	default:
		return "./" + rel
	}
}
