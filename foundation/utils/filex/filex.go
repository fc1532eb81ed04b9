// File: filex.go
// Title: Core File Utilities
// Description: File checks and input opening with structured errors, used
//              by configuration discovery and the command-line input path.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-19 v0.2.0: Reduced to input handling, structured errors

// Package filex provides the file helpers seqkit needs to locate and read
// its inputs.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwerrors "github.com/msto63/seqkit/foundation/core/errors"
)

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ExpandHome replaces a leading "~" with the user's home directory.
// Paths without it, and paths when no home is known, are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Open opens a regular file for reading. A missing file is a NOT_FOUND
// error, a directory an INVALID_INPUT error.
func Open(path string) (*os.File, error) {
	path = ExpandHome(path)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerrors.NotFound(mdwerrors.ModuleFilex, "open", path, err)
		}
		return nil, mdwerrors.OperationFailed(mdwerrors.ModuleFilex, "open", err).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleFilex, "open", path, "a regular file")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, mdwerrors.OperationFailed(mdwerrors.ModuleFilex, "open", err).
			WithDetail("path", path)
	}
	return f, nil
}

// Size returns the size of a file in bytes
func Size(path string) (int64, error) {
	info, err := os.Stat(ExpandHome(path))
	if err != nil {
		return 0, mdwerrors.OperationFailed(mdwerrors.ModuleFilex, "size", err).
			WithDetail("path", path)
	}
	return info.Size(), nil
}

// FormatSize formats a size in bytes to a human-readable string
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}
