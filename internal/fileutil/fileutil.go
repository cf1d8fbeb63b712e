// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath   = errors.New("path cannot be empty")
	ErrIsDirectory = errors.New("path is a directory")
)

// DefaultFileMode is the permission set of written files.
const DefaultFileMode fs.FileMode = 0o644 // rw-r--r--

// dirPermissions is used for directories created by WriteFile.
const dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// FileExists returns true if the path exists and is a regular file.
// Directories, devices and FIFOs are not files.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// WriteFile creates or truncates path and writes data to it. An existing
// file keeps its permissions and symlinks are followed. When createDirs is
// true, missing parent directories are created first.
func WriteFile(path string, data []byte, perm fs.FileMode, createDirs bool) error {
	if path == "" {
		return ErrEmptyPath
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	if createDirs {
		if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, perm); err != nil { // #nosec G306 -- perm is user-configured
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "md2html" -> false (name)
//   - "./md2html.yaml" -> true (relative path)
//   - "/etc/md2html.yaml" -> true (absolute)
//   - "C:\config\md2html.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
