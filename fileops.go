// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsops

package fsops

import (
	"fmt"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
)

// CopyFile copies one regular file and returns the resolved destination path.
//
// When destination is an existing directory, the copy lands at
// destination/basename(source). Missing parent directories of the destination
// are created. File permissions are preserved. The source is left untouched.
func CopyFile(source, destination string) (string, error) {
	if err := validateSourceFile(source); err != nil {
		return "", err
	}

	dest := resolveDestination(source, destination)
	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return "", fmt.Errorf("create destination directory for %s: %w", dest, err)
	}

	if err := cp.Copy(source, dest); err != nil {
		return "", fmt.Errorf("copy %s to %s: %w", source, dest, err)
	}

	return dest, nil
}

// MoveFile copies one regular file and then removes the source.
//
// The move is copy-then-delete, not an atomic rename: an interruption between
// the two steps can leave both paths populated. This keeps the operation
// usable across filesystem boundaries, where rename cannot be atomic anyway.
// Returns the resolved destination path, following CopyFile resolution rules.
func MoveFile(source, destination string) (string, error) {
	dest, err := CopyFile(source, destination)
	if err != nil {
		return "", err
	}

	if err := os.Remove(source); err != nil {
		return "", fmt.Errorf("remove source %s after copy: %w", source, err)
	}

	return dest, nil
}

// DeleteFile removes one regular file.
//
// A missing path fails with ErrFileNotFound and a directory target fails with
// ErrNotRegularFile. Callers that treat "already gone" as success can test
// errors.Is(err, ErrFileNotFound).
func DeleteFile(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}

		return fmt.Errorf("stat %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNotRegularFile, path)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}

	return nil
}

// validateSourceFile confirms source exists and is a regular file.
func validateSourceFile(source string) error {
	info, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, source)
		}

		return fmt.Errorf("stat source %s: %w", source, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegularFile, source)
	}

	return nil
}

// resolveDestination expands a directory destination to a file path inside it.
func resolveDestination(source, destination string) string {
	info, err := os.Stat(destination)
	if err == nil && info.IsDir() {
		return filepath.Join(destination, filepath.Base(source))
	}

	return destination
}
