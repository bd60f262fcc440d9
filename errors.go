// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsops

package fsops

import "errors"

// Sentinel errors for fsops operations.
var (
	// ErrInvalidPattern indicates a malformed or unsupported path pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrBaseNotFound indicates the literal base directory of a pattern does not exist.
	ErrBaseNotFound = errors.New("base directory does not exist")
	// ErrBaseNotADirectory indicates the literal base of a pattern exists but is not a directory.
	ErrBaseNotADirectory = errors.New("base path is not a directory")
	// ErrNoMatch indicates an empty result when the caller opted into FailIfNoMatch.
	ErrNoMatch = errors.New("no files found")
	// ErrSourceNotFound indicates a copy/move source path that does not exist.
	ErrSourceNotFound = errors.New("source file not found")
	// ErrFileNotFound indicates a delete target that does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrNotRegularFile indicates a file operation target that is not a regular file.
	ErrNotRegularFile = errors.New("not a regular file")
)
