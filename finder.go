// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsops

package fsops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
)

// Finder is a validated, decomposed path pattern ready for repeated lookups.
//
// Decomposition happens once in NewFinder; every Find call re-reads the
// filesystem, so repeated calls observe filesystem changes.
type Finder struct {
	// pattern is the normalized source pattern, kept verbatim for error text.
	pattern string
	// base is the longest literal directory prefix of the pattern.
	base string
	// suffix is the wildcard remainder matched relative to base.
	suffix string
	// wildcard reports whether pattern contains at least one wildcard segment.
	wildcard bool
	// failIfNoMatch makes an empty result an ErrNoMatch failure.
	failIfNoMatch bool
}

// NewFinder validates pattern syntax and splits it into literal base and wildcard suffix.
//
// On Windows, backslash separators are rewritten to slashes; on POSIX a
// backslash is a legal filename byte and is kept literal.
func NewFinder(pattern string, opts FindOptions) (*Finder, error) {
	normalized := normalizePattern(pattern)
	if err := validatePattern(normalized); err != nil {
		return nil, err
	}

	if normalized == "" {
		normalized = "."
	}

	base, suffix, wildcard := splitPattern(normalized)

	return &Finder{
		pattern:       normalized,
		base:          base,
		suffix:        suffix,
		wildcard:      wildcard,
		failIfNoMatch: opts.FailIfNoMatch,
	}, nil
}

// Find enumerates regular files matching the finder pattern.
//
// Wildcard semantics: "*" and "?" stay inside one path segment, "[...]"
// classes support "!" and "^" negation, "**" matches zero or more directories.
// Symlinked directories are not followed during "**" descent. Unreadable
// subtrees contribute no matches. Result order is unspecified.
//
// A missing or non-directory literal base always fails with ErrBaseNotFound /
// ErrBaseNotADirectory, regardless of FailIfNoMatch.
func (f *Finder) Find() ([]string, error) {
	if !f.wildcard {
		return f.findLiteral()
	}

	if err := validateBaseDir(f.base); err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(f.base), f.suffix, doublestar.WithNoFollow())
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPattern, f.pattern)
		}

		return nil, fmt.Errorf("glob %s: %w", f.pattern, err)
	}

	found := make([]string, 0, len(matches))
	for _, match := range matches {
		full := filepath.Join(f.base, filepath.FromSlash(match))
		// Stat follows symlinks: a link to a regular file counts as a file,
		// links to directories and broken links drop out.
		info, err := os.Stat(full)
		if err != nil {
			continue
		}

		if !info.Mode().IsRegular() {
			continue
		}

		found = append(found, full)
	}

	return f.finish(found)
}

// findLiteral resolves a wildcard-free pattern as a literal file path.
func (f *Finder) findLiteral() ([]string, error) {
	path := filepath.FromSlash(f.pattern)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return f.finish(nil)
	}

	return f.finish([]string{path})
}

// finish applies the FailIfNoMatch policy to a filtered result set.
func (f *Finder) finish(found []string) ([]string, error) {
	if len(found) == 0 && f.failIfNoMatch {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, f.pattern)
	}

	return found, nil
}

// validateBaseDir confirms the literal pattern prefix is an existing directory.
func validateBaseDir(base string) error {
	info, err := os.Stat(base)
	if err != nil {
		// ENOTDIR means a regular file sits inside the literal prefix, so the
		// base directory cannot exist either.
		if os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR) {
			return fmt.Errorf("%w: %s", ErrBaseNotFound, base)
		}

		return fmt.Errorf("stat base %s: %w", base, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrBaseNotADirectory, base)
	}

	return nil
}

// Find returns regular files matching pattern.
//
// Calls with unchanged filesystem state return equal result membership;
// ordering is not part of the contract.
func Find(pattern string, opts FindOptions) ([]string, error) {
	f, err := NewFinder(pattern, opts)
	if err != nil {
		return nil, err
	}

	return f.Find()
}

// FindFiles returns regular files matching pattern; empty result is not an error.
func FindFiles(pattern string) ([]string, error) {
	return Find(pattern, FindOptions{})
}

// FindAll runs every pattern and merges results preserving first-seen order
// without duplicates.
//
// FailIfNoMatch applies to the merged set, not to each pattern. Pattern and
// base directory errors on any input abort the whole call.
func FindAll(patterns []string, opts FindOptions) ([]string, error) {
	sets := make([][]string, 0, len(patterns))
	for _, pattern := range patterns {
		found, err := Find(pattern, FindOptions{})
		if err != nil {
			return nil, err
		}

		sets = append(sets, found)
	}

	merged := MergePaths(sets...)
	if len(merged) == 0 && opts.FailIfNoMatch {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, strings.Join(patterns, ", "))
	}

	return merged, nil
}
