// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsops

package fsops

import (
	"fmt"
	"runtime"
	"strings"
)

// normalizePattern converts platform separators to slash form.
//
// Backslash rewriting is Windows-only: on POSIX systems a backslash is a
// legal filename byte and stays literal. No other cleanup is applied, so
// names with leading or trailing spaces pass through verbatim.
func normalizePattern(raw string) string {
	if runtime.GOOS == "windows" {
		raw = strings.ReplaceAll(raw, `\`, `/`)
	}

	return raw
}

// validatePattern rejects pattern strings that cannot name a filesystem path.
func validatePattern(pattern string) error {
	if strings.IndexByte(pattern, 0) >= 0 {
		return fmt.Errorf("%w: NUL byte in %q", ErrInvalidPattern, pattern)
	}

	return nil
}

// splitPattern splits a slash-normalized pattern into a literal base directory
// and a wildcard suffix relative to that base.
//
// The base is the longest literal directory prefix: everything before the last
// slash preceding the first wildcard byte. A pattern whose first segment is
// already wildcard-bearing gets base ".". Patterns without wildcards return
// the whole pattern as base and report false.
func splitPattern(pattern string) (string, string, bool) {
	wild := firstWildcard(pattern)
	if wild < 0 {
		return pattern, "", false
	}

	slash := strings.LastIndexByte(pattern[:wild], '/')
	switch {
	case slash < 0:
		return ".", pattern, true
	case slash == 0:
		return "/", pattern[1:], true
	default:
		return pattern[:slash], pattern[slash+1:], true
	}
}

// firstWildcard returns byte index of the first wildcard meta in pattern, -1 when literal.
func firstWildcard(pattern string) int {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*', '?':
			return i
		case '[':
			if findCharClassEnd(pattern, i) >= 0 {
				return i
			}
		}
	}

	return -1
}

// findCharClassEnd locates closing bracket for a glob char class.
//
// A "[" without a closing "]" is a literal byte, not a wildcard.
func findCharClassEnd(pat string, start int) int {
	if start < 0 || start >= len(pat) || pat[start] != '[' {
		return -1
	}

	idx := start + 1
	if idx < len(pat) && (pat[idx] == '!' || pat[idx] == '^') {
		idx++
	}

	if idx < len(pat) && pat[idx] == ']' {
		idx++
	}

	for ; idx < len(pat); idx++ {
		if pat[idx] == ']' {
			return idx
		}
	}

	return -1
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}
