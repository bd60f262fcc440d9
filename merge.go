// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsops

package fsops

// MergePaths merges path sets preserving first-seen order and dropping duplicates.
func MergePaths(sets ...[]string) []string {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	seen := make(map[string]struct{}, total)
	out := make([]string, 0, total)
	for _, set := range sets {
		for _, path := range set {
			if _, ok := seen[path]; ok {
				continue
			}

			seen[path] = struct{}{}
			out = append(out, path)
		}
	}

	return out
}
