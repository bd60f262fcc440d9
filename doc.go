// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsops

/*
Package fsops implements glob-based file lookup plus small copy/move/delete helpers
over the local filesystem.

The package is intentionally stateless: every call is a pure function of its
arguments and the filesystem, with no caches or singletons shared between calls.

Basic flow:
  - find files by pattern (`Find` / `FindFiles`)
  - reuse a decomposed pattern for repeated lookups (`NewFinder`)
  - combine several patterns (`FindAll`, `ExtensionPatterns`, `MergePaths`)
  - optionally load pattern lists from text or file (`ParsePatterns` / `LoadPatternsFile`)
  - copy, move or delete single files (`CopyFile` / `MoveFile` / `DeleteFile`)

Pattern grammar is conventional shell glob: `*` and `?` inside one path
segment, `[...]` character classes with `[!...]` or `[^...]` negation, and a
`**` segment matching zero or more directories. Matching never follows
symlinked directories, so `**` cannot loop through symlink cycles.

Filesystem races are accepted, not hidden: a path returned by `Find` existed
and was a regular file at enumeration time, with no guarantee it still does
when the caller uses it.
*/
package fsops
