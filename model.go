// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsops

package fsops

// FindOptions controls finder behavior.
type FindOptions struct {
	// FailIfNoMatch makes an empty result an ErrNoMatch failure.
	// Base directory validation errors surface regardless of this flag.
	FailIfNoMatch bool `json:"fail_if_no_match,omitempty" yaml:"fail_if_no_match,omitempty"`
}
