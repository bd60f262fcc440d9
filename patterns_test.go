// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsops

package fsops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParsePatterns(t *testing.T) {
	t.Parallel()

	patterns, err := ParsePatternsString(`
# log files
*.log

logs/2024/*.log
\#literal.txt
`)
	if err != nil {
		t.Fatalf("ParsePatternsString: %v", err)
	}

	want := []string{"*.log", "logs/2024/*.log", "#literal.txt"}
	if len(patterns) != len(want) {
		t.Fatalf("len(patterns)=%d, want %d: %v", len(patterns), len(want), patterns)
	}

	for i := range want {
		if patterns[i] != want[i] {
			t.Fatalf("patterns[%d]=%q, want %q", i, patterns[i], want[i])
		}
	}
}

func TestParsePatternsTrailingSpaces(t *testing.T) {
	t.Parallel()

	patterns, err := ParsePatternsString("*.tmp   \nname\\ \n")
	if err != nil {
		t.Fatalf("ParsePatternsString: %v", err)
	}

	if len(patterns) != 2 {
		t.Fatalf("len(patterns)=%d, want 2: %v", len(patterns), patterns)
	}

	if patterns[0] != "*.tmp" {
		t.Fatalf("patterns[0]=%q, want *.tmp", patterns[0])
	}

	if patterns[1] != "name " {
		t.Fatalf("patterns[1]=%q, want escaped trailing space kept", patterns[1])
	}
}

func TestLoadPatternsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".globs")
	err := os.WriteFile(path, []byte("*.log\n# comment\n*.txt\n"), 0o600)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	patterns, err := LoadPatternsFile(path)
	if err != nil {
		t.Fatalf("LoadPatternsFile: %v", err)
	}

	if len(patterns) != 2 || patterns[0] != "*.log" || patterns[1] != "*.txt" {
		t.Fatalf("unexpected patterns: %v", patterns)
	}
}

func TestLoadPatternsFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadPatternsFile(filepath.Join(t.TempDir(), "missing.globs"))
	if err == nil {
		t.Fatalf("missing patterns file must fail")
	}
}

func TestLoadPatternsFileWithFindAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "app.log"), "")
	writeTestFile(t, filepath.Join(dir, "readme.txt"), "")
	writeTestFile(t, filepath.Join(dir, "image.png"), "")

	listPath := filepath.Join(dir, ".globs")
	src := filepath.Join(dir, "*.log") + "\n" + filepath.Join(dir, "*.txt") + "\n"
	if err := os.WriteFile(listPath, []byte(src), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	patterns, err := LoadPatternsFile(listPath)
	if err != nil {
		t.Fatalf("LoadPatternsFile: %v", err)
	}

	got, err := FindAll(patterns, FindOptions{})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}

	if !sameNames(got, "app.log", "readme.txt") {
		t.Fatalf("got %v, want [app.log readme.txt]", got)
	}
}
