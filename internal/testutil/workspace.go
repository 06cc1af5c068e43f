// Package testutil builds throwaway workspace trees for tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteWorkspace creates a workspace root whose manifest carries the
// [workspace] marker and a members array listing the given member paths.
// Returns the root directory.
func WriteWorkspace(t *testing.T, members ...string) string {
	t.Helper()
	root := t.TempDir()

	var b strings.Builder
	b.WriteString("[workspace]\nmembers = [\n")
	for _, m := range members {
		fmt.Fprintf(&b, "    %q,\n", m)
	}
	b.WriteString("]\n")

	if err := os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}
	return root
}

// WriteMember creates a member directory under root/crates with a manifest
// declaring path dependencies on the given sibling names.
func WriteMember(t *testing.T, root, name string, deps ...string) {
	t.Helper()
	dir := filepath.Join(root, "crates", name)
	if err := os.MkdirAll(filepath.Join(dir, "src"), 0755); err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[package]\nname = %q\nversion = \"0.1.0\"\nedition = \"2021\"\n\n[dependencies]\n", name)
	for _, d := range deps {
		fmt.Fprintf(&b, "%s = { path = \"../%s\" }\n", d, d)
	}

	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "src", "lib.rs"), []byte("pub fn x() {}\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
