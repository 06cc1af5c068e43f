// Package scaffold creates the initial on-disk skeleton for a new workspace
// member: a manifest with the dependency section the graph editor appends to,
// plus a source stub matching the member kind.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// Kind selects the member's initial content.
type Kind string

const (
	KindLib Kind = "lib"
	KindBin Kind = "bin"
)

// ParseKind parses a kind string, defaulting to "lib".
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindLib, "":
		return KindLib, nil
	case KindBin:
		return KindBin, nil
	default:
		return "", fmt.Errorf("unknown member kind: %q (must be lib or bin)", s)
	}
}

// CreateMemberSkeleton writes the member manifest and source stub under dir
// and returns the manifest path. dir must already exist.
func CreateMemberSkeleton(dir, name, manifestName string, kind Kind) (string, error) {
	srcDir := filepath.Join(dir, "src")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		return "", fmt.Errorf("creating source directory: %w", err)
	}

	manifestPath := filepath.Join(dir, manifestName)
	if err := os.WriteFile(manifestPath, []byte(memberManifest(name)), 0644); err != nil {
		return "", fmt.Errorf("writing member manifest: %w", err)
	}

	stubName, stub := "lib.rs", libStub
	if kind == KindBin {
		stubName, stub = "main.rs", binStub
	}
	if err := os.WriteFile(filepath.Join(srcDir, stubName), []byte(stub), 0644); err != nil {
		return "", fmt.Errorf("writing source stub: %w", err)
	}

	return manifestPath, nil
}

func memberManifest(name string) string {
	return fmt.Sprintf(`[package]
name = %q
version = "0.1.0"
edition = "2021"

[dependencies]
`, name)
}

const libStub = `pub fn hello() -> &'static str {
    "hello"
}

#[cfg(test)]
mod tests {
    #[test]
    fn it_works() {
        assert_eq!(super::hello(), "hello");
    }
}
`

const binStub = `fn main() {
    println!("hello");
}
`
