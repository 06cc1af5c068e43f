package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseKind(t *testing.T) {
	if k, err := ParseKind(""); err != nil || k != KindLib {
		t.Errorf("ParseKind(\"\") = %v, %v; want lib", k, err)
	}
	if k, err := ParseKind("bin"); err != nil || k != KindBin {
		t.Errorf("ParseKind(\"bin\") = %v, %v; want bin", k, err)
	}
	if _, err := ParseKind("dylib"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestCreateMemberSkeleton_lib(t *testing.T) {
	dir := t.TempDir()
	manifestPath, err := CreateMemberSkeleton(dir, "core", "Cargo.toml", KindLib)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if !strings.Contains(string(data), "name = \"core\"") {
		t.Errorf("manifest missing package name:\n%s", data)
	}
	if !strings.Contains(string(data), "[dependencies]") {
		t.Errorf("manifest missing dependency section:\n%s", data)
	}

	if _, err := os.Stat(filepath.Join(dir, "src", "lib.rs")); err != nil {
		t.Errorf("lib.rs not created: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "src", "main.rs")); err == nil {
		t.Error("main.rs created for a lib member")
	}
}

func TestCreateMemberSkeleton_bin(t *testing.T) {
	dir := t.TempDir()
	if _, err := CreateMemberSkeleton(dir, "cli", "Cargo.toml", KindBin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "src", "main.rs")); err != nil {
		t.Errorf("main.rs not created: %v", err)
	}
}
