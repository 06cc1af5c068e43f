package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cratews/internal/testutil"
)

func TestLoad_missingManifest(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrNotAWorkspace) {
		t.Fatalf("err = %v, want ErrNotAWorkspace", err)
	}
}

func TestLoad_missingWorkspaceMarker(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte("[package]\nname = \"x\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(root)
	if !errors.Is(err, ErrNotAWorkspace) {
		t.Fatalf("err = %v, want ErrNotAWorkspace", err)
	}
}

func TestLoad_resolvesPaths(t *testing.T) {
	root := testutil.WriteWorkspace(t, "crates/core")

	ctx, err := Load(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.ManifestPath != filepath.Join(ctx.Root, "Cargo.toml") {
		t.Errorf("manifest path = %q", ctx.ManifestPath)
	}
	if ctx.MembersDir != filepath.Join(ctx.Root, "crates") {
		t.Errorf("members dir = %q", ctx.MembersDir)
	}
	if ctx.MemberPath("cli") != "crates/cli" {
		t.Errorf("member path = %q, want crates/cli", ctx.MemberPath("cli"))
	}
}

func TestMembers_scansManifestDirs(t *testing.T) {
	root := testutil.WriteWorkspace(t, "crates/core", "crates/cli")
	testutil.WriteMember(t, root, "core")
	testutil.WriteMember(t, root, "cli", "core")
	// A directory without a manifest is not a member.
	if err := os.MkdirAll(filepath.Join(root, "crates", "scratch"), 0755); err != nil {
		t.Fatal(err)
	}

	ctx, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	members, err := ctx.Members()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("members = %v, want [cli core]", members)
	}
}

func TestMembers_missingMembersDir(t *testing.T) {
	root := testutil.WriteWorkspace(t)
	ctx, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	members, err := ctx.Members()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if members != nil {
		t.Errorf("members = %v, want nil", members)
	}
}

func TestRegisteredPaths(t *testing.T) {
	root := testutil.WriteWorkspace(t, "crates/core", "crates/cli")
	ctx, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	paths, err := ctx.RegisteredPaths()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 || paths[0] != "crates/core" || paths[1] != "crates/cli" {
		t.Errorf("paths = %v", paths)
	}
}

func TestValidateMemberName(t *testing.T) {
	for _, name := range []string{"core", "my-crate", "net_utils"} {
		if err := ValidateMemberName(name); err != nil {
			t.Errorf("ValidateMemberName(%q) = %v, want nil", name, err)
		}
	}
	for _, name := range []string{"", ".", "..", "a/b", `a\b`, "a b"} {
		if err := ValidateMemberName(name); err == nil {
			t.Errorf("ValidateMemberName(%q) = nil, want error", name)
		}
	}
}
