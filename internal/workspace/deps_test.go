package workspace

import (
	"errors"
	"strings"
	"testing"

	"cratews/internal/manifest"
	"cratews/internal/testutil"
)

func TestLink_addsEdge(t *testing.T) {
	root := testutil.WriteWorkspace(t, "crates/core", "crates/cli")
	testutil.WriteMember(t, root, "core")
	testutil.WriteMember(t, root, "cli")
	ctx, _ := Load(root)

	outcome, err := ctx.Link("cli", "core")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != manifest.Added {
		t.Fatalf("outcome = %v, want Added", outcome)
	}

	doc := testutil.ReadFile(t, ctx.MemberManifest("cli"))
	if !strings.Contains(doc, `core = { path = "../core" }`) {
		t.Errorf("dependency line missing:\n%s", doc)
	}
}

func TestLink_idempotent(t *testing.T) {
	root := testutil.WriteWorkspace(t, "crates/core", "crates/cli")
	testutil.WriteMember(t, root, "core")
	testutil.WriteMember(t, root, "cli", "core")
	ctx, _ := Load(root)

	before := testutil.ReadFile(t, ctx.MemberManifest("cli"))
	outcome, err := ctx.Link("cli", "core")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != manifest.AlreadyPresent {
		t.Fatalf("outcome = %v, want AlreadyPresent", outcome)
	}
	if after := testutil.ReadFile(t, ctx.MemberManifest("cli")); after != before {
		t.Error("manifest changed on a no-op link")
	}
}

func TestLink_unknownTarget(t *testing.T) {
	root := testutil.WriteWorkspace(t, "crates/cli")
	testutil.WriteMember(t, root, "cli")
	ctx, _ := Load(root)

	_, err := ctx.Link("cli", "ghost")
	if !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("err = %v, want ErrMemberNotFound", err)
	}

	doc := testutil.ReadFile(t, ctx.MemberManifest("cli"))
	if strings.Contains(doc, "ghost") {
		t.Errorf("edge written for unknown target:\n%s", doc)
	}
}

func TestLink_selfEdgeRejected(t *testing.T) {
	root := testutil.WriteWorkspace(t, "crates/cli")
	testutil.WriteMember(t, root, "cli")
	ctx, _ := Load(root)

	if _, err := ctx.Link("cli", "cli"); err == nil {
		t.Fatal("expected error for self edge")
	}
}

func TestUnlinkAll_removesEdgesAndReportsModified(t *testing.T) {
	root := testutil.WriteWorkspace(t, "crates/core", "crates/cli", "crates/api")
	testutil.WriteMember(t, root, "core")
	testutil.WriteMember(t, root, "cli", "core")
	testutil.WriteMember(t, root, "api")
	ctx, _ := Load(root)

	modified, err := ctx.UnlinkAll("core")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(modified) != 1 || modified[0] != "cli" {
		t.Errorf("modified = %v, want [cli]", modified)
	}

	doc := testutil.ReadFile(t, ctx.MemberManifest("cli"))
	if strings.Contains(doc, "core") {
		t.Errorf("edge to core survived:\n%s", doc)
	}
}

func TestUnlinkAll_noPartialNameCollision(t *testing.T) {
	root := testutil.WriteWorkspace(t, "crates/foo", "crates/foobar", "crates/app")
	testutil.WriteMember(t, root, "foo")
	testutil.WriteMember(t, root, "foobar")
	testutil.WriteMember(t, root, "app", "foo", "foobar")
	ctx, _ := Load(root)

	if _, err := ctx.UnlinkAll("foo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := testutil.ReadFile(t, ctx.MemberManifest("app"))
	if !strings.Contains(doc, `foobar = { path = "../foobar" }`) {
		t.Errorf("foobar edge removed along with foo:\n%s", doc)
	}
	if strings.Contains(doc, `foo = { path = "../foo" }`) {
		t.Errorf("foo edge survived:\n%s", doc)
	}
}
