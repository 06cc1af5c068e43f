package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEditFile_writesOnlyWhenChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	src := "members = [\n    \"crates/core\",\n]\n"
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	outcome, err := EditFile(path, func(doc string) (string, Outcome) {
		return InsertArrayElement(doc, "members", "crates/cli")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != Added {
		t.Fatalf("outcome = %v, want Added", outcome)
	}

	data, _ := os.ReadFile(path)
	if string(data) == src {
		t.Error("file not rewritten after a changing edit")
	}

	// A no-op edit must leave the file alone.
	before, _ := os.ReadFile(path)
	outcome, err = EditFile(path, func(doc string) (string, Outcome) {
		return InsertArrayElement(doc, "members", "crates/cli")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != AlreadyPresent {
		t.Fatalf("outcome = %v, want AlreadyPresent", outcome)
	}
	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Error("file changed on a no-op edit")
	}
}

func TestEditFile_missingFile(t *testing.T) {
	_, err := EditFile(filepath.Join(t.TempDir(), "nope.toml"), func(doc string) (string, Outcome) {
		return doc, NotPresent
	})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
