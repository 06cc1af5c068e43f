package build

import "testing"

func TestVerify_success(t *testing.T) {
	if err := Verify(t.TempDir(), []string{"true"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestVerify_failure(t *testing.T) {
	if err := Verify(t.TempDir(), []string{"false"}); err == nil {
		t.Error("expected error from failing build command")
	}
}

func TestVerify_missingTool(t *testing.T) {
	if err := Verify(t.TempDir(), []string{"definitely-not-a-real-tool"}); err == nil {
		t.Error("expected error for missing build tool")
	}
}

func TestVerify_emptyCommand(t *testing.T) {
	if err := Verify(t.TempDir(), nil); err == nil {
		t.Error("expected error for empty build command")
	}
}
