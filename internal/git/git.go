// Package git shells out to the git binary for best-effort workspace
// snapshots after a mutation. Callers treat failures as warnings.
package git

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// IsInstalled returns true if git is available on the system PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// IsRepo returns true if the directory is a git repository.
func IsRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Snapshot stages everything under root and commits it with the given
// message. A clean tree is a no-op. Nothing is ever rolled back.
func Snapshot(root, message string) error {
	if !IsInstalled() {
		return fmt.Errorf("git is not installed")
	}

	if err := run(root, "add", "-A"); err != nil {
		return err
	}

	staged, err := hasStagedChanges(root)
	if err != nil {
		return err
	}
	if !staged {
		return nil
	}

	if err := ensureCommitIdentity(root); err != nil {
		return err
	}
	return run(root, "commit", "-m", message)
}

// hasStagedChanges reports whether the index differs from HEAD. A repository
// without any commit yet counts as having changes once something is staged.
func hasStagedChanges(root string) (bool, error) {
	err := run(root, "diff", "--cached", "--quiet")
	if err == nil {
		return false, nil
	}
	if isExitError(err) {
		return true, nil
	}
	return false, err
}

// ensureCommitIdentity sets repo-local fallback identity when none is
// configured, so snapshots work on pristine CI machines.
func ensureCommitIdentity(root string) error {
	if _, err := output(root, "config", "user.email"); err == nil {
		return nil
	}
	if err := run(root, "config", "user.email", "cratews@localhost"); err != nil {
		return err
	}
	return run(root, "config", "user.name", "cratews")
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// run executes a git command in the given directory, capturing stderr for
// the error message.
func run(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("git %s: %s: %w", args[0], msg, err)
		}
		return fmt.Errorf("git %s: %w", args[0], err)
	}
	return nil
}

// output executes a git command and returns its trimmed stdout.
func output(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
