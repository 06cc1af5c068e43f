// Package fs provides filesystem helpers for safe manifest rewriting.
package fs

import (
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to path using a temp file plus rename.
// The temp file lives in the same directory as path so the rename is atomic
// on POSIX; a concurrent reader never observes a partially written file.
// On failure the original file, if any, is left unchanged.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".cratews-tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	// CreateTemp uses 0600; widen to the requested mode before publishing.
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}
