package manifest

import (
	"fmt"
	"os"

	"cratews/internal/fs"
)

// EditFile reads path, applies edit to the whole content, and atomically
// replaces the file when the edit changed it. A failed or no-op edit leaves
// the file byte-for-byte as it was.
func EditFile(path string, edit func(string) (string, Outcome)) (Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NotPresent, fmt.Errorf("reading %s: %w", path, err)
	}

	edited, outcome := edit(string(data))
	if !outcome.Changed() {
		return outcome, nil
	}

	if err := fs.WriteFileAtomic(path, []byte(edited), 0644); err != nil {
		return outcome, fmt.Errorf("writing %s: %w", path, err)
	}
	return outcome, nil
}
