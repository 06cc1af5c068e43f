// Package build runs the workspace toolchain to verify the tree still
// builds after a mutation. Verification failures are reported to the user
// but never revert the mutation.
package build

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Verify runs cmdline in root (no shell expansion). Stdout and stderr are
// inherited so compiler diagnostics reach the user directly.
func Verify(root string, cmdline []string) error {
	if len(cmdline) == 0 {
		return fmt.Errorf("empty build command")
	}
	if _, err := exec.LookPath(cmdline[0]); err != nil {
		return fmt.Errorf("build tool %q not found on PATH", cmdline[0])
	}

	cmd := exec.Command(cmdline[0], cmdline[1:]...)
	cmd.Dir = root
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", strings.Join(cmdline, " "), err)
	}
	return nil
}
