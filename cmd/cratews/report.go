package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"cratews/internal/ui"
	"cratews/internal/workspace"

	"github.com/spf13/cobra"
)

// printReport writes the final mutation summary in text or JSON form.
func printReport(cmd *cobra.Command, rep *workspace.Report, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	st := stylerFor(out)
	if len(rep.Linked) > 0 {
		_, _ = fmt.Fprintf(out, "Linked: %s\n", strings.Join(rep.Linked, ", "))
	}
	if len(rep.Skipped) > 0 {
		_, _ = fmt.Fprintf(out, "%s\n", st.Warn("Skipped unknown targets: "+strings.Join(rep.Skipped, ", ")))
	}
	if len(rep.Unlinked) > 0 {
		_, _ = fmt.Fprintf(out, "Dropped incoming edges from: %s\n", strings.Join(rep.Unlinked, ", "))
	}
	switch {
	case rep.BuildError != "":
		_, _ = fmt.Fprintf(out, "%s\n", st.Fail("Build verification failed (changes kept)"))
	case rep.Verified:
		_, _ = fmt.Fprintf(out, "%s\n", st.OK("Build verification passed"))
	}
	_, _ = fmt.Fprintf(out, "%s %s\n", st.OK("Done:"), rep.Path)
	return nil
}

// stylerFor enables color only when writing straight to a terminal.
func stylerFor(out io.Writer) ui.Styler {
	if f, ok := out.(*os.File); ok {
		return ui.NewStyler(ui.Colorized(f))
	}
	return ui.NewStyler(false)
}
