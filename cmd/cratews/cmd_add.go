package main

import (
	"fmt"
	"os"

	"cratews/internal/scaffold"
	"cratews/internal/workspace"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newAddMemberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-member [workspace] <name>",
		Short: "Add a member package to the workspace",
		Long: `Add a member package: create its directory and manifest, register it in
the workspace members array, and declare dependencies on the requested
sibling members. Unknown link targets are skipped with a warning.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runAddMember,
	}
	cmd.Flags().String("kind", "lib", "Member kind (lib or bin)")
	cmd.Flags().StringSlice("link", nil, "Sibling members the new member depends on")
	cmd.Flags().Bool("no-vcs", false, "Skip the VCS snapshot after the mutation")
	cmd.Flags().Bool("no-verify", false, "Skip build verification after the mutation")
	cmd.Flags().Bool("json", false, "Output the mutation report as JSON")
	return cmd
}

func runAddMember(cmd *cobra.Command, args []string) error {
	root, name := workspaceArgs(cmd, args)
	kindFlag, _ := cmd.Flags().GetString("kind")
	links, _ := cmd.Flags().GetStringSlice("link")
	noVCS, _ := cmd.Flags().GetBool("no-vcs")
	noVerify, _ := cmd.Flags().GetBool("no-verify")
	asJSON, _ := cmd.Flags().GetBool("json")

	kind, err := scaffold.ParseKind(kindFlag)
	if err != nil {
		return err
	}

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}

	if name == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("no member name provided and stdin is not a TTY")
		}
		name, kind, links, err = interactiveAddMember(ctx)
		if err != nil {
			return fmt.Errorf("interactive add: %w", err)
		}
	}

	m := workspace.NewMutator(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr())
	m.SkipVCS = noVCS || !ctx.Config.VCSEnabled()
	m.SkipVerify = noVerify

	rep, err := m.Add(name, kind, links)
	if err != nil {
		return err
	}
	return printReport(cmd, rep, asJSON)
}
