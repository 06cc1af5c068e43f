package main

import (
	"fmt"

	"cratews/internal/workspace"

	"github.com/spf13/cobra"
)

func newRemoveMemberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-member [workspace] <name>",
		Short: "Remove a member package from the workspace",
		Long: `Remove a member package: delete its directory, drop it from the workspace
members array, and strip every dependency declaration referencing it from
the remaining members' manifests.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runRemoveMember,
	}
	cmd.Flags().Bool("no-vcs", false, "Skip the VCS snapshot after the mutation")
	cmd.Flags().Bool("no-verify", false, "Skip build verification after the mutation")
	cmd.Flags().Bool("json", false, "Output the mutation report as JSON")
	return cmd
}

func runRemoveMember(cmd *cobra.Command, args []string) error {
	root, name := workspaceArgs(cmd, args)
	noVCS, _ := cmd.Flags().GetBool("no-vcs")
	noVerify, _ := cmd.Flags().GetBool("no-verify")
	asJSON, _ := cmd.Flags().GetBool("json")

	if name == "" {
		return fmt.Errorf("member name is required")
	}

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}

	m := workspace.NewMutator(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr())
	m.SkipVCS = noVCS || !ctx.Config.VCSEnabled()
	m.SkipVerify = noVerify

	rep, err := m.Remove(name)
	if err != nil {
		return err
	}
	return printReport(cmd, rep, asJSON)
}
