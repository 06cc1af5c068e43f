package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cratews",
		Short:   "Membership and dependency editor for multi-crate workspaces",
		Version: version,
	}

	cmd.PersistentFlags().String("root", ".", "Workspace root directory")

	cmd.AddCommand(
		newAddMemberCmd(),
		newRemoveMemberCmd(),
		newListMembersCmd(),
	)

	return cmd
}

// workspaceArgs splits the optional leading workspace argument from the
// member name: `add-member [workspace] <name>`. With a single argument the
// workspace comes from --root.
func workspaceArgs(cmd *cobra.Command, args []string) (root, name string) {
	root, _ = cmd.Flags().GetString("root")
	switch len(args) {
	case 2:
		return args[0], args[1]
	case 1:
		return root, args[0]
	default:
		return root, ""
	}
}
