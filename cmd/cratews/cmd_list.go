package main

import (
	"sort"

	"cratews/internal/ui"
	"cratews/internal/workspace"

	"github.com/spf13/cobra"
)

func newListMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-members [workspace]",
		Short: "List members and flag registry/directory drift",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runListMembers,
	}
}

// runListMembers prints every member known to either the registry or the
// members directory. A healthy workspace shows yes/yes on every row.
func runListMembers(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	if len(args) == 1 {
		root = args[0]
	}

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}

	registered, err := ctx.RegisteredPaths()
	if err != nil {
		return err
	}
	onDisk, err := ctx.Members()
	if err != nil {
		return err
	}

	registeredSet := make(map[string]bool, len(registered))
	for _, p := range registered {
		registeredSet[p] = true
	}
	onDiskSet := make(map[string]bool, len(onDisk))
	for _, name := range onDisk {
		onDiskSet[ctx.MemberPath(name)] = true
	}

	all := make(map[string]bool, len(registeredSet)+len(onDiskSet))
	var paths []string
	for p := range registeredSet {
		if !all[p] {
			all[p] = true
			paths = append(paths, p)
		}
	}
	for p := range onDiskSet {
		if !all[p] {
			all[p] = true
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)

	t := ui.NewTable(cmd.OutOrStdout(), "PATH", "REGISTERED", "ON DISK")
	for _, p := range paths {
		t.Row(p, yesNo(registeredSet[p]), yesNo(onDiskSet[p]))
	}
	return t.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
