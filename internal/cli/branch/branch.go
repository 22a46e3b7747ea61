// Package branch provides CLI commands for the workflow branch lifecycle.
package branch

import (
	"github.com/spf13/cobra"
)

// NewBranchCmd creates the branch command and its subcommands
func NewBranchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "branch",
		Aliases: []string{"b"},
		Short:   "Start, switch, delete and finish workflow branches",
		Long: `Manage workflow branches.

Workflow branches are named <type>/<name> where type is one of feature,
bugfix, release or hotfix. The main and develop branches are protected:
they cannot be finished or deleted through wgit.`,
	}

	cmd.AddCommand(NewStartCmd())
	cmd.AddCommand(NewSwitchCmd())
	cmd.AddCommand(NewDeleteCmd())
	cmd.AddCommand(NewFinishCmd())

	return cmd
}
