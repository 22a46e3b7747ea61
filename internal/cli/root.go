// Package cli wires wgit's commands into a cobra command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/waliwuao/wgit/internal/cli/branch"
	"github.com/waliwuao/wgit/internal/cli/helpers"
	"github.com/waliwuao/wgit/internal/tui"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wgit",
		Short: "wgit is an opinionated git workflow with protected branches and conflict-safe merges",
		Long: `wgit is an opinionated git workflow.

Work happens on feature/, bugfix/, release/ and hotfix/ branches. main and
develop are protected and only receive merges. Commit messages follow the
type(scope): subject convention, and finish and sync stop to let you resolve
conflicts instead of leaving the repository half merged.

Run wgit without a command in a terminal to pick one from a menu.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !tui.IsTTY() {
				return cmd.Help()
			}
			return runMenu(cmd, helpers.Splog(cmd.Context()), tui.PromptFilterSelect)
		},
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(branch.NewBranchCmd())
	rootCmd.AddCommand(newUndoCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
