package cli

import (
	"github.com/spf13/cobra"

	"github.com/waliwuao/wgit/internal/actions"
	"github.com/waliwuao/wgit/internal/cli/helpers"
)

// newSyncCmd creates the sync command
func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull the current branch from a remote and push it back",
		Long: `Pull the current branch from a remote and push it back.

Uncommitted changes are shelved in the stash first and restored at the end.
If the remote has no main branch yet, main is pushed first. When a pull or the
restore stops on conflicts, resolve them, stage them and choose Continue. If
sync stops while your changes are shelved it prints the command that brings
them back.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.SyncAction)
		},
	}

	return cmd
}
