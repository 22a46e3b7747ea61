package cli

import (
	"github.com/spf13/cobra"

	"github.com/waliwuao/wgit/internal/actions"
	"github.com/waliwuao/wgit/internal/cli/helpers"
)

// newUndoCmd creates the undo command
func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Reset the current branch to an earlier commit",
		Long: `Reset the current branch to an earlier commit.

Pick a point from the last 20 commits or the last 20 reflog entries, then
choose how to reset: --soft keeps the changes staged, --mixed keeps them in the
working directory and --hard discards them after confirmation.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.UndoAction)
		},
	}

	return cmd
}
