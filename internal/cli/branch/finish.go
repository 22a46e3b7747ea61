package branch

import (
	"github.com/spf13/cobra"

	"github.com/waliwuao/wgit/internal/actions"
	"github.com/waliwuao/wgit/internal/cli/helpers"
)

// NewFinishCmd creates the branch finish command
func NewFinishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finish",
		Short: "Merge the current branch back and delete it",
		Long: `Merge the current workflow branch back with a structured merge message.

release/ and hotfix/ branches are merged into main first, optionally tagged,
and then merged into develop. All other branches are merged into develop only.
If a merge stops on conflicts, resolve them in your editor, stage them and
choose Continue. The branch is deleted once every merge has succeeded.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.FinishAction)
		},
	}

	return cmd
}
