package branch

import (
	"github.com/spf13/cobra"

	"github.com/waliwuao/wgit/internal/actions"
	"github.com/waliwuao/wgit/internal/cli/helpers"
	"github.com/waliwuao/wgit/internal/runtime"
)

// NewDeleteCmd creates the branch delete command
func NewDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete [name]",
		Aliases: []string{"d", "rm"},
		Short:   "Delete a local branch",
		Long: `Delete a local branch, including commits that were never merged.

Protected branches are never offered and cannot be deleted by name.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: helpers.CompleteDeletableBranches,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.DeleteAction(ctx, actions.DeleteOptions{
					BranchName: name,
					Force:      force,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
