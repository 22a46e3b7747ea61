package branch

import (
	"github.com/spf13/cobra"

	"github.com/waliwuao/wgit/internal/actions"
	"github.com/waliwuao/wgit/internal/cli/helpers"
	"github.com/waliwuao/wgit/internal/runtime"
)

// NewSwitchCmd creates the branch switch command
func NewSwitchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "switch [name]",
		Aliases:           []string{"checkout", "co"},
		Short:             "Check out a local branch",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: helpers.CompleteBranches,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.SwitchAction(ctx, name)
			})
		},
	}

	return cmd
}
