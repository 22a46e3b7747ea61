package branch

import (
	"github.com/spf13/cobra"

	"github.com/waliwuao/wgit/internal/actions"
	"github.com/waliwuao/wgit/internal/cli/helpers"
	"github.com/waliwuao/wgit/internal/config"
	"github.com/waliwuao/wgit/internal/runtime"
)

// NewStartCmd creates the branch start command
func NewStartCmd() *cobra.Command {
	var branchType string

	cmd := &cobra.Command{
		Use:   "start [name]",
		Short: "Create and check out a new workflow branch",
		Long: `Create and check out <type>/<name>.

Without --type you are asked for the branch type; without a name you are
asked for one. Spaces in the name become dashes.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.StartAction(ctx, actions.StartOptions{
					Type: branchType,
					Name: name,
				})
			})
		},
	}

	cmd.Flags().StringVarP(&branchType, "type", "t", "", "Branch type (feature, bugfix, release, hotfix)")
	_ = cmd.RegisterFlagCompletionFunc("type", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.WorkflowBranchTypes, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
