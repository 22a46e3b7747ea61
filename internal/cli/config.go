package cli

import (
	"github.com/spf13/cobra"

	"github.com/waliwuao/wgit/internal/actions"
	"github.com/waliwuao/wgit/internal/cli/helpers"
	"github.com/waliwuao/wgit/internal/config"
	"github.com/waliwuao/wgit/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	var reviewMode string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configure remotes, review mode and branch names",
		Long: `Configure wgit for this repository.

Without flags an interactive menu lets you add remotes, choose the review mode
and rename the main and develop branches. Settings live in .git/wgit.json.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				if reviewMode != "" {
					mode, err := config.ParseReviewMode(reviewMode)
					if err != nil {
						return err
					}
					return actions.SetReviewMode(ctx, mode)
				}
				return actions.ConfigAction(ctx)
			})
		},
	}

	cmd.Flags().StringVar(&reviewMode, "review-mode", "", "Set the review mode (LocalMerge or RemoteReview) without the menu")
	_ = cmd.RegisterFlagCompletionFunc("review-mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(config.LocalMerge), string(config.RemoteReview)}, cobra.ShellCompDirectiveNoFileComp
	})

	cmd.AddCommand(&cobra.Command{
		Use:          "show",
		Short:        "Print the current configuration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.ShowConfig)
		},
	})

	return cmd
}
