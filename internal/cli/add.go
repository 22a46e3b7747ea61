package cli

import (
	"github.com/spf13/cobra"

	"github.com/waliwuao/wgit/internal/actions"
	"github.com/waliwuao/wgit/internal/cli/helpers"
)

// newAddCmd creates the add command
func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "add",
		Aliases:      []string{"a"},
		Short:        "Pick changed files to stage",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.AddAction)
		},
	}

	return cmd
}
