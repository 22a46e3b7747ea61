package cli

import (
	"github.com/spf13/cobra"

	"github.com/waliwuao/wgit/internal/actions"
	"github.com/waliwuao/wgit/internal/cli/helpers"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "commit",
		Aliases: []string{"c"},
		Short:   "Commit staged changes with a structured message",
		Long: `Commit staged changes with a type(scope): subject message.

Pick a commit type, then fill in the form: Up/Down move between fields, Enter
moves on (or adds a line in the body), Enter on Submit or Ctrl+S commits and
Esc cancels. In RemoteReview mode the branch is pushed after the commit.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.CommitAction)
		},
	}

	return cmd
}
