package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/waliwuao/wgit/internal/actions"
	"github.com/waliwuao/wgit/internal/cli/helpers"
	"github.com/waliwuao/wgit/internal/config"
	"github.com/waliwuao/wgit/internal/git"
	"github.com/waliwuao/wgit/internal/runtime"
	"github.com/waliwuao/wgit/internal/tui"
)

// initContext builds a runtime context for dir, which does not have to be a
// repository yet.
func initContext(ctx context.Context, dir string, splog *tui.Splog) (*runtime.Context, error) {
	root := dir
	if existing, err := git.GetRepoRoot(dir); err == nil {
		root = existing
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	repo := git.NewRepo(runtime.NewRunner(root, splog))
	return runtime.NewContext(ctx, repo, splog, tui.NewTerminalPrompter(), root, cfg), nil
}

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Initialize the current directory for wgit",
		Long: `Initialize the current directory for wgit.

Creates the repository if needed, makes an empty initial commit when there is
no history yet, names the current branch main, creates and checks out develop,
installs a pre-commit hook that refuses direct commits to main and develop, and
writes the default configuration. Running it again is harmless.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			ctx, err := initContext(cmd.Context(), wd, helpers.Splog(cmd.Context()))
			if err != nil {
				return err
			}
			return actions.InitAction(ctx)
		},
	}

	return cmd
}
