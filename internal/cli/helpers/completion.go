package helpers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/waliwuao/wgit/internal/config"
	"github.com/waliwuao/wgit/internal/git"
)

// CompleteBranches is a helper for cobra.ValidArgsFunction that returns all
// local branch names in the repository.
func CompleteBranches(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	repoRoot, err := git.GetRepoRoot("")
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	repo := git.NewRepo(git.NewCommandRunner(repoRoot))
	branches, err := repo.ListBranches(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}

// CompleteDeletableBranches completes branch names that are not protected
func CompleteDeletableBranches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	branches, directive := CompleteBranches(cmd, args, toComplete)
	if directive == cobra.ShellCompDirectiveError || len(branches) == 0 {
		return branches, directive
	}
	repoRoot, err := git.GetRepoRoot("")
	if err != nil {
		return branches, directive
	}
	cfg, err := config.Load(repoRoot)
	if err != nil {
		return branches, directive
	}
	var deletable []string
	for _, b := range branches {
		if !cfg.IsProtected(b) {
			deletable = append(deletable, b)
		}
	}
	return deletable, directive
}
