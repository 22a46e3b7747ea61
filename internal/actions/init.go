package actions

import (
	"fmt"

	"github.com/waliwuao/wgit/internal/config"
	"github.com/waliwuao/wgit/internal/git"
	"github.com/waliwuao/wgit/internal/runtime"
	"github.com/waliwuao/wgit/internal/tui"
)

const initialCommitMessage = "chore: initial wgit commit"

// InitAction prepares ctx.RepoRoot for the workflow: a repository with at
// least one commit, the main and development branches, the protecting
// pre-commit hook and a saved configuration. Running it twice is harmless.
func InitAction(ctx *runtime.Context) error {
	repo := ctx.Repo
	cfg := ctx.Config

	if err := repo.Init(ctx); err != nil {
		return err
	}

	if !repo.HasCommits(ctx) {
		if err := repo.CommitAllowEmpty(ctx, initialCommitMessage); err != nil {
			return err
		}
	}

	hasMain, err := repo.BranchExists(ctx, cfg.MainBranch)
	if err != nil {
		return err
	}
	if !hasMain {
		if err := repo.RenameCurrentBranch(ctx, cfg.MainBranch); err != nil {
			return err
		}
	}

	exists, err := repo.BranchExists(ctx, cfg.DevBranch)
	if err != nil {
		return err
	}
	if !exists {
		if err := repo.CreateBranch(ctx, cfg.DevBranch); err != nil {
			return err
		}
	}
	if err := repo.CheckoutBranch(ctx, cfg.DevBranch); err != nil {
		return err
	}

	if err := git.InstallPreCommitHook(ctx.RepoRoot, cfg.MainBranch, cfg.DevBranch); err != nil {
		return err
	}
	if err := config.Save(ctx.RepoRoot, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	ctx.Splog.Info("wgit initialized. %s and %s are protected.",
		tui.ColorBranchName(cfg.MainBranch, false), tui.ColorBranchName(cfg.DevBranch, true))
	return nil
}
