package actions

import (
	"fmt"

	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/internal/runtime"
	"github.com/waliwuao/wgit/internal/tui"
)

// stashLabelPrefix marks stash entries created by sync
const stashLabelPrefix = "wgit-sync: "

// chooseRemote picks the only configured remote or asks for one
func chooseRemote(ctx *runtime.Context, title string) (string, error) {
	names := ctx.Config.RemoteNames()
	switch len(names) {
	case 0:
		return "", wgiterrors.ErrNoRemoteConfigured
	case 1:
		return names[0], nil
	}

	idx, err := ctx.Prompter.Select(title, names)
	if err != nil {
		return "", err
	}
	return names[idx], nil
}

// SyncAction pulls the current branch from a remote and pushes it back.
//
// Local changes are shelved first and restored at the end. A remote that has
// no main branch yet gets it pushed before anything else. The shelf is
// guarded: if the run stops while the changes are still stashed, the command
// that restores them is printed on the way out.
func SyncAction(ctx *runtime.Context) error {
	repo := ctx.Repo
	splog := ctx.Splog
	cfg := ctx.Config

	remote, err := chooseRemote(ctx, "Select remote to sync:")
	if err != nil {
		return err
	}

	branch, err := repo.CurrentBranch(ctx)
	if err != nil {
		return err
	}

	splog.Info("%s", tui.Heading("Sync"))
	splog.Info("Syncing branch %s with remote %s", tui.ColorBranchName(branch, true), tui.ColorCyan(remote))

	guard := NewStashGuard(splog)
	defer guard.Release()

	dirty, err := repo.IsDirty(ctx)
	if err != nil {
		return err
	}
	if dirty {
		if err := ensureNoConflicts(ctx); err != nil {
			return err
		}
		splog.Info("Shelving local changes...")
		ref, err := repo.StashPush(ctx, stashLabelPrefix+branch)
		if err != nil {
			return err
		}
		guard.MarkActive(ref)
	}

	hasMain, err := repo.RemoteHasBranch(ctx, remote, cfg.MainBranch)
	if err != nil {
		return err
	}
	if !hasMain {
		splog.Info("Detected new remote. Pushing %s first so it becomes the default branch...", tui.ColorBranchName(cfg.MainBranch, false))
		if err := repo.PushBranch(ctx, remote, cfg.MainBranch); err != nil {
			return fmt.Errorf("failed to push %s to %s: %w", cfg.MainBranch, remote, err)
		}
	}

	if err := pullBranch(ctx, remote, branch); err != nil {
		return err
	}

	splog.Info("Pushing %s to %s...", tui.ColorBranchName(branch, false), remote)
	if err := repo.PushBranch(ctx, remote, branch); err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}

	if guard.Active() {
		if err := unshelve(ctx, guard); err != nil {
			return err
		}
	}

	splog.Info("%s", tui.ColorGreen("Sync complete."))
	return nil
}

// pullBranch merges the remote copy of branch into the checkout. A branch
// the remote does not have yet has nothing to pull.
func pullBranch(ctx *runtime.Context, remote, branch string) error {
	onRemote, err := ctx.Repo.RemoteHasBranch(ctx, remote, branch)
	if err != nil {
		return err
	}
	if !onRemote {
		ctx.Splog.Info("%s does not exist on %s yet, nothing to pull.", tui.ColorBranchName(branch, false), remote)
		return nil
	}

	ctx.Splog.Info("Pulling %s from %s...", tui.ColorBranchName(branch, false), remote)
	resolved, err := runConflictProne(ctx, "pull of "+branch, func() error {
		return ctx.Repo.Pull(ctx, remote, branch)
	})
	if err != nil {
		return err
	}
	if resolved {
		return finalizeMerge(ctx)
	}
	return nil
}

// unshelve restores the stashed changes and consumes the guard once they
// are back in the working tree. On conflict the stash entry is kept by git,
// so it is dropped after the user has resolved the files.
func unshelve(ctx *runtime.Context, guard *StashGuard) error {
	ctx.Splog.Info("Restoring local changes...")
	resolved, err := runConflictProne(ctx, "unshelve", func() error {
		return ctx.Repo.StashPop(ctx)
	})
	if err != nil {
		return err
	}
	guard.Consume()
	if !resolved {
		return nil
	}

	if err := ctx.Repo.StashDrop(ctx); err != nil {
		ctx.Splog.Warn("Your changes are restored but the stash entry is still there.")
		ctx.Splog.Info("Remove it with: %s", tui.ColorCyan("git stash drop"))
		return err
	}
	return nil
}
