package actions

import (
	"fmt"

	"github.com/waliwuao/wgit/internal/commitmsg"
	"github.com/waliwuao/wgit/internal/config"
	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/internal/runtime"
	"github.com/waliwuao/wgit/internal/tui"
)

// composeMessage asks for a commit type, runs the commit form and validates
// the result. Nothing touches the repository here.
func composeMessage(ctx *runtime.Context) (commitmsg.Message, error) {
	idx, err := ctx.Prompter.Select("Select commit type:", commitmsg.Types)
	if err != nil {
		return commitmsg.Message{}, err
	}

	fields, err := ctx.Prompter.ComposeCommit()
	if err != nil {
		return commitmsg.Message{}, err
	}

	return commitmsg.New(commitmsg.Types[idx], fields.Scope, fields.Subject, fields.Body)
}

// CommitAction commits the staged changes with a structured message. In
// RemoteReview mode the branch is pushed afterwards so it can be reviewed.
func CommitAction(ctx *runtime.Context) error {
	branch, err := ctx.Repo.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	if ctx.Config.IsProtected(branch) {
		return wgiterrors.NewProtectedBranchError("commit to", branch)
	}

	msg, err := composeMessage(ctx)
	if err != nil {
		return err
	}

	if err := ctx.Repo.Commit(ctx, msg.String()); err != nil {
		return err
	}
	ctx.Splog.Info("Committed %s", tui.ColorGreen(msg.Header()))

	if ctx.Config.ReviewMode != config.RemoteReview {
		return nil
	}

	ctx.Splog.Info("Review mode is RemoteReview. Pushing the branch for review...")
	if len(ctx.Config.Remotes) == 0 {
		ctx.Splog.Info("No remote found in wgit config. Skipping the push.")
		return nil
	}

	remote, err := chooseRemote(ctx, "Select remote to push to:")
	if err != nil {
		return err
	}
	if err := ctx.Repo.PushBranch(ctx, remote, branch); err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}
	return nil
}
