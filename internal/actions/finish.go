package actions

import (
	"fmt"
	"strings"

	"github.com/waliwuao/wgit/internal/commitmsg"
	"github.com/waliwuao/wgit/internal/config"
	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/internal/runtime"
	"github.com/waliwuao/wgit/internal/tui"
)

// FinishAction merges the current workflow branch back and deletes it.
//
// release/ and hotfix/ branches land on the main branch first, optionally
// get a tag, then land on the development branch. Every other branch only
// lands on the development branch. All checks run before the first mutating
// git command.
func FinishAction(ctx *runtime.Context) error {
	repo := ctx.Repo
	splog := ctx.Splog
	cfg := ctx.Config

	branch, err := repo.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	switch cfg.Classify(branch) {
	case config.ProtectedBranch:
		return wgiterrors.NewProtectedBranchError("finish", branch)
	case config.OtherBranch:
		splog.Warn("%s is not a workflow branch, it will be merged into %s.", branch, cfg.DevBranch)
	}
	if err := repo.EnsureClean(ctx); err != nil {
		return err
	}

	msg, err := composeMessage(ctx)
	if err != nil {
		return err
	}

	splog.Info("%s", tui.Heading("Finish "+branch))

	if config.IsReleaseLike(branch) {
		if err := mergeInto(ctx, branch, cfg.MainBranch, msg); err != nil {
			return err
		}
		if err := tagRelease(ctx, msg); err != nil {
			return err
		}
	}
	if err := mergeInto(ctx, branch, cfg.DevBranch, msg); err != nil {
		return err
	}

	current, err := repo.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	if current == branch {
		if err := repo.CheckoutBranch(ctx, cfg.DevBranch); err != nil {
			return err
		}
	}

	splog.Info("Deleting %s...", tui.ColorBranchName(branch, false))
	if err := repo.DeleteMergedBranch(ctx, branch); err != nil {
		return err
	}

	splog.Info("Branch %s finished successfully.", tui.ColorBranchName(branch, false))
	return nil
}

// mergeInto checks out target and merges branch into it with --no-ff
func mergeInto(ctx *runtime.Context, branch, target string, msg commitmsg.Message) error {
	ctx.Splog.Info("Merging %s into %s...", tui.ColorBranchName(branch, false), tui.ColorBranchName(target, false))

	if err := ctx.Repo.CheckoutBranch(ctx, target); err != nil {
		return err
	}

	operation := fmt.Sprintf("merge of %s into %s", branch, target)
	resolved, err := runConflictProne(ctx, operation, func() error {
		return ctx.Repo.Merge(ctx, branch, msg.String())
	})
	if err != nil {
		return err
	}
	if resolved {
		return finalizeMerge(ctx)
	}
	return nil
}

// tagRelease asks for a tag name; an empty answer skips tagging
func tagRelease(ctx *runtime.Context, msg commitmsg.Message) error {
	tag, err := ctx.Prompter.Input("Enter release tag (e.g. v1.0.0), leave empty to skip:", "")
	if err != nil {
		return err
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		ctx.Splog.Info("No tag entered, skipping tag creation.")
		return nil
	}
	if err := ctx.Repo.CreateAnnotatedTag(ctx, tag, msg.String()); err != nil {
		return err
	}
	ctx.Splog.Info("Tagged %s", tui.ColorYellow(tag))
	return nil
}
