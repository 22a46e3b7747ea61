package actions

import (
	"github.com/waliwuao/wgit/internal/runtime"
)

// AddAction stages the changed files the user picks
func AddAction(ctx *runtime.Context) error {
	files, err := ctx.Repo.ChangedFiles(ctx)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		ctx.Splog.Info("No modified or untracked files.")
		return nil
	}

	selected, err := ctx.Prompter.MultiSelect("Select files to add:", files)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		ctx.Splog.Info("No files selected.")
		return nil
	}

	if err := ctx.Repo.Stage(ctx, selected...); err != nil {
		return err
	}
	ctx.Splog.Info("Staged %d file(s).", len(selected))
	return nil
}
