package actions

import (
	"fmt"
	"strings"

	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/internal/runtime"
	"github.com/waliwuao/wgit/internal/tui"
)

const historyDepth = 20

var (
	undoSources = []string{
		"Undo by commit (git log)",
		"Undo by operation (git reflog)",
	}
	resetModes = []string{
		"--soft (keep changes staged)",
		"--mixed (keep changes in the working directory)",
		"--hard (discard all changes)",
	}
)

// UndoAction resets the current branch to a commit picked from the log or the reflog
func UndoAction(ctx *runtime.Context) error {
	source, err := ctx.Prompter.Select("Select undo method:", undoSources)
	if err != nil {
		return err
	}

	var entries []string
	if source == 0 {
		entries, err = ctx.Repo.RecentCommits(ctx, historyDepth)
	} else {
		entries, err = ctx.Repo.RecentOperations(ctx, historyDepth)
	}
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no history found")
	}

	idx, err := ctx.Prompter.Select("Select target point to reset to:", entries)
	if err != nil {
		return err
	}
	target := strings.Fields(entries[idx])[0]

	modeIdx, err := ctx.Prompter.Select("Select reset mode:", resetModes)
	if err != nil {
		return err
	}
	mode := strings.Fields(resetModes[modeIdx])[0]

	if mode == "--hard" {
		ok, err := ctx.Prompter.Confirm(fmt.Sprintf("Discard all uncommitted changes and reset to %s?", target), false)
		if err != nil {
			return err
		}
		if !ok {
			return wgiterrors.ErrAbortedByUser
		}
	}

	if err := ctx.Repo.Reset(ctx, mode, target); err != nil {
		return err
	}
	ctx.Splog.Info("Reset %s to %s", mode, tui.ColorYellow(target))
	return nil
}
