package actions

import (
	"fmt"

	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/internal/runtime"
	"github.com/waliwuao/wgit/internal/tui"
)

const (
	conflictContinue = "Continue (conflicts are resolved and staged)"
	conflictAbort    = "Abort"
)

// ResolveConflicts blocks until git reports no unmerged paths or the user
// aborts. Conflicted files are re-read on every round since resolution
// happens outside wgit. Abort leaves the repository exactly as it is.
func ResolveConflicts(ctx *runtime.Context, conflict *wgiterrors.ConflictError) error {
	splog := ctx.Splog

	for {
		files, err := ctx.Repo.ConflictedFiles(ctx)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			splog.Info("%s", tui.ColorGreen("All conflicts resolved."))
			return nil
		}

		printConflictReport(splog, conflict.Operation, files)

		choice, err := ctx.Prompter.Select("How do you want to proceed?", []string{conflictContinue, conflictAbort})
		if err != nil {
			return err
		}
		if choice != 0 {
			splog.Info("Leaving the conflicts in place. Resolve or abort them with git when you are ready.")
			return wgiterrors.ErrAbortedByUser
		}
	}
}

func printConflictReport(splog *tui.Splog, operation string, files []string) {
	splog.Newline()
	splog.Info("%s", tui.ColorRed(fmt.Sprintf("Hit conflicts during %s", operation)))
	splog.Info("%s", tui.ColorYellow("Unmerged files:"))
	for _, file := range files {
		splog.Info("  %s", tui.ColorRed(file))
	}
	splog.Newline()
	splog.Info("%s", tui.ColorYellow("To continue:"))
	splog.Info("(1) resolve the listed conflicts in your editor")
	splog.Info("(2) mark them as resolved with %s", tui.ColorCyan("git add <file>"))
	splog.Info("(3) choose Continue below")
}

// ensureNoConflicts refuses to start a conflict-prone step while the index
// already holds unmerged paths, so that any conflict seen after the step
// can only come from the step itself.
func ensureNoConflicts(ctx *runtime.Context) error {
	files, err := ctx.Repo.ConflictedFiles(ctx)
	if err != nil {
		return err
	}
	if len(files) > 0 {
		return fmt.Errorf("%w: %v", wgiterrors.ErrUnresolvedConflicts, files)
	}
	return nil
}

// runConflictProne runs a merge, pull or unshelve step. A failure followed
// by a non-empty conflict set enters ResolveConflicts and reports
// resolved=true once it succeeds; any other failure is returned as is.
func runConflictProne(ctx *runtime.Context, operation string, step func() error) (resolved bool, err error) {
	if err := ensureNoConflicts(ctx); err != nil {
		return false, err
	}

	stepErr := step()
	if stepErr == nil {
		return false, nil
	}

	files, err := ctx.Repo.ConflictedFiles(ctx)
	if err != nil {
		return false, err
	}
	if len(files) == 0 {
		return false, fmt.Errorf("%s failed: %w", operation, stepErr)
	}

	conflict := wgiterrors.NewConflictError(operation, files, stepErr)
	ctx.Splog.Debug("%v", conflict)
	if err := ResolveConflicts(ctx, conflict); err != nil {
		return false, err
	}
	return true, nil
}

// finalizeMerge concludes a merge whose conflicts the user resolved
func finalizeMerge(ctx *runtime.Context) error {
	if !ctx.Repo.IsMergeInProgress(ctx) {
		return nil
	}
	ctx.Splog.Info("Finalizing the merge...")
	return ctx.Repo.CommitNoEdit(ctx)
}
