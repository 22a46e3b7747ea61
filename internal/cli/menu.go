package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/internal/tui"
)

type menuItem struct {
	label string
	// path is the command to run below the root; nil exits the menu
	path []string
}

var menuItems = []menuItem{
	{"init      Initialize the repository for wgit", []string{"init"}},
	{"add       Stage changed files", []string{"add"}},
	{"commit    Commit staged changes", []string{"commit"}},
	{"sync      Pull and push the current branch", []string{"sync"}},
	{"start     Start a workflow branch", []string{"branch", "start"}},
	{"switch    Switch to another branch", []string{"branch", "switch"}},
	{"finish    Finish the current branch", []string{"branch", "finish"}},
	{"delete    Delete a branch", []string{"branch", "delete"}},
	{"undo      Reset to an earlier point", []string{"undo"}},
	{"config    Configure remotes, review mode and branch names", []string{"config"}},
	{"exit      Quit", nil},
}

type chooseFunc func(title string, options []string) (int, error)

// runMenu lets the user run commands until they exit. A failing command is
// reported and the menu comes back.
func runMenu(root *cobra.Command, splog *tui.Splog, choose chooseFunc) error {
	labels := make([]string, len(menuItems))
	for i, item := range menuItems {
		labels[i] = item.label
	}

	for {
		idx, err := choose("wgit: what do you want to do?", labels)
		if wgiterrors.IsAborted(err) {
			splog.Info("Bye!")
			return nil
		}
		if err != nil {
			return err
		}

		item := menuItems[idx]
		if item.path == nil {
			splog.Info("Bye!")
			return nil
		}

		sub, _, err := root.Find(item.path)
		if err != nil || sub.RunE == nil {
			return fmt.Errorf("menu entry %q has no command", item.label)
		}
		sub.SetContext(root.Context())
		ReportError(splog, sub.RunE(sub, nil))
		splog.Newline()
	}
}
