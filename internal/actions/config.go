package actions

import (
	"fmt"
	"strings"

	"github.com/waliwuao/wgit/internal/config"
	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/internal/git"
	"github.com/waliwuao/wgit/internal/runtime"
	"github.com/waliwuao/wgit/internal/tui"
)

const (
	menuAddRemote    = "Add remote repository"
	menuReviewMode   = "Set review mode (LocalMerge vs RemoteReview)"
	menuBranchNames  = "Set branch names (main/develop)"
	menuShowConfig   = "Show current config"
	menuExitConfig   = "Exit"
	reviewModeLocal  = "LocalMerge (merge locally when finishing branches)"
	reviewModeRemote = "RemoteReview (push the branch after each commit)"
)

var configMenu = []string{menuAddRemote, menuReviewMode, menuBranchNames, menuShowConfig, menuExitConfig}

// ConfigAction runs the configuration menu until the user exits.
// Every change is saved immediately.
func ConfigAction(ctx *runtime.Context) error {
	for {
		idx, err := ctx.Prompter.Select("wgit config menu:", configMenu)
		if wgiterrors.IsAborted(err) {
			return nil
		}
		if err != nil {
			return err
		}

		switch configMenu[idx] {
		case menuAddRemote:
			err = addRemote(ctx)
		case menuReviewMode:
			err = setReviewMode(ctx)
		case menuBranchNames:
			err = setBranchNames(ctx)
		case menuShowConfig:
			err = ShowConfig(ctx)
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func addRemote(ctx *runtime.Context) error {
	name, err := ctx.Prompter.Input("Remote name (e.g. origin):", "origin")
	if err != nil {
		return err
	}
	url, err := ctx.Prompter.Input("Remote URL:", "")
	if err != nil {
		return err
	}
	name, url = strings.TrimSpace(name), strings.TrimSpace(url)
	if name == "" || url == "" {
		return fmt.Errorf("remote name and URL are required")
	}

	if err := git.AddRemote(ctx.RepoRoot, name, url); err != nil {
		return err
	}
	ctx.Config.SetRemote(name, url)
	if err := config.Save(ctx.RepoRoot, ctx.Config); err != nil {
		return err
	}
	ctx.Splog.Info("Remote %s added.", tui.ColorCyan(name))
	return nil
}

func setReviewMode(ctx *runtime.Context) error {
	idx, err := ctx.Prompter.Select("Select review mode:", []string{reviewModeLocal, reviewModeRemote})
	if err != nil {
		return err
	}
	if idx == 0 {
		return SetReviewMode(ctx, config.LocalMerge)
	}
	return SetReviewMode(ctx, config.RemoteReview)
}

// SetReviewMode saves mode as the review mode
func SetReviewMode(ctx *runtime.Context, mode config.ReviewMode) error {
	ctx.Config.ReviewMode = mode
	if err := config.Save(ctx.RepoRoot, ctx.Config); err != nil {
		return err
	}
	ctx.Splog.Info("Review mode set to %s.", mode)
	return nil
}

func setBranchNames(ctx *runtime.Context) error {
	mainBranch, err := ctx.Prompter.Input("Main branch name:", ctx.Config.MainBranch)
	if err != nil {
		return err
	}
	devBranch, err := ctx.Prompter.Input("Develop branch name:", ctx.Config.DevBranch)
	if err != nil {
		return err
	}
	mainBranch, devBranch = strings.TrimSpace(mainBranch), strings.TrimSpace(devBranch)
	if mainBranch == "" || devBranch == "" {
		return fmt.Errorf("branch names cannot be empty")
	}
	if mainBranch == devBranch {
		return fmt.Errorf("main and develop branches must differ")
	}

	ctx.Config.MainBranch = mainBranch
	ctx.Config.DevBranch = devBranch
	if err := config.Save(ctx.RepoRoot, ctx.Config); err != nil {
		return err
	}
	if err := git.InstallPreCommitHook(ctx.RepoRoot, mainBranch, devBranch); err != nil {
		return err
	}
	ctx.Splog.Info("Branch names updated and hook refreshed.")
	return nil
}

// ShowConfig prints the saved configuration and any git remotes wgit does not know about
func ShowConfig(ctx *runtime.Context) error {
	cfg := ctx.Config
	splog := ctx.Splog

	splog.Info("%s", tui.Heading("Config"))
	splog.Info("Main branch:  %s", tui.ColorBranchName(cfg.MainBranch, false))
	splog.Info("Dev branch:   %s", tui.ColorBranchName(cfg.DevBranch, false))
	splog.Info("Review mode:  %s", cfg.ReviewMode)
	if len(cfg.Remotes) == 0 {
		splog.Info("Remotes:      %s", tui.ColorDim("(none)"))
	} else {
		splog.Info("Remotes:")
		for _, name := range cfg.RemoteNames() {
			splog.Info("  %s  %s", tui.ColorCyan(name), cfg.Remotes[name])
		}
	}

	gitRemotes, err := git.ListRemotes(ctx.RepoRoot)
	if err != nil {
		splog.Debug("could not list git remotes: %v", err)
		return nil
	}
	for _, name := range git.SortedKeys(gitRemotes) {
		if _, known := cfg.Remotes[name]; !known {
			splog.Tip("git remote %s (%s) is not registered with wgit; add it from the config menu to sync with it.", name, gitRemotes[name])
		}
	}
	return nil
}
