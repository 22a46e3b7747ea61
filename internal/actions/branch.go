package actions

import (
	"fmt"
	"strings"

	"github.com/waliwuao/wgit/internal/config"
	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/internal/runtime"
	"github.com/waliwuao/wgit/internal/tui"
	"github.com/waliwuao/wgit/internal/utils"
)

// StartOptions contains options for starting a workflow branch
type StartOptions struct {
	// Type is one of config.WorkflowBranchTypes; asked for when empty
	Type string
	// Name is the part after the type prefix; asked for when empty
	Name string
}

// StartAction creates and checks out <type>/<name>
func StartAction(ctx *runtime.Context, opts StartOptions) error {
	branchType := opts.Type
	if branchType == "" {
		idx, err := ctx.Prompter.Select("Select branch type:", config.WorkflowBranchTypes)
		if err != nil {
			return err
		}
		branchType = config.WorkflowBranchTypes[idx]
	}
	if !utils.ContainsString(config.WorkflowBranchTypes, branchType) {
		return fmt.Errorf("unknown branch type %q (expected one of %s)", branchType, strings.Join(config.WorkflowBranchTypes, ", "))
	}

	name := opts.Name
	if name == "" {
		var err error
		name, err = ctx.Prompter.Input("Enter branch name:", "")
		if err != nil {
			return err
		}
	}
	name = utils.SanitizeBranchName(name)
	if name == "" {
		return fmt.Errorf("branch name cannot be empty")
	}

	fullName := branchType + "/" + name
	if err := ctx.Repo.CreateAndCheckoutBranch(ctx, fullName); err != nil {
		return err
	}
	ctx.Splog.Info("Started %s", tui.ColorBranchName(fullName, true))
	return nil
}

// SwitchAction checks out a branch, asking for it when name is empty
func SwitchAction(ctx *runtime.Context, name string) error {
	if name == "" {
		branches, err := ctx.Repo.ListBranches(ctx)
		if err != nil {
			return err
		}
		if len(branches) == 0 {
			return fmt.Errorf("no branches to switch to")
		}
		idx, err := ctx.Prompter.SelectBranch("Select branch to switch to:", branches)
		if err != nil {
			return err
		}
		name = branches[idx]
	}

	return ctx.Repo.CheckoutBranch(ctx, name)
}

// DeleteOptions contains options for deleting a branch
type DeleteOptions struct {
	BranchName string
	// Force skips the confirmation
	Force bool
}

// DeleteAction force-deletes a non-protected local branch
func DeleteAction(ctx *runtime.Context, opts DeleteOptions) error {
	cfg := ctx.Config
	name := opts.BranchName

	if name != "" && cfg.IsProtected(name) {
		return wgiterrors.NewProtectedBranchError("delete", name)
	}

	if name == "" {
		branches, err := ctx.Repo.ListBranches(ctx)
		if err != nil {
			return err
		}
		var candidates []string
		for _, b := range branches {
			if !cfg.IsProtected(b) {
				candidates = append(candidates, b)
			}
		}
		if len(candidates) == 0 {
			return fmt.Errorf("no deletable branches available")
		}
		idx, err := ctx.Prompter.SelectBranch("Select branch to delete:", candidates)
		if err != nil {
			return err
		}
		name = candidates[idx]
	}

	if !opts.Force {
		ok, err := ctx.Prompter.Confirm(fmt.Sprintf("Delete %s? Unmerged commits on it will be lost.", name), false)
		if err != nil {
			return err
		}
		if !ok {
			return wgiterrors.ErrAbortedByUser
		}
	}

	if err := ctx.Repo.DeleteBranch(ctx, name); err != nil {
		return err
	}
	ctx.Splog.Info("Deleted %s", tui.ColorBranchName(name, false))
	return nil
}
