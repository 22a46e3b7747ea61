package git

import (
	"context"
	"fmt"
)

// CreateAndCheckoutBranch creates and checks out a new branch
func (r *Repo) CreateAndCheckoutBranch(ctx context.Context, branchName string) error {
	if err := r.exec.Execute(ctx, "checkout", "-b", branchName); err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CheckoutBranch checks out an existing branch
func (r *Repo) CheckoutBranch(ctx context.Context, branchName string) error {
	if err := r.exec.Execute(ctx, "checkout", branchName); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CreateBranch creates a branch at HEAD without checking it out
func (r *Repo) CreateBranch(ctx context.Context, branchName string) error {
	if err := r.exec.Execute(ctx, "branch", branchName); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", branchName, err)
	}
	return nil
}

// RenameCurrentBranch force-renames the current branch
func (r *Repo) RenameCurrentBranch(ctx context.Context, newName string) error {
	if err := r.exec.Execute(ctx, "branch", "-M", newName); err != nil {
		return fmt.Errorf("failed to rename current branch to %s: %w", newName, err)
	}
	return nil
}

// DeleteMergedBranch deletes a branch with `branch -d`, which git refuses
// when the branch holds commits that are not merged.
func (r *Repo) DeleteMergedBranch(ctx context.Context, branchName string) error {
	if err := r.exec.Execute(ctx, "branch", "-d", branchName); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}

// DeleteBranch force-deletes a branch
func (r *Repo) DeleteBranch(ctx context.Context, branchName string) error {
	if err := r.exec.Execute(ctx, "branch", "-D", branchName); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}

// Merge merges branchName into the current branch with an explicit merge commit.
// The raw command error is returned so callers can inspect conflicts.
func (r *Repo) Merge(ctx context.Context, branchName, message string) error {
	return r.exec.Execute(ctx, "merge", "--no-ff", branchName, "-m", message)
}

// CreateAnnotatedTag tags HEAD
func (r *Repo) CreateAnnotatedTag(ctx context.Context, name, message string) error {
	if err := r.exec.Execute(ctx, "tag", "-a", name, "-m", message); err != nil {
		return fmt.Errorf("failed to create tag %s: %w", name, err)
	}
	return nil
}

// Reset moves HEAD to target with the given mode (--soft, --mixed, --hard)
func (r *Repo) Reset(ctx context.Context, mode, target string) error {
	if err := r.exec.Execute(ctx, "reset", mode, target); err != nil {
		return fmt.Errorf("failed to reset to %s: %w", target, err)
	}
	return nil
}

// Init runs git init in the working directory
func (r *Repo) Init(ctx context.Context) error {
	if err := r.exec.Execute(ctx, "init"); err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	return nil
}
