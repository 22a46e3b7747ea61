package git

import (
	"context"
	"fmt"
)

// StashPush shelves all local changes, untracked files included, and
// returns the SHA of the created stash commit.
func (r *Repo) StashPush(ctx context.Context, label string) (string, error) {
	if err := r.exec.Execute(ctx, "stash", "push", "-u", "-m", label); err != nil {
		return "", fmt.Errorf("stash push failed: %w", err)
	}
	sha, err := r.exec.Output(ctx, "rev-parse", "stash@{0}")
	if err != nil {
		return "", fmt.Errorf("failed to read stash ref: %w", err)
	}
	return sha, nil
}

// StashPop restores the most recent stash.
// The raw command error is returned so callers can inspect conflicts.
func (r *Repo) StashPop(ctx context.Context) error {
	return r.exec.Execute(ctx, "stash", "pop")
}

// StashDrop drops the most recent stash entry
func (r *Repo) StashDrop(ctx context.Context) error {
	if err := r.exec.Execute(ctx, "stash", "drop"); err != nil {
		return fmt.Errorf("stash drop failed: %w", err)
	}
	return nil
}
