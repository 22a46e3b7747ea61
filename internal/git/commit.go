package git

import (
	"context"
	"fmt"
)

// Commit creates a commit with the given message
func (r *Repo) Commit(ctx context.Context, message string) error {
	if err := r.exec.Execute(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// CommitAllowEmpty creates a commit even when nothing is staged
func (r *Repo) CommitAllowEmpty(ctx context.Context, message string) error {
	if err := r.exec.Execute(ctx, "commit", "--allow-empty", "-m", message); err != nil {
		return fmt.Errorf("failed to create empty commit: %w", err)
	}
	return nil
}

// CommitNoEdit concludes an in-progress merge with git's prepared message
func (r *Repo) CommitNoEdit(ctx context.Context) error {
	if err := r.exec.Execute(ctx, "commit", "--no-edit"); err != nil {
		return fmt.Errorf("failed to conclude merge: %w", err)
	}
	return nil
}

// Stage adds the given paths to the index
func (r *Repo) Stage(ctx context.Context, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	if err := r.exec.Execute(ctx, args...); err != nil {
		return fmt.Errorf("failed to stage files: %w", err)
	}
	return nil
}
