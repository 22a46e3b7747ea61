package git

import "context"

// Pull pulls branchName from remote into the current branch.
// The raw command error is returned so callers can inspect conflicts.
func (r *Repo) Pull(ctx context.Context, remote, branchName string) error {
	return r.exec.Execute(ctx, "pull", "--no-rebase", "--no-edit", remote, branchName)
}

// PushBranch pushes branchName to remote and sets upstream tracking
func (r *Repo) PushBranch(ctx context.Context, remote, branchName string) error {
	return r.exec.Execute(ctx, "push", "-u", remote, branchName)
}
