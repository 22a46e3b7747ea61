package git

import (
	"context"
	"fmt"
	"strings"

	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/internal/utils"
)

// Repo is the single handle through which wgit reads and mutates the
// working tree. Every query and operation goes through its Executor so the
// whole workflow layer can run against a fake.
type Repo struct {
	exec Executor
}

// NewRepo creates a Repo over the given executor
func NewRepo(exec Executor) *Repo {
	return &Repo{exec: exec}
}

// Executor returns the underlying executor
func (r *Repo) Executor() Executor {
	return r.exec
}

// CurrentBranch returns the checked-out branch name
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	branch, err := r.exec.Output(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	if branch == "" || branch == "HEAD" {
		return "", wgiterrors.ErrNotOnBranch
	}
	return branch, nil
}

// ListBranches returns local branch names in ref order
func (r *Repo) ListBranches(ctx context.Context) ([]string, error) {
	out, err := r.exec.Output(ctx, "branch", "--format=%(refname:short)")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return splitLines(out), nil
}

// BranchExists reports whether a local branch exists
func (r *Repo) BranchExists(ctx context.Context, branchName string) (bool, error) {
	branches, err := r.ListBranches(ctx)
	if err != nil {
		return false, err
	}
	return utils.ContainsString(branches, branchName), nil
}

// IsDirty reports whether the working tree status is non-empty
func (r *Repo) IsDirty(ctx context.Context) (bool, error) {
	out, err := r.exec.Output(ctx, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("failed to read status: %w", err)
	}
	return out != "", nil
}

// EnsureClean fails with ErrDirtyWorkspace if the working tree is dirty
func (r *Repo) EnsureClean(ctx context.Context) error {
	dirty, err := r.IsDirty(ctx)
	if err != nil {
		return err
	}
	if dirty {
		return wgiterrors.ErrDirtyWorkspace
	}
	return nil
}

// ConflictedFiles returns the paths git currently marks as unmerged.
// The result is never cached: resolution happens outside wgit.
func (r *Repo) ConflictedFiles(ctx context.Context) ([]string, error) {
	out, err := r.exec.Output(ctx, "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicted files: %w", err)
	}
	return splitLines(out), nil
}

// IsMergeInProgress reports whether MERGE_HEAD exists
func (r *Repo) IsMergeInProgress(ctx context.Context) bool {
	_, err := r.exec.Output(ctx, "rev-parse", "-q", "--verify", "MERGE_HEAD")
	return err == nil
}

// HasCommits reports whether HEAD points at a commit
func (r *Repo) HasCommits(ctx context.Context) bool {
	_, err := r.exec.Output(ctx, "rev-parse", "HEAD")
	return err == nil
}

// RemoteHasBranch reports whether remote advertises refs/heads/<branch>
func (r *Repo) RemoteHasBranch(ctx context.Context, remote, branchName string) (bool, error) {
	out, err := r.exec.Output(ctx, "ls-remote", "--heads", remote, branchName)
	if err != nil {
		return false, fmt.Errorf("failed to query remote %s: %w", remote, err)
	}
	want := "refs/heads/" + branchName
	for _, line := range splitLines(out) {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[1] == want {
			return true, nil
		}
	}
	return false, nil
}

// ChangedFiles returns modified and untracked paths from `status --porcelain -z`.
// A rename entry is followed by its source path, which is skipped.
func (r *Repo) ChangedFiles(ctx context.Context) ([]string, error) {
	out, err := r.exec.RawOutput(ctx, "status", "--porcelain", "-z")
	if err != nil {
		return nil, fmt.Errorf("failed to read status: %w", err)
	}
	return parsePorcelainZ(out), nil
}

func parsePorcelainZ(out string) []string {
	files := []string{}
	entries := strings.Split(out, "\x00")
	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if len(entry) < 4 {
			continue
		}
		status := entry[:2]
		files = append(files, entry[3:])
		if strings.ContainsAny(status, "RC") {
			i++
		}
	}
	return files
}

// RecentCommits returns up to n one-line log entries
func (r *Repo) RecentCommits(ctx context.Context, n int) ([]string, error) {
	out, err := r.exec.Output(ctx, "log", "--oneline", "-n", fmt.Sprint(n))
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	return splitLines(out), nil
}

// RecentOperations returns up to n reflog entries
func (r *Repo) RecentOperations(ctx context.Context, n int) ([]string, error) {
	out, err := r.exec.Output(ctx, "reflog", "-n", fmt.Sprint(n))
	if err != nil {
		return nil, fmt.Errorf("failed to read reflog: %w", err)
	}
	return splitLines(out), nil
}
