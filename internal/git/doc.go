// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Branch management (create, delete, checkout, merge, tag)
//   - Repo state queries (status, conflicted files, branches, remote refs)
//   - Remote operations (pull, push) and stash handling
//   - Repository discovery and remote registration through go-git
//
// This package should be the only place where git commands are executed.
package git
