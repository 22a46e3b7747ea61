// Package errors provides sentinel errors and custom error types for wgit.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrDirtyWorkspace indicates that the working tree has uncommitted changes
	ErrDirtyWorkspace = errors.New("workspace has uncommitted changes, please commit or stash them first")

	// ErrProtectedBranch indicates a destructive operation on the main or development branch
	ErrProtectedBranch = errors.New("operation not allowed on a protected branch")

	// ErrAbortedByUser indicates the user canceled a prompt, the commit form or conflict resolution
	ErrAbortedByUser = errors.New("aborted by user")

	// ErrEmptySubject indicates a commit message without a subject
	ErrEmptySubject = errors.New("subject cannot be empty")

	// ErrNoRemoteConfigured indicates that wgit has no remote to talk to
	ErrNoRemoteConfigured = errors.New("no remotes configured, run `wgit config` to add a remote url")

	// ErrConflict indicates that a git operation stopped on conflicting edits
	ErrConflict = errors.New("conflict")

	// ErrUnresolvedConflicts indicates the index already holds unmerged paths before an operation started
	ErrUnresolvedConflicts = errors.New("repository has unresolved conflicts, resolve them before continuing")
)

// ProtectedBranchError represents an attempt to finish or delete a protected branch
type ProtectedBranchError struct {
	BranchName string
	Operation  string
}

func (e *ProtectedBranchError) Error() string {
	return fmt.Sprintf("cannot %s %s: it is a protected branch", e.Operation, e.BranchName)
}

// Is returns true if the target error is ErrProtectedBranch
func (e *ProtectedBranchError) Is(target error) bool {
	return target == ErrProtectedBranch
}

// NewProtectedBranchError creates a new ProtectedBranchError
func NewProtectedBranchError(operation, branchName string) *ProtectedBranchError {
	return &ProtectedBranchError{BranchName: branchName, Operation: operation}
}

// ConflictError signals that a merge, pull or unshelve stopped on conflicts.
// It carries the conflicted paths observed right after the failure.
type ConflictError struct {
	Operation string
	Files     []string
	Err       error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s hit conflicts in %d file(s): %s", e.Operation, len(e.Files), strings.Join(e.Files, ", "))
}

// Is returns true if the target error is ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// NewConflictError creates a new ConflictError
func NewConflictError(operation string, files []string, err error) *ConflictError {
	return &ConflictError{Operation: operation, Files: files, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("%s command failed: %s %s", e.Command, e.Command, strings.Join(e.Args, " "))
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += fmt.Sprintf("\n%s", stderr)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// IsAborted reports whether err is an intentional user exit
func IsAborted(err error) bool {
	return errors.Is(err, ErrAbortedByUser)
}
