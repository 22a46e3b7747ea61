package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	protected := NewProtectedBranchError("finish", "main")
	require.ErrorIs(t, protected, ErrProtectedBranch)
	require.ErrorIs(t, fmt.Errorf("wrapped: %w", protected), ErrProtectedBranch)
	require.Equal(t, "cannot finish main: it is a protected branch", protected.Error())

	cause := errors.New("exit status 1")
	conflict := NewConflictError("pull of develop", []string{"a.go", "b.go"}, cause)
	require.ErrorIs(t, conflict, ErrConflict)
	require.ErrorIs(t, conflict, cause)
	require.Contains(t, conflict.Error(), "2 file(s): a.go, b.go")

	var asConflict *ConflictError
	require.ErrorAs(t, fmt.Errorf("sync: %w", conflict), &asConflict)
	require.Equal(t, "pull of develop", asConflict.Operation)
}

func TestGitCommandError(t *testing.T) {
	cause := errors.New("exit status 128")
	err := NewGitCommandError("git", []string{"push", "-u", "origin", "main"}, "", "  fatal: no remote  \n", cause)

	require.Equal(t, "git command failed: git push -u origin main\nfatal: no remote\nexit status 128", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestIsAborted(t *testing.T) {
	require.True(t, IsAborted(ErrAbortedByUser))
	require.True(t, IsAborted(fmt.Errorf("commit form: %w", ErrAbortedByUser)))
	require.False(t, IsAborted(ErrEmptySubject))
	require.False(t, IsAborted(nil))
}
