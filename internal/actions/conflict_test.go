package actions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/testhelpers"
	"github.com/waliwuao/wgit/testhelpers/scenario"
)

var conflictQuery = []string{"diff", "--name-only", "--diff-filter=U"}

func TestResolveConflicts(t *testing.T) {
	conflict := wgiterrors.NewConflictError("pull of main", []string{"a.txt"}, errors.New("exit status 1"))

	t.Run("continues until the conflict set is empty", func(t *testing.T) {
		s := scenario.NewFake(t)
		s.Fake.
			StubOutput("a.txt\nb.txt", conflictQuery...).
			StubOutput("b.txt", conflictQuery...).
			StubOutput("", conflictQuery...)
		s.Prompter.Choose(conflictContinue).Choose(conflictContinue)

		require.NoError(t, ResolveConflicts(s.Context, conflict))
		require.Equal(t, 3, s.Fake.CountCalls(conflictQuery...))
		require.Empty(t, s.Fake.Executed())
		require.Contains(t, s.Output.String(), "b.txt")
		require.Contains(t, s.Output.String(), "All conflicts resolved.")
		s.ExpectPromptsConsumed()
	})

	t.Run("returns at once when nothing is conflicted", func(t *testing.T) {
		s := scenario.NewFake(t)
		require.NoError(t, ResolveConflicts(s.Context, conflict))
		require.Empty(t, s.Prompter.Asked)
	})

	t.Run("abort leaves the repository untouched", func(t *testing.T) {
		s := scenario.NewFake(t)
		s.Fake.StubOutput("a.txt", conflictQuery...)
		s.Prompter.Choose(conflictContinue).Choose(conflictAbort)

		err := ResolveConflicts(s.Context, conflict)
		require.ErrorIs(t, err, wgiterrors.ErrAbortedByUser)
		require.Empty(t, s.Fake.Executed())
		require.Len(t, s.Prompter.Asked, 2)
	})

	t.Run("escape at the prompt aborts", func(t *testing.T) {
		s := scenario.NewFake(t)
		s.Fake.StubOutput("a.txt", conflictQuery...)
		s.Prompter.Abort(wgiterrors.ErrAbortedByUser)

		require.True(t, wgiterrors.IsAborted(ResolveConflicts(s.Context, conflict)))
	})

	t.Run("only two choices are offered", func(t *testing.T) {
		s := scenario.NewFake(t)
		s.Fake.StubOutput("a.txt", conflictQuery...)
		s.Prompter.Choose("Skip")

		err := ResolveConflicts(s.Context, conflict)
		require.ErrorContains(t, err, "has no option")
	})
}

func TestRunConflictProne(t *testing.T) {
	t.Run("existing conflicts stop the step before it runs", func(t *testing.T) {
		s := scenario.NewFake(t)
		s.Fake.StubOutput("old.txt", conflictQuery...)
		ran := false

		_, err := runConflictProne(s.Context, "pull", func() error {
			ran = true
			return nil
		})
		require.ErrorIs(t, err, wgiterrors.ErrUnresolvedConflicts)
		require.False(t, ran)
	})

	t.Run("failure without conflicts is fatal", func(t *testing.T) {
		s := scenario.NewFake(t)
		stepErr := testhelpers.GitError("fatal: could not read from remote repository")

		resolved, err := runConflictProne(s.Context, "pull of main", func() error { return stepErr })
		require.False(t, resolved)
		require.ErrorIs(t, err, stepErr)
		require.NotErrorIs(t, err, wgiterrors.ErrConflict)
		require.Empty(t, s.Prompter.Asked)
	})

	t.Run("failure with conflicts enters the loop", func(t *testing.T) {
		s := scenario.NewFake(t)
		s.Fake.
			StubOutput("", conflictQuery...).
			StubOutput("a.txt", conflictQuery...).
			StubOutput("a.txt", conflictQuery...).
			StubOutput("", conflictQuery...)
		s.Prompter.Choose(conflictContinue)

		resolved, err := runConflictProne(s.Context, "merge", func() error { return testhelpers.GitError("CONFLICT") })
		require.NoError(t, err)
		require.True(t, resolved)
		s.ExpectPromptsConsumed()
	})

	t.Run("success skips everything", func(t *testing.T) {
		s := scenario.NewFake(t)
		resolved, err := runConflictProne(s.Context, "merge", func() error { return nil })
		require.NoError(t, err)
		require.False(t, resolved)
		require.Equal(t, 1, s.Fake.CountCalls(conflictQuery...))
	})
}

func TestFinalizeMerge(t *testing.T) {
	t.Run("commits when MERGE_HEAD exists", func(t *testing.T) {
		s := scenario.NewFake(t)
		s.Fake.StubOutput("abc", "rev-parse", "-q", "--verify", "MERGE_HEAD")
		require.NoError(t, finalizeMerge(s.Context))
		require.Equal(t, []string{"commit --no-edit"}, s.Fake.Executed())
	})

	t.Run("nothing to do without a merge", func(t *testing.T) {
		s := scenario.NewFake(t)
		require.NoError(t, finalizeMerge(s.Context))
		require.Empty(t, s.Fake.Executed())
	})
}
