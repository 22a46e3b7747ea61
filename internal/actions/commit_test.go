package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waliwuao/wgit/internal/config"
	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/testhelpers"
	"github.com/waliwuao/wgit/testhelpers/scenario"
)

func TestCommitAction(t *testing.T) {
	t.Run("local merge mode only commits", func(t *testing.T) {
		s := scenario.NewFake(t).OnBranch("feature/x")
		s.Prompter.Choose("docs").Compose("readme", "explain sync", "Covers the shelf.\nAnd remotes.")

		require.NoError(t, CommitAction(s.Context))
		require.Equal(t, []string{
			"commit -m docs(readme): explain sync\n\nCovers the shelf.\nAnd remotes.",
		}, s.Fake.Executed())
		require.Equal(t, []string{"Select commit type:", "commit form"}, s.Prompter.Asked)
	})

	t.Run("blank scope is left out of the header", func(t *testing.T) {
		s := scenario.NewFake(t).OnBranch("feature/x")
		s.Prompter.Choose("perf").Compose("  ", " faster status ", "")

		require.NoError(t, CommitAction(s.Context))
		require.Equal(t, []string{"commit -m perf: faster status"}, s.Fake.Executed())
	})

	t.Run("empty subject never commits", func(t *testing.T) {
		s := scenario.NewFake(t).OnBranch("feature/x")
		s.Prompter.Choose("feat").Compose("x", "", "")

		require.ErrorIs(t, CommitAction(s.Context), wgiterrors.ErrEmptySubject)
		require.Empty(t, s.Fake.Executed())
	})

	t.Run("escape at the type prompt aborts", func(t *testing.T) {
		s := scenario.NewFake(t).OnBranch("feature/x")
		s.Prompter.Abort(wgiterrors.ErrAbortedByUser)

		require.True(t, wgiterrors.IsAborted(CommitAction(s.Context)))
		require.Empty(t, s.Fake.Executed())
	})

	t.Run("remote review pushes the branch", func(t *testing.T) {
		s := scenario.NewFake(t).
			WithReviewMode(config.RemoteReview).
			WithRemotes(map[string]string{"origin": "a", "fork": "b"}).
			OnBranch("feature/review")
		s.Prompter.Choose("feat").Compose("", "reviewable", "").Choose("fork")

		require.NoError(t, CommitAction(s.Context))
		require.Equal(t, []string{
			"commit -m feat: reviewable",
			"push -u fork feature/review",
		}, s.Fake.Executed())
		s.ExpectPromptsConsumed()
	})

	t.Run("remote review without remotes skips the push", func(t *testing.T) {
		s := scenario.NewFake(t).WithReviewMode(config.RemoteReview).OnBranch("feature/x")
		s.Prompter.Choose("fix").Compose("", "y", "")

		require.NoError(t, CommitAction(s.Context))
		require.Equal(t, []string{"commit -m fix: y"}, s.Fake.Executed())
		require.Contains(t, s.Output.String(), "Skipping the push")
	})

	t.Run("protected branches are refused before the form opens", func(t *testing.T) {
		for _, branch := range []string{"main", "develop"} {
			s := scenario.NewFake(t).OnBranch(branch)

			err := CommitAction(s.Context)
			require.ErrorIs(t, err, wgiterrors.ErrProtectedBranch)
			require.Contains(t, err.Error(), branch)
			require.Empty(t, s.Prompter.Asked)
			require.Empty(t, s.Fake.Executed())
		}
	})

	t.Run("failed commit is returned", func(t *testing.T) {
		s := scenario.NewFake(t).OnBranch("feature/x")
		s.Fake.StubError(testhelpers.GitError("nothing to commit"), "commit", "-m", "fix: y")
		s.Prompter.Choose("fix").Compose("", "y", "")

		require.ErrorContains(t, CommitAction(s.Context), "nothing to commit")
	})
}

func TestCommitActionWithGit(t *testing.T) {
	s := scenario.NewReal(t, func(scene *testhelpers.Scene) error {
		if err := testhelpers.BasicSceneSetup(scene); err != nil {
			return err
		}
		if err := scene.Repo.CreateAndCheckoutBranch("feature/doc"); err != nil {
			return err
		}
		if err := scene.Repo.WriteFile("doc.md", "# doc\n"); err != nil {
			return err
		}
		return scene.Repo.RunGitCommand("add", "doc.md")
	})
	s.Prompter.Choose("docs").Compose("", "add doc", "")

	require.NoError(t, CommitAction(s.Context))
	testhelpers.ExpectCommits(t, s.Scene.Repo, "feature/doc", []string{"docs: add doc", "1"})
}
