package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/testhelpers"
	"github.com/waliwuao/wgit/testhelpers/scenario"
)

func TestStartAction(t *testing.T) {
	t.Run("asks for type and name", func(t *testing.T) {
		s := scenario.NewFake(t)
		s.Prompter.Choose("feature").Type("user login")

		require.NoError(t, StartAction(s.Context, StartOptions{}))
		require.Equal(t, []string{"checkout -b feature/user-login"}, s.Fake.Executed())
		s.ExpectPromptsConsumed()
	})

	t.Run("flags skip the prompts", func(t *testing.T) {
		s := scenario.NewFake(t)

		require.NoError(t, StartAction(s.Context, StartOptions{Type: "hotfix", Name: "1.2.1"}))
		require.Equal(t, []string{"checkout -b hotfix/1.2.1"}, s.Fake.Executed())
		require.Empty(t, s.Prompter.Asked)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		s := scenario.NewFake(t)
		require.ErrorContains(t, StartAction(s.Context, StartOptions{Type: "topic", Name: "x"}), "unknown branch type")
		require.Empty(t, s.Fake.Executed())
	})

	t.Run("name that sanitizes to nothing is rejected", func(t *testing.T) {
		s := scenario.NewFake(t)
		s.Prompter.Type(" ?* ")
		require.Error(t, StartAction(s.Context, StartOptions{Type: "bugfix"}))
		require.Empty(t, s.Fake.Executed())
	})
}

func TestSwitchAction(t *testing.T) {
	t.Run("picks from local branches", func(t *testing.T) {
		s := scenario.NewFake(t)
		s.Fake.StubOutput("develop\nfeature/a\nmain", "branch", "--format=%(refname:short)")
		s.Prompter.Choose("feature/a")

		require.NoError(t, SwitchAction(s.Context, ""))
		require.Equal(t, []string{"checkout feature/a"}, s.Fake.Executed())
		require.Equal(t, []string{"Select branch to switch to:"}, s.Prompter.Asked)
	})

	t.Run("named branch is checked out directly", func(t *testing.T) {
		s := scenario.NewFake(t)
		require.NoError(t, SwitchAction(s.Context, "main"))
		require.Equal(t, []string{"checkout main"}, s.Fake.Executed())
	})
}

func TestDeleteAction(t *testing.T) {
	t.Run("protected names are refused", func(t *testing.T) {
		for _, name := range []string{"main", "develop"} {
			s := scenario.NewFake(t)
			err := DeleteAction(s.Context, DeleteOptions{BranchName: name, Force: true})
			require.ErrorIs(t, err, wgiterrors.ErrProtectedBranch)
			require.Empty(t, s.Fake.Executed())
		}
	})

	t.Run("protected branches are not offered", func(t *testing.T) {
		s := scenario.NewFake(t)
		s.Fake.StubOutput("develop\nfeature/a\nmain\nrelease/1.0", "branch", "--format=%(refname:short)")
		s.Prompter.Choose("main")

		err := DeleteAction(s.Context, DeleteOptions{})
		require.ErrorContains(t, err, "has no option")
		require.Empty(t, s.Fake.Executed())
	})

	t.Run("confirmed delete forces removal", func(t *testing.T) {
		s := scenario.NewFake(t)
		s.Fake.StubOutput("develop\nfeature/a\nmain", "branch", "--format=%(refname:short)")
		s.Prompter.Choose("feature/a").ConfirmWith(true)

		require.NoError(t, DeleteAction(s.Context, DeleteOptions{}))
		require.Equal(t, []string{"branch -D feature/a"}, s.Fake.Executed())
	})

	t.Run("declined confirmation aborts", func(t *testing.T) {
		s := scenario.NewFake(t)
		s.Prompter.ConfirmWith(false)

		require.ErrorIs(t, DeleteAction(s.Context, DeleteOptions{BranchName: "feature/a"}), wgiterrors.ErrAbortedByUser)
		require.Empty(t, s.Fake.Executed())
	})

	t.Run("nothing to delete", func(t *testing.T) {
		s := scenario.NewFake(t)
		s.Fake.StubOutput("develop\nmain", "branch", "--format=%(refname:short)")
		require.ErrorContains(t, DeleteAction(s.Context, DeleteOptions{}), "no deletable branches")
	})
}

func TestBranchActionsWithGit(t *testing.T) {
	s := scenario.NewReal(t, testhelpers.WorkflowSceneSetup)
	repo := s.Scene.Repo

	require.NoError(t, StartAction(s.Context, StartOptions{Type: "feature", Name: "search box"}))
	current, err := repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "feature/search-box", current)

	require.NoError(t, SwitchAction(s.Context, "develop"))
	require.NoError(t, DeleteAction(s.Context, DeleteOptions{BranchName: "feature/search-box", Force: true}))
	testhelpers.ExpectBranches(t, repo, []string{"develop", "main"})
}
