package actions

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/testhelpers"
	"github.com/waliwuao/wgit/testhelpers/scenario"
)

var origin = map[string]string{"origin": "git@example.com:team/app.git"}

func stubRemoteHeads(f *testhelpers.FakeExecutor, remote string, branches ...string) {
	for _, b := range branches {
		f.StubOutput("0123abcd\trefs/heads/"+b, "ls-remote", "--heads", remote, b)
	}
}

func TestSyncAction(t *testing.T) {
	t.Run("no remote configured", func(t *testing.T) {
		s := scenario.NewFake(t)

		require.ErrorIs(t, SyncAction(s.Context), wgiterrors.ErrNoRemoteConfigured)
		require.Empty(t, s.Fake.Calls())
	})

	t.Run("clean tree pulls then pushes", func(t *testing.T) {
		s := scenario.NewFake(t).WithRemotes(origin).OnBranch("feature/x")
		stubRemoteHeads(s.Fake, "origin", "main", "feature/x")

		require.NoError(t, SyncAction(s.Context))
		require.Equal(t, []string{
			"pull --no-rebase --no-edit origin feature/x",
			"push -u origin feature/x",
		}, s.Fake.Executed(), s.Fake.Dump())
		require.Contains(t, s.Output.String(), "Sync complete.")
	})

	t.Run("dirty tree with a conflicting pull", func(t *testing.T) {
		s := scenario.NewFake(t).WithRemotes(origin).OnBranch("feature/x")
		stubRemoteHeads(s.Fake, "origin", "main", "feature/x")
		s.Fake.
			StubOutput(" M a.txt", "status", "--porcelain").
			StubOutput("abc123", "rev-parse", "stash@{0}").
			StubError(testhelpers.GitError("CONFLICT (content): Merge conflict in a.txt"),
				"pull", "--no-rebase", "--no-edit", "origin", "feature/x").
			StubOutput("", conflictQuery...).
			StubOutput("", conflictQuery...).
			StubOutput("a.txt", conflictQuery...).
			StubOutput("a.txt", conflictQuery...).
			StubOutput("", conflictQuery...).
			StubOutput("m", "rev-parse", "-q", "--verify", "MERGE_HEAD")
		s.Prompter.Choose(conflictContinue)

		require.NoError(t, SyncAction(s.Context))
		require.Equal(t, []string{
			"stash push -u -m wgit-sync: feature/x",
			"pull --no-rebase --no-edit origin feature/x",
			"commit --no-edit",
			"push -u origin feature/x",
			"stash pop",
		}, s.Fake.Executed(), s.Fake.Dump())
		require.NotContains(t, s.Output.String(), "git stash apply")
		s.ExpectPromptsConsumed()
	})

	t.Run("new remote gets main before anything else", func(t *testing.T) {
		s := scenario.NewFake(t).WithRemotes(origin).OnBranch("develop")

		require.NoError(t, SyncAction(s.Context))
		executed := s.Fake.Executed()
		require.Equal(t, []string{"push -u origin main", "push -u origin develop"}, executed, s.Fake.Dump())
		require.False(t, s.Fake.Called("pull", "--no-rebase", "--no-edit", "origin", "develop"))
		require.Contains(t, s.Output.String(), "Detected new remote")
	})

	t.Run("failing bootstrap push stops the sync and reports the shelf", func(t *testing.T) {
		s := scenario.NewFake(t).WithRemotes(origin).OnBranch("develop")
		s.Fake.
			StubOutput("?? new.txt", "status", "--porcelain").
			StubOutput("abc123", "rev-parse", "stash@{0}").
			StubError(testhelpers.GitError("remote: Permission denied"), "push", "-u", "origin", "main")

		err := SyncAction(s.Context)
		require.ErrorContains(t, err, "failed to push main to origin")
		require.False(t, s.Fake.Called("push", "-u", "origin", "develop"))
		require.False(t, s.Fake.Called("stash", "pop"))
		require.Equal(t, 1, strings.Count(s.Output.String(), "git stash apply abc123"))
	})

	t.Run("several remotes are offered", func(t *testing.T) {
		s := scenario.NewFake(t).
			WithRemotes(map[string]string{"origin": "a", "upstream": "b"}).
			OnBranch("develop")
		stubRemoteHeads(s.Fake, "upstream", "main", "develop")
		s.Prompter.Choose("upstream")

		require.NoError(t, SyncAction(s.Context))
		require.Equal(t, []string{
			"pull --no-rebase --no-edit upstream develop",
			"push -u upstream develop",
		}, s.Fake.Executed())
		require.Equal(t, []string{"Select remote to sync:"}, s.Prompter.Asked)
	})

	t.Run("abort while unshelving leaves the recovery command", func(t *testing.T) {
		s := scenario.NewFake(t).WithRemotes(origin).OnBranch("feature/x")
		stubRemoteHeads(s.Fake, "origin", "main", "feature/x")
		s.Fake.
			StubOutput(" M a.txt", "status", "--porcelain").
			StubOutput("abc123", "rev-parse", "stash@{0}").
			StubError(testhelpers.GitError("CONFLICT (content): Merge conflict in a.txt"), "stash", "pop").
			StubOutput("", conflictQuery...).
			StubOutput("", conflictQuery...).
			StubOutput("", conflictQuery...).
			StubOutput("a.txt", conflictQuery...)
		s.Prompter.Choose(conflictAbort)

		require.ErrorIs(t, SyncAction(s.Context), wgiterrors.ErrAbortedByUser)
		require.Equal(t, 1, strings.Count(s.Output.String(), "git stash apply abc123"))
		require.False(t, s.Fake.Called("stash", "drop"))
	})

	t.Run("resolved unshelve drops the kept stash entry", func(t *testing.T) {
		s := scenario.NewFake(t).WithRemotes(origin).OnBranch("feature/x")
		stubRemoteHeads(s.Fake, "origin", "main", "feature/x")
		s.Fake.
			StubOutput(" M a.txt", "status", "--porcelain").
			StubOutput("abc123", "rev-parse", "stash@{0}").
			StubError(testhelpers.GitError("CONFLICT"), "stash", "pop").
			StubOutput("", conflictQuery...).
			StubOutput("", conflictQuery...).
			StubOutput("", conflictQuery...).
			StubOutput("a.txt", conflictQuery...).
			StubOutput("a.txt", conflictQuery...).
			StubOutput("", conflictQuery...)
		s.Prompter.Choose(conflictContinue)

		require.NoError(t, SyncAction(s.Context))
		executed := s.Fake.Executed()
		require.Equal(t, "stash drop", executed[len(executed)-1], s.Fake.Dump())
		require.NotContains(t, s.Output.String(), "git stash apply")
	})

	t.Run("failed drop after a resolved unshelve does not offer a re-apply", func(t *testing.T) {
		s := scenario.NewFake(t).WithRemotes(origin).OnBranch("feature/x")
		stubRemoteHeads(s.Fake, "origin", "main", "feature/x")
		s.Fake.
			StubOutput(" M a.txt", "status", "--porcelain").
			StubOutput("abc123", "rev-parse", "stash@{0}").
			StubError(testhelpers.GitError("CONFLICT"), "stash", "pop").
			StubError(testhelpers.GitError("error: could not drop stash"), "stash", "drop").
			StubOutput("", conflictQuery...).
			StubOutput("", conflictQuery...).
			StubOutput("", conflictQuery...).
			StubOutput("a.txt", conflictQuery...).
			StubOutput("a.txt", conflictQuery...).
			StubOutput("", conflictQuery...)
		s.Prompter.Choose(conflictContinue)

		require.ErrorContains(t, SyncAction(s.Context), "could not drop stash")
		require.NotContains(t, s.Output.String(), "git stash apply")
		require.Equal(t, 1, strings.Count(s.Output.String(), "git stash drop"))
	})

	t.Run("pre-existing conflicts are refused before shelving", func(t *testing.T) {
		s := scenario.NewFake(t).WithRemotes(origin).OnBranch("feature/x")
		s.Fake.
			StubOutput("UU a.txt", "status", "--porcelain").
			StubOutput("a.txt", conflictQuery...)

		require.ErrorIs(t, SyncAction(s.Context), wgiterrors.ErrUnresolvedConflicts)
		require.Empty(t, s.Fake.Executed())
	})
}

func TestSyncActionWithGit(t *testing.T) {
	s := scenario.NewReal(t, func(scene *testhelpers.Scene) error {
		if err := testhelpers.WorkflowSceneSetup(scene); err != nil {
			return err
		}
		return scene.Repo.CheckoutBranch("develop")
	})
	repo := s.Scene.Repo
	bare, err := repo.CreateBareRemote("origin")
	require.NoError(t, err)
	s.WithRemotes(map[string]string{"origin": bare})

	require.NoError(t, repo.WriteFile("wip.txt", "unfinished\n"))

	require.NoError(t, SyncAction(s.Context))

	heads, err := repo.RunGitCommandAndGetOutput("ls-remote", "--heads", "origin")
	require.NoError(t, err)
	require.Contains(t, heads, "refs/heads/main")
	require.Contains(t, heads, "refs/heads/develop")

	wip, err := repo.ReadFile("wip.txt")
	require.NoError(t, err)
	require.Equal(t, "unfinished\n", wip)
	stashes, err := repo.StashList()
	require.NoError(t, err)
	require.Empty(t, stashes)
	require.NotContains(t, s.Output.String(), "git stash apply")

	clone, err := testhelpers.CloneGitRepo(bare, filepath.Join(t.TempDir(), "clone"))
	require.NoError(t, err)
	require.NoError(t, clone.CheckoutBranch("develop"))
	require.NoError(t, clone.CommitFile("remote.txt", "from elsewhere\n", "feat: remote work"))
	require.NoError(t, clone.PushBranch("origin", "develop"))

	require.NoError(t, SyncAction(s.Context))

	pulled, err := repo.ReadFile("remote.txt")
	require.NoError(t, err)
	require.Equal(t, "from elsewhere\n", pulled)
	testhelpers.ExpectCommits(t, repo, "develop", []string{"feat: remote work"})

	wip, err = repo.ReadFile("wip.txt")
	require.NoError(t, err)
	require.Equal(t, "unfinished\n", wip)
}
