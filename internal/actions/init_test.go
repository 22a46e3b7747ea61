package actions

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waliwuao/wgit/internal/config"
	"github.com/waliwuao/wgit/internal/git"
	"github.com/waliwuao/wgit/testhelpers"
	"github.com/waliwuao/wgit/testhelpers/scenario"
)

func TestInitActionWithGit(t *testing.T) {
	t.Run("empty repository", func(t *testing.T) {
		s := scenario.NewReal(t, nil)
		repo := s.Scene.Repo

		require.NoError(t, InitAction(s.Context))

		testhelpers.ExpectBranches(t, repo, []string{"develop", "main"})
		testhelpers.ExpectCommits(t, repo, "main", []string{initialCommitMessage})
		current, err := repo.CurrentBranchName()
		require.NoError(t, err)
		require.Equal(t, "develop", current)

		hook, err := os.ReadFile(testhelpers.Must(git.PreCommitHookPath(s.Scene.Dir)))
		require.NoError(t, err)
		require.Contains(t, string(hook), `"main"`)
		require.Contains(t, string(hook), `"develop"`)

		_, err = os.Stat(config.Path(s.Scene.Dir))
		require.NoError(t, err)
	})

	t.Run("running twice changes nothing", func(t *testing.T) {
		s := scenario.NewReal(t, nil)
		repo := s.Scene.Repo

		require.NoError(t, InitAction(s.Context))
		before, err := repo.GetRevision("main")
		require.NoError(t, err)

		require.NoError(t, InitAction(s.Context))
		after, err := repo.GetRevision("main")
		require.NoError(t, err)
		require.Equal(t, before, after)
		testhelpers.ExpectBranches(t, repo, []string{"develop", "main"})
	})

	t.Run("existing history on another branch name", func(t *testing.T) {
		s := scenario.NewReal(t, func(scene *testhelpers.Scene) error {
			if err := testhelpers.BasicSceneSetup(scene); err != nil {
				return err
			}
			return scene.Repo.RunGitCommand("branch", "-M", "trunk")
		})
		repo := s.Scene.Repo

		require.NoError(t, InitAction(s.Context))
		testhelpers.ExpectBranches(t, repo, []string{"develop", "main"})
		testhelpers.ExpectCommits(t, repo, "main", []string{"1"})
	})

	t.Run("hook blocks direct commits but lets merges conclude", func(t *testing.T) {
		s := scenario.NewReal(t, nil)
		repo := s.Scene.Repo
		require.NoError(t, InitAction(s.Context))

		require.NoError(t, repo.WriteFile("direct.txt", "x"))
		require.NoError(t, repo.RunGitCommand("add", "direct.txt"))
		require.Error(t, repo.RunGitCommand("commit", "-m", "direct"))
		require.NoError(t, repo.RunGitCommand("reset", "--hard"))

		require.NoError(t, repo.CreateAndCheckoutBranch("feature/a"))
		require.NoError(t, repo.CommitFile("shared.txt", "feature\n", "feature side"))
		require.NoError(t, repo.CheckoutBranch("develop"))
		require.NoError(t, repo.RunGitCommand("checkout", "-b", "scratch"))
		require.NoError(t, repo.CommitFile("shared.txt", "scratch\n", "scratch side"))
		require.NoError(t, repo.CheckoutBranch("develop"))
		require.NoError(t, repo.RunGitCommand("merge", "--no-ff", "feature/a", "-m", "merge a"))
		require.Error(t, repo.RunGitCommand("merge", "--no-ff", "scratch", "-m", "merge scratch"))

		require.NoError(t, repo.WriteFile("shared.txt", "both\n"))
		require.NoError(t, repo.MarkMergeConflictsAsResolved())
		require.NoError(t, repo.RunGitCommand("commit", "--no-edit"))
		testhelpers.ExpectCommits(t, repo, "develop", []string{"merge scratch"})
	})
}
