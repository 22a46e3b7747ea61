package actions

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waliwuao/wgit/internal/config"
	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/internal/git"
	"github.com/waliwuao/wgit/testhelpers"
	"github.com/waliwuao/wgit/testhelpers/scenario"
)

func TestConfigActionWithGit(t *testing.T) {
	t.Run("add remote registers it with git and wgit", func(t *testing.T) {
		s := scenario.NewReal(t, testhelpers.BasicSceneSetup)
		s.Prompter.
			Choose(menuAddRemote).Type("origin").Type("https://example.com/team/app.git").
			Choose(menuExitConfig)

		require.NoError(t, ConfigAction(s.Context))

		remotes, err := git.ListRemotes(s.Scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "https://example.com/team/app.git", remotes["origin"])

		saved, err := config.Load(s.Scene.Dir)
		require.NoError(t, err)
		require.Equal(t, []string{"origin"}, saved.RemoteNames())
		s.ExpectPromptsConsumed()
	})

	t.Run("adding the same remote again replaces the url", func(t *testing.T) {
		s := scenario.NewReal(t, testhelpers.BasicSceneSetup)
		s.Prompter.
			Choose(menuAddRemote).Type("origin").Type("/srv/old.git").
			Choose(menuAddRemote).Type("origin").Type("/srv/new.git").
			Abort(wgiterrors.ErrAbortedByUser)

		require.NoError(t, ConfigAction(s.Context))
		remotes, err := git.ListRemotes(s.Scene.Dir)
		require.NoError(t, err)
		require.Equal(t, map[string]string{"origin": "/srv/new.git"}, remotes)
	})

	t.Run("review mode is saved", func(t *testing.T) {
		s := scenario.NewReal(t, testhelpers.BasicSceneSetup)
		s.Prompter.Choose(menuReviewMode).Choose(reviewModeRemote).Choose(menuExitConfig)

		require.NoError(t, ConfigAction(s.Context))
		saved, err := config.Load(s.Scene.Dir)
		require.NoError(t, err)
		require.Equal(t, config.RemoteReview, saved.ReviewMode)
	})

	t.Run("branch names refresh the hook", func(t *testing.T) {
		s := scenario.NewReal(t, testhelpers.BasicSceneSetup)
		s.Prompter.Choose(menuBranchNames).Type("trunk").Type("next").Choose(menuExitConfig)

		require.NoError(t, ConfigAction(s.Context))
		saved, err := config.Load(s.Scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "trunk", saved.MainBranch)
		require.Equal(t, "next", saved.DevBranch)

		hook, err := os.ReadFile(testhelpers.Must(git.PreCommitHookPath(s.Scene.Dir)))
		require.NoError(t, err)
		require.Contains(t, string(hook), `"trunk"`)
	})

	t.Run("identical branch names are rejected", func(t *testing.T) {
		s := scenario.NewReal(t, testhelpers.BasicSceneSetup)
		s.Prompter.Choose(menuBranchNames).Type("main").Type("main")

		require.ErrorContains(t, ConfigAction(s.Context), "must differ")
		_, err := os.Stat(config.Path(s.Scene.Dir))
		require.True(t, os.IsNotExist(err))
	})

	t.Run("show lists remotes git knows but wgit does not", func(t *testing.T) {
		s := scenario.NewReal(t, testhelpers.BasicSceneSetup)
		_, err := s.Scene.Repo.CreateBareRemote("upstream")
		require.NoError(t, err)
		s.WithRemotes(map[string]string{"origin": "/srv/origin.git"})

		require.NoError(t, ShowConfig(s.Context))
		out := s.Output.String()
		require.Contains(t, out, "Review mode:  LocalMerge")
		require.Contains(t, out, "/srv/origin.git")
		require.Contains(t, out, "git remote upstream")
	})
}
