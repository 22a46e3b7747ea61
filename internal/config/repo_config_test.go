package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waliwuao/wgit/testhelpers"
)

func newRepoRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0750))
	return root
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults when config does not exist", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)

		cfg, err := Load(root)
		require.NoError(t, err)
		require.Equal(t, "main", cfg.MainBranch)
		require.Equal(t, "develop", cfg.DevBranch)
		require.Equal(t, LocalMerge, cfg.ReviewMode)
		require.Empty(t, cfg.Remotes)
	})

	t.Run("fills missing fields with defaults", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)
		err := os.WriteFile(Path(root), []byte(`{"mainBranch":"trunk"}`), 0600)
		require.NoError(t, err)

		cfg, err := Load(root)
		require.NoError(t, err)
		require.Equal(t, "trunk", cfg.MainBranch)
		require.Equal(t, "develop", cfg.DevBranch)
		require.NotNil(t, cfg.Remotes)
	})

	t.Run("fails on malformed json", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)
		err := os.WriteFile(Path(root), []byte(`{not json`), 0600)
		require.NoError(t, err)

		_, err = Load(root)
		require.Error(t, err)
	})
}

func TestSave(t *testing.T) {
	t.Parallel()

	t.Run("round trips remotes and review mode", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)

		cfg := Default()
		cfg.SetRemote("origin", "git@example.com:team/repo.git")
		cfg.SetRemote("backup", "/srv/backup.git")
		cfg.ReviewMode = RemoteReview
		require.NoError(t, Save(root, cfg))

		loaded, err := Load(root)
		require.NoError(t, err)
		require.Equal(t, RemoteReview, loaded.ReviewMode)
		require.Equal(t, []string{"backup", "origin"}, loaded.RemoteNames())
	})
}

func TestSaveFromLinkedWorktree(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.WorkflowSceneSetup)
	worktree := filepath.Join(t.TempDir(), "wt")
	require.NoError(t, scene.Repo.RunGitCommand("worktree", "add", "-b", "feature/wt", worktree))

	cfg := Default()
	cfg.DevBranch = "next"
	require.NoError(t, Save(worktree, cfg))

	loaded, err := Load(scene.Dir)
	require.NoError(t, err)
	require.Equal(t, "next", loaded.DevBranch)
	_, err = os.Stat(filepath.Join(scene.Dir, ".git", configFileName))
	require.NoError(t, err)
}

func TestParseReviewMode(t *testing.T) {
	mode, err := ParseReviewMode("RemoteReview")
	require.NoError(t, err)
	require.Equal(t, RemoteReview, mode)

	_, err = ParseReviewMode("Yolo")
	require.Error(t, err)
}
