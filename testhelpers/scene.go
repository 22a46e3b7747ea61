package testhelpers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a repository in a temp dir that t cleans up. The global
// git config is hidden for the whole test so that child git processes started
// by the code under test behave the same everywhere.
// NOTE: uses t.Setenv, so it is not safe for parallel tests.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")
	t.Setenv("GIT_MERGE_AUTOEDIT", "no")
	t.Setenv("WGIT_TEST_NO_INTERACTIVE", "1")

	tmpDir := filepath.Join(t.TempDir(), "repo")
	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// WriteWorkflowConfig writes .git/wgit.json with the given remotes and review mode.
func (s *Scene) WriteWorkflowConfig(remotes map[string]string, reviewMode string) error {
	data, err := json.MarshalIndent(map[string]interface{}{
		"remotes":    remotes,
		"reviewMode": reviewMode,
		"mainBranch": "main",
		"devBranch":  "develop",
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, ".git", "wgit.json"), data, 0600)
}

// BasicSceneSetup creates a single commit on main.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// WorkflowSceneSetup creates main with one commit and a develop branch from it.
func WorkflowSceneSetup(scene *Scene) error {
	if err := BasicSceneSetup(scene); err != nil {
		return err
	}
	return scene.Repo.CreateBranch("develop")
}
