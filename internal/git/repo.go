package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	gogitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// GetRepoRoot returns the root directory of the Git repository containing dir.
// An empty dir means the current working directory.
func GetRepoRoot(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

// CommonDir returns the git directory shared by every worktree of the
// repository containing dir. In a linked worktree .git is a file pointing
// into the main repository, so the location is read from go-git's storage.
func CommonDir(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}

	storage, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return "", fmt.Errorf("unsupported repository storage %T", repo.Storer)
	}
	// objects always resolve to the common directory
	objects, err := storage.Filesystem().Chroot("objects")
	if err != nil {
		return "", fmt.Errorf("failed to resolve git directory: %w", err)
	}
	return filepath.Dir(filepath.Clean(objects.Root())), nil
}

// AddRemote registers a remote in the repository's git config.
// An existing remote with the same name is replaced.
func AddRemote(repoRoot, name, url string) error {
	repo, err := gogit.PlainOpen(repoRoot)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	cfg := &gogitconfig.RemoteConfig{Name: name, URLs: []string{url}}
	_, err = repo.CreateRemote(cfg)
	if errors.Is(err, gogit.ErrRemoteExists) {
		if err := repo.DeleteRemote(name); err != nil {
			return fmt.Errorf("failed to replace remote %s: %w", name, err)
		}
		_, err = repo.CreateRemote(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// ListRemotes returns remote names mapped to their first URL, as git knows them
func ListRemotes(repoRoot string) (map[string]string, error) {
	repo, err := gogit.PlainOpen(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	remotes, err := repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}

	result := make(map[string]string, len(remotes))
	for _, remote := range remotes {
		url := ""
		if urls := remote.Config().URLs; len(urls) > 0 {
			url = urls[0]
		}
		result[remote.Config().Name] = url
	}
	return result, nil
}

// SortedKeys returns map keys in lexical order
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
