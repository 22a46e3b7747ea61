package git

import (
	"fmt"
	"os"
	"path/filepath"
)

const preCommitHookTemplate = `#!/bin/sh
# Installed by wgit: direct commits to protected branches are forbidden.
# Concluding a merge is allowed.
if git rev-parse -q --verify MERGE_HEAD >/dev/null 2>&1; then
    exit 0
fi
branch="$(git rev-parse --abbrev-ref HEAD)"
if [ "$branch" = "%[1]s" ] || [ "$branch" = "%[2]s" ]; then
    echo "wgit Error: Direct commits to $branch are forbidden."
    exit 1
fi
`

// PreCommitHookPath returns the location of the pre-commit hook. Linked
// worktrees share the hooks of the main repository.
func PreCommitHookPath(repoRoot string) (string, error) {
	gitDir, err := CommonDir(repoRoot)
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, "hooks", "pre-commit"), nil
}

// InstallPreCommitHook writes a pre-commit hook that rejects commits on the
// main and development branches.
func InstallPreCommitHook(repoRoot, mainBranch, devBranch string) error {
	hookPath, err := PreCommitHookPath(repoRoot)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(hookPath), 0750); err != nil {
		return fmt.Errorf("failed to create hooks directory: %w", err)
	}

	script := fmt.Sprintf(preCommitHookTemplate, mainBranch, devBranch)
	// #nosec G306 -- hooks must be executable
	if err := os.WriteFile(hookPath, []byte(script), 0755); err != nil {
		return fmt.Errorf("failed to write pre-commit hook: %w", err)
	}
	return os.Chmod(hookPath, 0755)
}
