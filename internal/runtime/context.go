package runtime

import (
	"context"
	"fmt"

	"github.com/waliwuao/wgit/internal/config"
	"github.com/waliwuao/wgit/internal/git"
	"github.com/waliwuao/wgit/internal/tui"
)

// Context provides access to the repository, output and prompts for commands.
// The embedded context.Context is passed to every git invocation.
type Context struct {
	context.Context
	Repo     *git.Repo
	Splog    *tui.Splog
	Prompter tui.Prompter
	RepoRoot string
	Config   *config.WorkflowConfig
}

// NewContext assembles a Context from its parts
func NewContext(ctx context.Context, repo *git.Repo, splog *tui.Splog, prompter tui.Prompter, repoRoot string, cfg *config.WorkflowConfig) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Context{
		Context:  ctx,
		Repo:     repo,
		Splog:    splog,
		Prompter: prompter,
		RepoRoot: repoRoot,
		Config:   cfg,
	}
}

// NewRunner builds the real git executor for dir: mutating commands are
// echoed dimmed on the console and every invocation is traced to the log file.
func NewRunner(dir string, splog *tui.Splog) *git.CommandRunner {
	return git.NewCommandRunner(dir,
		git.WithOutput(splog.Writer()),
		git.WithEcho(tui.ColorDim),
		git.WithTrace(splog.Trace),
	)
}

// GetContext discovers the repository around the working directory, loads
// its configuration and wires the terminal prompter.
func GetContext(ctx context.Context, splog *tui.Splog) (*Context, error) {
	repoRoot, err := git.GetRepoRoot("")
	if err != nil {
		return nil, fmt.Errorf("not a git repository (run `wgit init` first): %w", err)
	}

	cfg, err := config.Load(repoRoot)
	if err != nil {
		return nil, err
	}

	repo := git.NewRepo(NewRunner(repoRoot, splog))
	return NewContext(ctx, repo, splog, tui.NewTerminalPrompter(), repoRoot, cfg), nil
}
