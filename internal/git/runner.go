package git

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	wgiterrors "github.com/waliwuao/wgit/internal/errors"
)

// Executor runs the git binary with an argument vector.
//
// Execute is used for mutating commands: it echoes the command line, streams
// git's own output to the user and reports success or failure. Output and
// RawOutput are used for queries: nothing is shown to the user and stdout is
// returned (trimmed, or untouched for RawOutput). All three fail with a
// *errors.GitCommandError carrying stderr when git exits non-zero.
type Executor interface {
	Execute(ctx context.Context, args ...string) error
	Output(ctx context.Context, args ...string) (string, error)
	RawOutput(ctx context.Context, args ...string) (string, error)
}

// RunnerOption configures a CommandRunner
type RunnerOption func(*CommandRunner)

// WithOutput sets where streamed git output and echoed command lines go
func WithOutput(w io.Writer) RunnerOption {
	return func(r *CommandRunner) {
		r.out = w
	}
}

// WithEcho sets the function that renders the echoed command line
func WithEcho(render func(line string) string) RunnerOption {
	return func(r *CommandRunner) {
		r.render = render
	}
}

// WithTrace sets a debug sink that receives every invocation
func WithTrace(trace func(format string, args ...interface{})) RunnerOption {
	return func(r *CommandRunner) {
		r.trace = trace
	}
}

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
	out        io.Writer
	render     func(line string) string
	trace      func(format string, args ...interface{})
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string, opts ...RunnerOption) *CommandRunner {
	r := &CommandRunner{
		workingDir: workingDir,
		out:        os.Stdout,
		render:     func(line string) string { return line },
		trace:      func(string, ...interface{}) {},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Execute echoes and runs a mutating git command, streaming its output.
func (r *CommandRunner) Execute(ctx context.Context, args ...string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	line := "  git " + strings.Join(args, " ")
	_, _ = io.WriteString(r.out, r.render(line)+"\n")
	r.trace("exec: git %s", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stderr bytes.Buffer
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.out
	cmd.Stderr = io.MultiWriter(r.out, &stderr)

	if err := cmd.Run(); err != nil {
		r.trace("exec failed: git %s: %v", strings.Join(args, " "), err)
		return wgiterrors.NewGitCommandError("git", args, "", stderr.String(), err)
	}
	return nil
}

// Output runs a git query and returns its trimmed stdout
func (r *CommandRunner) Output(ctx context.Context, args ...string) (string, error) {
	out, err := r.runInternal(ctx, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// RawOutput runs a git query and returns its stdout untouched
func (r *CommandRunner) RawOutput(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, args...)
}

func (r *CommandRunner) runInternal(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	r.trace("query: git %s", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", wgiterrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	return stdout.String(), nil
}

// splitLines splits trimmed command output into non-empty, trimmed lines
func splitLines(output string) []string {
	if strings.TrimSpace(output) == "" {
		return []string{}
	}
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
