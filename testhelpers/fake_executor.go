package testhelpers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	wgiterrors "github.com/waliwuao/wgit/internal/errors"
)

// Call is one recorded executor invocation
type Call struct {
	Args     []string
	Mutating bool
}

// String returns the argument vector joined by spaces
func (c Call) String() string {
	return strings.Join(c.Args, " ")
}

// Response is a scripted executor result
type Response struct {
	Out string
	Err error
}

type script struct {
	responses []Response
	fallback  bool
}

// FakeExecutor is a scripted git.Executor. Responses are queued per argument
// vector; the last queued response for a command repeats once the queue is
// drained. Unscripted commands succeed with empty output, except that
// MERGE_HEAD lookups fail so no merge appears to be in progress.
type FakeExecutor struct {
	mu      sync.Mutex
	scripts map[string]*script
	calls   []Call
}

// NewFakeExecutor returns an executor with no scripted responses
func NewFakeExecutor() *FakeExecutor {
	f := &FakeExecutor{scripts: map[string]*script{}}
	f.scripts[key("rev-parse", "-q", "--verify", "MERGE_HEAD")] = &script{
		responses: []Response{{Err: GitError("")}},
		fallback:  true,
	}
	return f
}

func key(args ...string) string {
	return strings.Join(args, "\x1f")
}

// Stub queues a response for the exact argument vector
func (f *FakeExecutor) Stub(out string, err error, args ...string) *FakeExecutor {
	f.mu.Lock()
	defer f.mu.Unlock()

	k := key(args...)
	s, ok := f.scripts[k]
	if !ok || s.fallback {
		s = &script{}
		f.scripts[k] = s
	}
	s.responses = append(s.responses, Response{Out: out, Err: err})
	return f
}

// StubOutput queues a successful response with output
func (f *FakeExecutor) StubOutput(out string, args ...string) *FakeExecutor {
	return f.Stub(out, nil, args...)
}

// StubError queues a failing response
func (f *FakeExecutor) StubError(err error, args ...string) *FakeExecutor {
	return f.Stub("", err, args...)
}

// GitError builds the error a failed git command produces
func GitError(stderr string) error {
	return wgiterrors.NewGitCommandError("git", nil, "", stderr, errors.New("exit status 1"))
}

func (f *FakeExecutor) next(mutating bool, args []string) Response {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Args: append([]string(nil), args...), Mutating: mutating})

	s, ok := f.scripts[key(args...)]
	if !ok || len(s.responses) == 0 {
		return Response{}
	}
	r := s.responses[0]
	if len(s.responses) > 1 {
		s.responses = s.responses[1:]
	}
	return r
}

// Execute implements git.Executor
func (f *FakeExecutor) Execute(_ context.Context, args ...string) error {
	return f.next(true, args).Err
}

// Output implements git.Executor
func (f *FakeExecutor) Output(_ context.Context, args ...string) (string, error) {
	r := f.next(false, args)
	if r.Err != nil {
		return "", r.Err
	}
	return strings.TrimSpace(r.Out), nil
}

// RawOutput implements git.Executor
func (f *FakeExecutor) RawOutput(_ context.Context, args ...string) (string, error) {
	r := f.next(false, args)
	if r.Err != nil {
		return "", r.Err
	}
	return r.Out, nil
}

// Calls returns every invocation in order
func (f *FakeExecutor) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Executed returns the mutating commands in order, each joined by spaces
func (f *FakeExecutor) Executed() []string {
	var out []string
	for _, c := range f.Calls() {
		if c.Mutating {
			out = append(out, c.String())
		}
	}
	return out
}

// Called reports whether the exact argument vector was invoked
func (f *FakeExecutor) Called(args ...string) bool {
	return f.CallIndex(args...) >= 0
}

// CallIndex returns the position of the first matching invocation, or -1
func (f *FakeExecutor) CallIndex(args ...string) int {
	want := strings.Join(args, " ")
	for i, c := range f.Calls() {
		if c.String() == want {
			return i
		}
	}
	return -1
}

// CountCalls returns how often the exact argument vector was invoked
func (f *FakeExecutor) CountCalls(args ...string) int {
	want := strings.Join(args, " ")
	n := 0
	for _, c := range f.Calls() {
		if c.String() == want {
			n++
		}
	}
	return n
}

// Dump renders the call log for failure messages
func (f *FakeExecutor) Dump() string {
	var b strings.Builder
	for i, c := range f.Calls() {
		kind := "query"
		if c.Mutating {
			kind = "exec "
		}
		fmt.Fprintf(&b, "%2d %s git %s\n", i, kind, c.String())
	}
	return b.String()
}
