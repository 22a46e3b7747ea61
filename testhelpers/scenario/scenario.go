// Package scenario provides a high-level test scenario that combines a
// repository, a scripted prompter and a runtime Context to provide a terse
// API for action tests.
package scenario

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waliwuao/wgit/internal/config"
	"github.com/waliwuao/wgit/internal/git"
	"github.com/waliwuao/wgit/internal/runtime"
	"github.com/waliwuao/wgit/internal/tui"
	"github.com/waliwuao/wgit/testhelpers"
)

// Scenario bundles a runtime Context with the fakes and buffers behind it.
// Exactly one of Fake and Scene is set.
type Scenario struct {
	T        *testing.T
	Context  *runtime.Context
	Prompter *testhelpers.FakePrompter
	Output   *bytes.Buffer
	Fake     *testhelpers.FakeExecutor
	Scene    *testhelpers.Scene
}

// NewFake creates a Scenario whose git commands are answered by a FakeExecutor.
// The config has main, develop and no remotes.
func NewFake(t *testing.T) *Scenario {
	t.Helper()

	fake := testhelpers.NewFakeExecutor()
	out := &bytes.Buffer{}
	prompter := testhelpers.NewFakePrompter()
	ctx := runtime.NewContext(context.Background(), git.NewRepo(fake), tui.NewSplogWithWriter(out), prompter, t.TempDir(), config.Default())

	return &Scenario{
		T:        t,
		Context:  ctx,
		Prompter: prompter,
		Output:   out,
		Fake:     fake,
	}
}

// NewReal creates a Scenario over a real repository built by setup.
// NOTE: this is NOT safe for parallel tests as it uses t.Setenv through NewScene.
func NewReal(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()

	scene := testhelpers.NewScene(t, setup)
	out := &bytes.Buffer{}
	splog := tui.NewSplogWithWriter(out)
	cfg, err := config.Load(scene.Dir)
	require.NoError(t, err)

	prompter := testhelpers.NewFakePrompter()
	ctx := runtime.NewContext(context.Background(), git.NewRepo(runtime.NewRunner(scene.Dir, splog)), splog, prompter, scene.Dir, cfg)

	return &Scenario{
		T:        t,
		Context:  ctx,
		Prompter: prompter,
		Output:   out,
		Scene:    scene,
	}
}

// WithRemotes registers remote names in the in-memory config
func (s *Scenario) WithRemotes(remotes map[string]string) *Scenario {
	for name, url := range remotes {
		s.Context.Config.SetRemote(name, url)
	}
	return s
}

// WithReviewMode sets the in-memory review mode
func (s *Scenario) WithReviewMode(mode config.ReviewMode) *Scenario {
	s.Context.Config.ReviewMode = mode
	return s
}

// OnBranch scripts the fake's current branch
func (s *Scenario) OnBranch(branch string) *Scenario {
	s.Fake.StubOutput(branch, "rev-parse", "--abbrev-ref", "HEAD")
	return s
}

// ExpectPromptsConsumed fails the test if scripted answers were left over
func (s *Scenario) ExpectPromptsConsumed() {
	s.T.Helper()
	require.Zero(s.T, s.Prompter.Remaining(), "unused scripted answers; asked: %v", s.Prompter.Asked)
}
