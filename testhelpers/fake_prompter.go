package testhelpers

import (
	"fmt"

	"github.com/waliwuao/wgit/internal/tui"
)

// Answer is one scripted reply. Err, when set, is returned instead of the value.
type Answer struct {
	Value   string
	Values  []string
	Confirm bool
	Commit  tui.CommitFields
	Err     error
	kind    string
}

// FakePrompter replays scripted answers in order and records every question.
// Select answers are matched against the offered options by label.
type FakePrompter struct {
	answers []Answer
	Asked   []string
}

var _ tui.Prompter = (*FakePrompter)(nil)

// NewFakePrompter returns a prompter with no scripted answers
func NewFakePrompter() *FakePrompter {
	return &FakePrompter{}
}

// Choose scripts a Select or SelectBranch answer by option label
func (p *FakePrompter) Choose(label string) *FakePrompter {
	p.answers = append(p.answers, Answer{Value: label, kind: "select"})
	return p
}

// Type scripts an Input answer
func (p *FakePrompter) Type(text string) *FakePrompter {
	p.answers = append(p.answers, Answer{Value: text, kind: "input"})
	return p
}

// ConfirmWith scripts a Confirm answer
func (p *FakePrompter) ConfirmWith(yes bool) *FakePrompter {
	p.answers = append(p.answers, Answer{Confirm: yes, kind: "confirm"})
	return p
}

// Pick scripts a MultiSelect answer
func (p *FakePrompter) Pick(values ...string) *FakePrompter {
	p.answers = append(p.answers, Answer{Values: values, kind: "multiselect"})
	return p
}

// Compose scripts a commit form submission
func (p *FakePrompter) Compose(scope, subject, body string) *FakePrompter {
	p.answers = append(p.answers, Answer{
		Commit: tui.CommitFields{Scope: scope, Subject: subject, Body: body},
		kind:   "commit",
	})
	return p
}

// Abort scripts the next question of any kind to fail with err
func (p *FakePrompter) Abort(err error) *FakePrompter {
	p.answers = append(p.answers, Answer{Err: err})
	return p
}

// Remaining returns how many scripted answers were not consumed
func (p *FakePrompter) Remaining() int {
	return len(p.answers)
}

func (p *FakePrompter) pop(kind, question string) (Answer, error) {
	p.Asked = append(p.Asked, question)
	if len(p.answers) == 0 {
		return Answer{}, fmt.Errorf("unexpected %s prompt: %q", kind, question)
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	if a.Err != nil {
		return Answer{}, a.Err
	}
	if a.kind != kind {
		return Answer{}, fmt.Errorf("prompt %q is a %s but the script has a %s", question, kind, a.kind)
	}
	return a, nil
}

func (p *FakePrompter) choose(title string, options []string) (int, error) {
	a, err := p.pop("select", title)
	if err != nil {
		return -1, err
	}
	for i, opt := range options {
		if opt == a.Value {
			return i, nil
		}
	}
	return -1, fmt.Errorf("prompt %q has no option %q (options: %v)", title, a.Value, options)
}

// Select implements tui.Prompter
func (p *FakePrompter) Select(title string, options []string) (int, error) {
	return p.choose(title, options)
}

// SelectBranch implements tui.Prompter
func (p *FakePrompter) SelectBranch(title string, branches []string) (int, error) {
	return p.choose(title, branches)
}

// Input implements tui.Prompter
func (p *FakePrompter) Input(prompt, _ string) (string, error) {
	a, err := p.pop("input", prompt)
	return a.Value, err
}

// Confirm implements tui.Prompter
func (p *FakePrompter) Confirm(prompt string, _ bool) (bool, error) {
	a, err := p.pop("confirm", prompt)
	return a.Confirm, err
}

// MultiSelect implements tui.Prompter
func (p *FakePrompter) MultiSelect(message string, _ []string) ([]string, error) {
	a, err := p.pop("multiselect", message)
	return a.Values, err
}

// ComposeCommit implements tui.Prompter
func (p *FakePrompter) ComposeCommit() (tui.CommitFields, error) {
	a, err := p.pop("commit", "commit form")
	return a.Commit, err
}
