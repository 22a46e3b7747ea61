package tui

// Prompter is every question wgit can ask the user. Actions depend on this
// interface so they can be driven by a scripted fake in tests.
type Prompter interface {
	// Select returns the index of the chosen option
	Select(title string, options []string) (int, error)
	// SelectBranch is Select with type-to-filter
	SelectBranch(title string, branches []string) (int, error)
	Input(prompt, defaultValue string) (string, error)
	Confirm(prompt string, defaultValue bool) (bool, error)
	MultiSelect(message string, options []string) ([]string, error)
	// ComposeCommit runs the commit form and returns its raw buffers
	ComposeCommit() (CommitFields, error)
}

// TerminalPrompter asks questions on the controlling terminal
type TerminalPrompter struct{}

// NewTerminalPrompter returns a Prompter backed by bubbletea and survey
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// Select implements Prompter
func (TerminalPrompter) Select(title string, options []string) (int, error) {
	return PromptSelect(title, options)
}

// SelectBranch implements Prompter
func (TerminalPrompter) SelectBranch(title string, branches []string) (int, error) {
	return PromptFilterSelect(title, branches)
}

// Input implements Prompter
func (TerminalPrompter) Input(prompt, defaultValue string) (string, error) {
	return PromptTextInput(prompt, defaultValue)
}

// Confirm implements Prompter
func (TerminalPrompter) Confirm(prompt string, defaultValue bool) (bool, error) {
	return PromptConfirm(prompt, defaultValue)
}

// MultiSelect implements Prompter
func (TerminalPrompter) MultiSelect(message string, options []string) ([]string, error) {
	return PromptMultiSelect(message, options)
}

// ComposeCommit implements Prompter
func (TerminalPrompter) ComposeCommit() (CommitFields, error) {
	return RunCommitForm()
}
