package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/internal/tui/style"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via WGIT_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (WGIT_TEST_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("WGIT_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

var (
	cursorStyle = lipgloss.NewStyle().Foreground(style.AccentColor)
	hintStyle   = lipgloss.NewStyle().Foreground(style.DimColor)
	promptBox   = lipgloss.NewStyle().Margin(1, 0)
)

// textInputModel is a single line text input prompt
type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	err       error
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = wgiterrors.ErrAbortedByUser
			m.done = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() string {
	if m.done {
		return ""
	}
	return promptBox.Render(fmt.Sprintf("%s\n%s\n\n%s", m.prompt, m.textInput.View(),
		hintStyle.Render("(Press Enter to submit, Esc to cancel)")))
}

// confirmModel is a yes/no confirmation prompt
type confirmModel struct {
	prompt string
	choice bool
	done   bool
	err    error
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = wgiterrors.ErrAbortedByUser
			m.done = true
			return m, tea.Quit
		case tea.KeyRunes:
			switch strings.ToLower(string(msg.Runes)) {
			case "y":
				m.choice = true
				m.done = true
				return m, tea.Quit
			case "n":
				m.choice = false
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yesNo := "[y/N]"
	if m.choice {
		yesNo = "[Y/n]"
	}
	return promptBox.Render(fmt.Sprintf("%s %s\n\n%s", m.prompt, yesNo,
		hintStyle.Render("(Press y or n, Enter for the default, Esc to cancel)")))
}

// PromptTextInput prompts the user for a line of text
func PromptTextInput(prompt, defaultValue string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	ti := textinput.New()
	ti.SetValue(defaultValue)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 80

	m := textInputModel{
		textInput: ti,
		prompt:    prompt,
	}

	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return "", err
	}

	if finalModel, ok := model.(textInputModel); ok {
		if finalModel.err != nil {
			return "", finalModel.err
		}
		return finalModel.textInput.Value(), nil
	}

	return "", fmt.Errorf("unexpected model type")
}

// PromptConfirm prompts the user for yes/no confirmation
func PromptConfirm(prompt string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	m := confirmModel{
		prompt: prompt,
		choice: defaultValue,
	}

	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return false, err
	}

	if finalModel, ok := model.(confirmModel); ok {
		if finalModel.err != nil {
			return false, finalModel.err
		}
		return finalModel.choice, nil
	}

	return false, fmt.Errorf("unexpected model type")
}

// SelectModel is a list selection prompt with arrow key navigation.
// It filters the options when Filterable is set and the user types.
type SelectModel struct {
	Title      string
	Options    []string
	Filterable bool
	Filter     string
	Cursor     int
	Selected   int
	Done       bool
	Err        error

	visible []int
}

// NewSelectModel builds a selection model over options
func NewSelectModel(title string, options []string, filterable bool) SelectModel {
	m := SelectModel{
		Title:      title,
		Options:    options,
		Filterable: filterable,
		Selected:   -1,
	}
	m.updateFiltered()
	return m
}

// Init initializes the bubbletea model
func (m SelectModel) Init() tea.Cmd {
	return nil
}

// Update handles message updates for the bubbletea model
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyEnter:
		if m.Cursor >= 0 && m.Cursor < len(m.visible) {
			m.Selected = m.visible[m.Cursor]
			m.Done = true
			return m, tea.Quit
		}
	case tea.KeyCtrlC, tea.KeyEsc:
		m.Err = wgiterrors.ErrAbortedByUser
		m.Done = true
		return m, tea.Quit
	case tea.KeyUp, tea.KeyShiftTab:
		if len(m.visible) == 0 {
			return m, nil
		}
		if m.Cursor > 0 {
			m.Cursor--
		} else {
			m.Cursor = len(m.visible) - 1
		}
	case tea.KeyDown, tea.KeyTab:
		if len(m.visible) == 0 {
			return m, nil
		}
		if m.Cursor < len(m.visible)-1 {
			m.Cursor++
		} else {
			m.Cursor = 0
		}
	case tea.KeyBackspace:
		if m.Filterable && m.Filter != "" {
			runes := []rune(m.Filter)
			m.Filter = string(runes[:len(runes)-1])
			m.updateFiltered()
		}
	case tea.KeyRunes:
		if m.Filterable {
			m.Filter += string(keyMsg.Runes)
			m.updateFiltered()
		}
	}
	return m, nil
}

func (m *SelectModel) updateFiltered() {
	filterLower := strings.ToLower(m.Filter)
	visible := make([]int, 0, len(m.Options))
	for i, opt := range m.Options {
		if filterLower == "" || strings.Contains(strings.ToLower(opt), filterLower) {
			visible = append(visible, i)
		}
	}
	m.visible = visible
	if m.Cursor >= len(m.visible) {
		m.Cursor = len(m.visible) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// View renders the TUI
func (m SelectModel) View() string {
	if m.Done {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.Title))
	b.WriteString("\n")
	if m.Filter != "" {
		b.WriteString(fmt.Sprintf("Filter: %s\n", cursorStyle.Render(m.Filter)))
	}
	b.WriteString("\n")

	if len(m.visible) == 0 {
		b.WriteString("No options match the filter.\n")
	}
	for i, idx := range m.visible {
		if i == m.Cursor {
			b.WriteString(fmt.Sprintf("  → %s\n", cursorStyle.Render(m.Options[idx])))
		} else {
			b.WriteString(fmt.Sprintf("    %s\n", m.Options[idx]))
		}
	}

	hint := "\n(↑/↓ to select, Enter to confirm, Esc to cancel)"
	if m.Filterable {
		hint = "\n(↑/↓ to select, type to filter, Enter to confirm, Esc to cancel)"
	}
	b.WriteString(hintStyle.Render(hint))

	return promptBox.Render(b.String())
}

// PromptSelect asks the user to pick one of options and returns its index
func PromptSelect(title string, options []string) (int, error) {
	return runSelect(NewSelectModel(title, options, false))
}

// PromptFilterSelect is PromptSelect with type-to-filter, used for branch lists
func PromptFilterSelect(title string, options []string) (int, error) {
	return runSelect(NewSelectModel(title, options, true))
}

func runSelect(m SelectModel) (int, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return -1, err
	}
	if len(m.Options) == 0 {
		return -1, fmt.Errorf("no options provided")
	}

	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return -1, err
	}

	if finalModel, ok := model.(SelectModel); ok {
		if finalModel.Err != nil {
			return -1, finalModel.Err
		}
		return finalModel.Selected, nil
	}

	return -1, fmt.Errorf("unexpected model type")
}

// PromptMultiSelect lets the user tick any number of options
func PromptMultiSelect(message string, options []string) ([]string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return nil, err
	}

	var selected []string
	prompt := &survey.MultiSelect{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return nil, wgiterrors.ErrAbortedByUser
		}
		return nil, err
	}
	return selected, nil
}
