package tui

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	wgiterrors "github.com/waliwuao/wgit/internal/errors"
	"github.com/waliwuao/wgit/internal/tui/style"
)

// Field identifies one of the four logical positions of the commit form
type Field int

const (
	// FieldScope is the optional scope buffer
	FieldScope Field = iota
	// FieldSubject is the required subject buffer
	FieldSubject
	// FieldBody is the multi-line body buffer
	FieldBody
	// FieldSubmit is the submit button
	FieldSubmit
)

// fieldTransition holds the neighbours of a field in the navigation ring
type fieldTransition struct {
	next Field
	prev Field
}

// fieldRing is the Scope → Subject → Body → Submit → Scope navigation order
var fieldRing = map[Field]fieldTransition{
	FieldScope:   {next: FieldSubject, prev: FieldSubmit},
	FieldSubject: {next: FieldBody, prev: FieldScope},
	FieldBody:    {next: FieldSubmit, prev: FieldSubject},
	FieldSubmit:  {next: FieldScope, prev: FieldBody},
}

// Next returns the field after f in the ring
func (f Field) Next() Field { return fieldRing[f].next }

// Prev returns the field before f in the ring
func (f Field) Prev() Field { return fieldRing[f].prev }

func (f Field) String() string {
	switch f {
	case FieldScope:
		return "Scope"
	case FieldSubject:
		return "Subject"
	case FieldBody:
		return "Body"
	case FieldSubmit:
		return "Submit"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// KeyKind is the kind of a single input event
type KeyKind int

const (
	// KeyRunes carries printable characters
	KeyRunes KeyKind = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyBackspace
	// KeyCancel aborts the form
	KeyCancel
	// KeySubmit submits from any field
	KeySubmit
	// KeyIgnored is any other key
	KeyIgnored
)

// Key is one input event fed to the form
type Key struct {
	Kind  KeyKind
	Runes []rune
}

// FormState is the lifecycle state of a CommitForm
type FormState int

const (
	// FormEditing accepts input
	FormEditing FormState = iota
	// FormSubmitted ended successfully
	FormSubmitted
	// FormCanceled was aborted; all buffers are discarded
	FormCanceled
)

// CommitFields is what the form hands back on submit. Values are verbatim:
// trimming and subject validation are the caller's job.
type CommitFields struct {
	Scope   string
	Subject string
	Body    string
}

// CommitForm is the commit message editor state machine. It holds one
// buffer per text field and reacts to one Key at a time.
type CommitForm struct {
	Active  Field
	State   FormState
	buffers map[Field]string
}

// NewCommitForm returns an empty form focused on the scope field
func NewCommitForm() *CommitForm {
	return &CommitForm{
		Active:  FieldScope,
		State:   FormEditing,
		buffers: map[Field]string{FieldScope: "", FieldSubject: "", FieldBody: ""},
	}
}

// Value returns the current text of a field buffer
func (f *CommitForm) Value(field Field) string {
	return f.buffers[field]
}

// Done reports whether the form has left the editing state
func (f *CommitForm) Done() bool {
	return f.State != FormEditing
}

// HandleKey applies one input event
func (f *CommitForm) HandleKey(k Key) {
	if f.Done() {
		return
	}

	switch k.Kind {
	case KeyCancel:
		f.State = FormCanceled
		f.buffers = map[Field]string{}
	case KeySubmit:
		f.State = FormSubmitted
	case KeyUp:
		f.Active = f.Active.Prev()
	case KeyDown:
		f.Active = f.Active.Next()
	case KeyEnter:
		switch f.Active {
		case FieldScope, FieldSubject:
			f.Active = f.Active.Next()
		case FieldBody:
			f.buffers[FieldBody] += "\n"
		case FieldSubmit:
			f.State = FormSubmitted
		}
	case KeyBackspace:
		if f.Active == FieldSubmit {
			return
		}
		buf := f.buffers[f.Active]
		if buf == "" {
			return
		}
		_, size := utf8.DecodeLastRuneInString(buf)
		f.buffers[f.Active] = buf[:len(buf)-size]
	case KeyRunes:
		if f.Active == FieldSubmit {
			return
		}
		f.buffers[f.Active] += string(k.Runes)
	}
}

// Result returns the buffered fields, or ErrAbortedByUser if the form was canceled
func (f *CommitForm) Result() (CommitFields, error) {
	switch f.State {
	case FormCanceled:
		return CommitFields{}, wgiterrors.ErrAbortedByUser
	case FormSubmitted:
		return CommitFields{
			Scope:   f.buffers[FieldScope],
			Subject: f.buffers[FieldSubject],
			Body:    f.buffers[FieldBody],
		}, nil
	default:
		return CommitFields{}, fmt.Errorf("commit form is still being edited")
	}
}

const bodyIndent = "           "

// Render draws the whole form. It is called after every key since the
// terminal keeps no widget state between frames.
func (f *CommitForm) Render() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(style.SuccessColor)
	labelStyle := lipgloss.NewStyle().Foreground(style.FieldColor)
	helpStyle := lipgloss.NewStyle().Foreground(style.DimColor)

	var b strings.Builder
	b.WriteString(titleStyle.Render("=== Commit Form ==="))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[Up/Down] switch fields, [Enter] next field or new line in Body"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[Enter] on Submit or [Ctrl+S] to submit, [Esc] to abort"))
	b.WriteString("\n\n")

	for _, field := range []Field{FieldScope, FieldSubject, FieldBody} {
		if field == f.Active {
			b.WriteString(markerStyle.Render("> "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-9s", field.String()+":")))

		lines := strings.Split(f.buffers[field], "\n")
		for i, line := range lines {
			if i > 0 {
				b.WriteString("\n" + bodyIndent)
			}
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if f.Active == FieldSubmit {
		b.WriteString(markerStyle.Render("> [ Submit ]"))
	} else {
		b.WriteString(helpStyle.Render("  [ Submit ]"))
	}
	b.WriteString("\n")
	return b.String()
}

// keyFromMsg translates a bubbletea key event into a form Key
func keyFromMsg(msg tea.KeyMsg) Key {
	switch msg.Type {
	case tea.KeyUp:
		return Key{Kind: KeyUp}
	case tea.KeyDown:
		return Key{Kind: KeyDown}
	case tea.KeyEnter:
		return Key{Kind: KeyEnter}
	case tea.KeyBackspace:
		return Key{Kind: KeyBackspace}
	case tea.KeyEsc, tea.KeyCtrlC:
		return Key{Kind: KeyCancel}
	case tea.KeyCtrlS:
		return Key{Kind: KeySubmit}
	case tea.KeySpace:
		return Key{Kind: KeyRunes, Runes: []rune{' '}}
	case tea.KeyRunes:
		return Key{Kind: KeyRunes, Runes: msg.Runes}
	default:
		return Key{Kind: KeyIgnored}
	}
}

// commitFormModel runs a CommitForm as a bubbletea program
type commitFormModel struct {
	form *CommitForm
}

func (m commitFormModel) Init() tea.Cmd {
	return nil
}

func (m commitFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		m.form.HandleKey(keyFromMsg(msg))
		if m.form.Done() {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m commitFormModel) View() string {
	if m.form.Done() {
		return ""
	}
	return m.form.Render()
}

// RunCommitForm shows the commit form and blocks until it is submitted or aborted
func RunCommitForm() (CommitFields, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return CommitFields{}, err
	}

	m := commitFormModel{form: NewCommitForm()}
	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	if _, err := p.Run(); err != nil {
		return CommitFields{}, fmt.Errorf("commit form failed: %w", err)
	}
	return m.form.Result()
}
