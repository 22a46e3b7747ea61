// Package commitmsg builds conventional-commit style messages.
package commitmsg

import (
	"strings"

	wgiterrors "github.com/waliwuao/wgit/internal/errors"
)

// Types are the commit types offered to the user, in display order
var Types = []string{"feat", "fix", "docs", "style", "refactor", "perf", "test", "chore"}

// Message is a structured commit message
type Message struct {
	Type    string
	Scope   string
	Subject string
	Body    string
}

// New builds a Message from raw form input, trimming every field.
// It fails with ErrEmptySubject when the subject is blank.
func New(commitType, scope, subject, body string) (Message, error) {
	msg := Message{
		Type:    strings.TrimSpace(commitType),
		Scope:   strings.TrimSpace(scope),
		Subject: strings.TrimSpace(subject),
		Body:    strings.TrimSpace(body),
	}
	if err := msg.Validate(); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// Validate checks that the subject is non-empty after trimming
func (m Message) Validate() error {
	if strings.TrimSpace(m.Subject) == "" {
		return wgiterrors.ErrEmptySubject
	}
	return nil
}

// Header returns the first line: type[(scope)]: subject
func (m Message) Header() string {
	var b strings.Builder
	b.WriteString(m.Type)
	if m.Scope != "" {
		b.WriteString("(" + m.Scope + ")")
	}
	b.WriteString(": ")
	b.WriteString(m.Subject)
	return b.String()
}

// String renders the header, then a blank line and the body when present
func (m Message) String() string {
	if m.Body == "" {
		return m.Header()
	}
	return m.Header() + "\n\n" + m.Body
}
