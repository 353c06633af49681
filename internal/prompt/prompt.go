// Package prompt gathers answers from the user, either interactively
// through huh forms or from a YAML answers file.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
)

// Keys identifying the questions asked during a scaffold run.
const (
	KeyDescription   = "description"
	KeyFirstName     = "firstName"
	KeyLastName      = "lastName"
	KeyEmail         = "email"
	KeyAlias         = "alias"
	KeyDeleteScripts = "deleteScripts"
	KeyReinitGit     = "reinitGit"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

// Question asks for a line of text.
type Question struct {
	Key     string
	Title   string
	Default string
}

// Confirmation asks a yes/no question.
type Confirmation struct {
	Key     string
	Title   string
	Default bool
}

// Terminal asks questions with huh forms.
type Terminal struct {
	in         io.Reader
	out        io.Writer
	accessible bool
}

// NewTerminal returns a Terminal using the interactive form UI on the
// process's stdin and stdout.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// NewAccessible returns a Terminal that asks line-by-line questions on the
// given streams. It suits dumb terminals and screen readers.
func NewAccessible(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out, accessible: true}
}

// AskText asks q and returns the answer, or q.Default for an empty answer.
func (t *Terminal) AskText(ctx context.Context, q Question) (string, error) {
	value := q.Default
	field := huh.NewInput().
		Key(q.Key).
		Title(q.Title).
		Value(&value)

	if err := t.run(ctx, field); err != nil {
		return "", fmt.Errorf("asking %s: %w", q.Key, err)
	}
	return value, nil
}

// AskConfirm asks c and returns the answer.
func (t *Terminal) AskConfirm(ctx context.Context, c Confirmation) (bool, error) {
	value := c.Default
	field := huh.NewConfirm().
		Key(c.Key).
		Title(c.Title).
		Value(&value)

	if err := t.run(ctx, field); err != nil {
		return false, fmt.Errorf("asking %s: %w", c.Key, err)
	}
	return value, nil
}

func (t *Terminal) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false).
		WithAccessible(t.accessible)
	if t.in != nil {
		form = form.WithInput(t.in)
	}
	if t.out != nil {
		form = form.WithOutput(t.out)
	}

	err := form.RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
