package prompt

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	oerrors "github.com/jlyonsmith/rust-cli-quickstart/internal/errors"
)

// AnswersFile holds pre-recorded answers for a non-interactive run.
type AnswersFile struct {
	Description   *string `yaml:"description"`
	FirstName     *string `yaml:"firstName"`
	LastName      *string `yaml:"lastName"`
	Email         *string `yaml:"email"`
	Alias         *string `yaml:"alias"`
	DeleteScripts *bool   `yaml:"deleteScripts"`
	ReinitGit     *bool   `yaml:"reinitGit"`
}

// Answers replays an AnswersFile. Questions it has no answer for fall back
// to their defaults.
type Answers struct {
	text    map[string]string
	confirm map[string]bool
}

// LoadAnswers reads and parses an answers file.
func LoadAnswers(path string) (*Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oerrors.DetailError{
			Type:     "answers file",
			Message:  "cannot read answers file",
			Location: path,
			Cause:    fmt.Errorf("%w: %w", oerrors.ErrConfig, err),
		}
	}
	return ParseAnswers(data, path)
}

// ParseAnswers parses answers file contents. Source names the origin in
// error messages.
func ParseAnswers(data []byte, source string) (*Answers, error) {
	var f AnswersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &oerrors.DetailError{
			Type:     "answers file",
			Message:  "invalid YAML",
			Location: source,
			Hint:     "Expected keys: description, firstName, lastName, email, alias, deleteScripts, reinitGit",
			Cause:    fmt.Errorf("%w: %w", oerrors.ErrConfig, err),
		}
	}
	return NewAnswers(f), nil
}

// NewAnswers builds an Answers source from f.
func NewAnswers(f AnswersFile) *Answers {
	a := &Answers{
		text:    make(map[string]string),
		confirm: make(map[string]bool),
	}
	for key, v := range map[string]*string{
		KeyDescription: f.Description,
		KeyFirstName:   f.FirstName,
		KeyLastName:    f.LastName,
		KeyEmail:       f.Email,
		KeyAlias:       f.Alias,
	} {
		if v != nil {
			a.text[key] = *v
		}
	}
	for key, v := range map[string]*bool{
		KeyDeleteScripts: f.DeleteScripts,
		KeyReinitGit:     f.ReinitGit,
	} {
		if v != nil {
			a.confirm[key] = *v
		}
	}
	return a
}

// AskText returns the recorded answer for q, or q.Default.
func (a *Answers) AskText(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if v, ok := a.text[q.Key]; ok {
		return v, nil
	}
	return q.Default, nil
}

// AskConfirm returns the recorded answer for c, or c.Default.
func (a *Answers) AskConfirm(ctx context.Context, c Confirmation) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if v, ok := a.confirm[c.Key]; ok {
		return v, nil
	}
	return c.Default, nil
}
