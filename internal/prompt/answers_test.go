package prompt

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/jlyonsmith/rust-cli-quickstart/internal/errors"
)

const sampleAnswers = `
description: Synchronizes data between stores
firstName: Jane
lastName: Doe
email: jane@example.com
alias: jdoe
deleteScripts: true
`

func TestParseAnswers(t *testing.T) {
	a, err := ParseAnswers([]byte(sampleAnswers), "answers.yaml")
	require.NoError(t, err)

	ctx := context.Background()
	tests := []struct {
		key  string
		def  string
		want string
	}{
		{KeyDescription, "", "Synchronizes data between stores"},
		{KeyFirstName, "x", "Jane"},
		{KeyLastName, "", "Doe"},
		{KeyEmail, "", "jane@example.com"},
		{KeyAlias, "", "jdoe"},
		{"unknown", "fallback", "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := a.AskText(ctx, Question{Key: tt.key, Default: tt.def})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	del, err := a.AskConfirm(ctx, Confirmation{Key: KeyDeleteScripts})
	require.NoError(t, err)
	assert.True(t, del)

	// Missing confirmation falls back to the default.
	reinit, err := a.AskConfirm(ctx, Confirmation{Key: KeyReinitGit, Default: true})
	require.NoError(t, err)
	assert.True(t, reinit)
}

func TestParseAnswers_EmptyStringIsAnAnswer(t *testing.T) {
	a, err := ParseAnswers([]byte("alias: \"\"\n"), "answers.yaml")
	require.NoError(t, err)

	got, err := a.AskText(context.Background(), Question{Key: KeyAlias, Default: "jdoe"})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestParseAnswers_Invalid(t *testing.T) {
	_, err := ParseAnswers([]byte("firstName: [unclosed"), "answers.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConfig)
	assert.Contains(t, err.Error(), "answers.yaml")
	assert.Equal(t, oerrors.ExitConfigError, oerrors.ExitCodeFromError(err))
}

func TestLoadAnswers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleAnswers), 0o600))

	a, err := LoadAnswers(path)
	require.NoError(t, err)
	got, err := a.AskText(context.Background(), Question{Key: KeyEmail})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", got)
}

func TestLoadAnswers_Missing(t *testing.T) {
	_, err := LoadAnswers(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConfig)
}

func TestAnswers_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewAnswers(AnswersFile{})
	_, err := a.AskText(ctx, Question{Key: KeyAlias})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = a.AskConfirm(ctx, Confirmation{Key: KeyReinitGit})
	assert.ErrorIs(t, err, context.Canceled)
}
