package exec

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_ExitCode(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"exit 0", []string{"-c", "exit 0"}, 0},
		{"exit 1", []string{"-c", "exit 1"}, 1},
		{"exit 42", []string{"-c", "exit 42"}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewRunner().Run(context.Background(), "sh", tt.args, RunOpts{})
			require.NoError(t, err)
			assert.Equal(t, tt.code, res.ExitCode)
			assert.Equal(t, tt.code == 0, res.Success())
		})
	}
}

func TestRunner_CapturesOutput(t *testing.T) {
	res, err := NewRunner().Run(context.Background(), "sh",
		[]string{"-c", "echo out; echo err >&2"}, RunOpts{})
	require.NoError(t, err)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
}

func TestRunner_Dir(t *testing.T) {
	dir := t.TempDir()
	res, err := NewRunner().Run(context.Background(), "pwd", nil, RunOpts{Dir: dir})
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(strings.TrimSpace(res.Stdout))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRunner_MissingBinary(t *testing.T) {
	_, err := NewRunner().Run(context.Background(),
		filepath.Join(os.TempDir(), "definitely-not-a-binary-4f1c"), nil, RunOpts{})
	assert.Error(t, err)
}

func TestRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewRunner().Run(ctx, "sh", []string{"-c", "sleep 5"}, RunOpts{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCommandLine(t *testing.T) {
	assert.Equal(t, "git init", CommandLine("git", []string{"init"}))
	assert.Equal(t, `git commit -m "Initial commit"`,
		CommandLine("git", []string{"commit", "-m", "Initial commit"}))
	assert.Equal(t, `echo ""`, CommandLine("echo", []string{""}))
}

