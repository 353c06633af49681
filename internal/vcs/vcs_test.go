package vcs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckClean_NotARepo(t *testing.T) {
	state, err := CheckClean(t.TempDir())
	require.NoError(t, err)
	assert.False(t, state.IsRepo)
	assert.True(t, state.Clean())
}

func TestCheckClean_CleanAndDirty(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("Cargo.toml")
	require.NoError(t, err)
	_, err = wt.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com"},
	})
	require.NoError(t, err)

	state, err := CheckClean(dir)
	require.NoError(t, err)
	assert.True(t, state.IsRepo)
	assert.True(t, state.Clean(), "changed: %v", state.Changed)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\nname = \"x\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch"), 0o644))

	state, err = CheckClean(dir)
	require.NoError(t, err)
	assert.False(t, state.Clean())
	assert.Equal(t, []string{"Cargo.toml", "notes.txt"}, state.Changed)
}

func TestCheckClean_Subdirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	sub := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	state, err := CheckClean(sub)
	require.NoError(t, err)
	assert.True(t, state.IsRepo)
}

func TestReinitCommands(t *testing.T) {
	cmds := ReinitCommands("git", "Initial commit")
	require.Len(t, cmds, 3)
	assert.Equal(t, Command{Name: "git", Args: []string{"init"}}, cmds[0])
	assert.Equal(t, Command{Name: "git", Args: []string{"add", "-A", ":/"}}, cmds[1])
	assert.Equal(t, Command{Name: "git", Args: []string{"commit", "-m", "Initial commit"}}, cmds[2])
}

func TestReinitCommands_Defaults(t *testing.T) {
	cmds := ReinitCommands("", "")
	assert.Equal(t, "git", cmds[0].Name)
	assert.Equal(t, []string{"commit", "-m", DefaultCommitMessage}, cmds[2].Args)

	cmds = ReinitCommands("/usr/local/bin/git", "chore: scaffold")
	assert.Equal(t, "/usr/local/bin/git", cmds[1].Name)
	assert.Equal(t, "chore: scaffold", cmds[2].Args[2])
}
