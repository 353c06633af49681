// Package vcs inspects the template checkout with go-git and describes the
// commands that re-initialize its history.
package vcs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
)

// DirName is the repository metadata directory removed on re-initialization.
const DirName = ".git"

// DefaultCommitMessage is the message of the fresh first commit.
const DefaultCommitMessage = "Initial commit"

// WorktreeState describes the checkout before any file is touched.
type WorktreeState struct {
	// IsRepo is false when dir is not inside a git repository.
	IsRepo bool

	// Changed lists paths with staged, unstaged or untracked changes.
	Changed []string
}

// Clean reports whether there is nothing a restore could lose.
func (s WorktreeState) Clean() bool {
	return len(s.Changed) == 0
}

// CheckClean inspects the working tree containing dir.
func CheckClean(dir string) (WorktreeState, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return WorktreeState{}, nil
	}
	if err != nil {
		return WorktreeState{}, fmt.Errorf("opening repository at %s: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return WorktreeState{IsRepo: true}, fmt.Errorf("opening worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return WorktreeState{IsRepo: true}, fmt.Errorf("reading worktree status: %w", err)
	}

	state := WorktreeState{IsRepo: true}
	for path, fs := range status {
		if fs.Staging == git.Unmodified && fs.Worktree == git.Unmodified {
			continue
		}
		state.Changed = append(state.Changed, path)
	}
	sort.Strings(state.Changed)
	return state, nil
}

// Command is one external command of the re-initialization sequence.
type Command struct {
	Name string
	Args []string
}

// ReinitCommands returns the commands run after the metadata directory is
// removed: init, stage everything, commit.
func ReinitCommands(binary, message string) []Command {
	if binary == "" {
		binary = "git"
	}
	if message == "" {
		message = DefaultCommitMessage
	}
	return []Command{
		{Name: binary, Args: []string{"init"}},
		{Name: binary, Args: []string{"add", "-A", ":/"}},
		{Name: binary, Args: []string{"commit", "-m", message}},
	}
}
