// Package scaffold turns a freshly cloned quickstart checkout into a named
// project. It runs a fixed, linear sequence: derive the name variants, ask
// for the template context, execute the file plan, then optionally clean up,
// build and re-initialize version control.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jlyonsmith/rust-cli-quickstart/internal/config"
	oerrors "github.com/jlyonsmith/rust-cli-quickstart/internal/errors"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/exec"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/naming"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/output"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/prompt"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/templates"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/vcs"
)

// PromptSource supplies answers to the scaffold's questions.
type PromptSource interface {
	AskText(ctx context.Context, q prompt.Question) (string, error)
	AskConfirm(ctx context.Context, c prompt.Confirmation) (bool, error)
}

// FileStore is the text-file access the scaffold needs. Paths are relative
// to the template root.
type FileStore interface {
	ReadText(path string) (string, error)
	WriteText(path, text string) error
	// Rename replaces an existing file at newPath.
	Rename(oldPath, newPath string) error
	Remove(path string, recursive bool) error
	Exists(path string) (bool, error)
}

// ProcessRunner runs external commands.
type ProcessRunner interface {
	Run(ctx context.Context, name string, args []string, opts exec.RunOpts) (exec.CmdResult, error)
}

// PreflightFunc inspects the checkout before anything is written and
// returns warnings for the user. Errors are reported as warnings too.
type PreflightFunc func(ctx context.Context) ([]string, error)

// Options configures a Scaffolder.
type Options struct {
	// DryRun means the FileStore is an overlay that records changes. Build
	// and version control commands are reported but not run.
	DryRun bool

	// Build runs "cargo build" after the plan.
	Build bool

	// CleanupPaths are removed when the user agrees to delete the scripts.
	CleanupPaths []string

	// CommitMessage and GitBinary configure re-initialization.
	CommitMessage string
	GitBinary     string

	// Author pre-fills the author prompts.
	Author config.AuthorConfig

	// Dir is the working directory for external commands.
	Dir string

	// Preflight runs after the name is validated.
	Preflight PreflightFunc
}

// Scaffolder runs the scaffold sequence.
type Scaffolder struct {
	opts Options
}

// New creates a Scaffolder, filling unset options with defaults.
func New(opts Options) *Scaffolder {
	if opts.CleanupPaths == nil {
		opts.CleanupPaths = append([]string(nil), config.DefaultCleanupPaths...)
	}
	if opts.GitBinary == "" {
		opts.GitBinary = "git"
	}
	if opts.CommitMessage == "" {
		opts.CommitMessage = vcs.DefaultCommitMessage
	}
	return &Scaffolder{opts: opts}
}

// Run customizes the checkout behind files for projectName.
//
// A failed file operation aborts the run with an ErrFileOperation error;
// files already rewritten are kept. Cleanup, build and version control
// failures are recorded in the result and never change the returned error.
// The result is non-nil whenever the name was valid.
func (s *Scaffolder) Run(ctx context.Context, projectName string, prompts PromptSource, files FileStore, proc ProcessRunner) (*RunResult, error) {
	if strings.TrimSpace(projectName) == "" {
		return nil, oerrors.NewInvalidNameError(projectName,
			"Pass the project name as the first argument, e.g. customize data-sync")
	}

	variants, err := naming.Derive(projectName)
	if err != nil {
		return nil, err
	}
	output.Debug("derived project names",
		"snake", variants.Snake, "pascal", variants.Pascal,
		"param", variants.Param, "title", variants.Title)

	result := &RunResult{Variants: variants}

	if s.opts.Preflight != nil {
		warnings, err := s.opts.Preflight(ctx)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("preflight check failed: %v", err))
		}
		for _, w := range warnings {
			result.warn(w)
		}
	}

	tctx, err := s.captureContext(ctx, prompts, variants)
	if err != nil {
		return result, err
	}
	result.Context = tctx

	if err := s.executePlan(ctx, files, tctx, result); err != nil {
		return result, err
	}

	if err := s.cleanup(ctx, prompts, files, result); err != nil {
		return result, err
	}

	if s.opts.Build {
		result.Build = s.build(ctx, proc)
		if !result.Build.Skipped && !result.Build.OK() {
			result.warn(fmt.Sprintf("%s failed; fix the errors and build again", result.Build.Command))
		}
	}

	if err := s.reinitVCS(ctx, prompts, files, proc, result); err != nil {
		return result, err
	}

	output.Info("customization complete", "project", variants.Param)
	return result, nil
}

// captureContext asks the context questions in a fixed order and merges in
// the values derived from the project name.
func (s *Scaffolder) captureContext(ctx context.Context, prompts PromptSource, v naming.Variants) (templates.Context, error) {
	questions := []prompt.Question{
		{Key: prompt.KeyDescription, Title: "Enter the description for the project"},
		{Key: prompt.KeyFirstName, Title: "Enter your first name", Default: s.opts.Author.FirstName},
		{Key: prompt.KeyLastName, Title: "Enter your last name", Default: s.opts.Author.LastName},
		{Key: prompt.KeyEmail, Title: "Enter your email", Default: s.opts.Author.Email},
		{Key: prompt.KeyAlias, Title: "Enter your GitHub alias", Default: s.opts.Author.Alias},
	}

	values := make(map[string]string, len(questions)+2)
	for _, q := range questions {
		answer, err := prompts.AskText(ctx, q)
		if err != nil {
			return templates.Context{}, fmt.Errorf("capturing template context: %w", err)
		}
		values[q.Key] = answer
	}
	values[templates.KeyTitle] = v.Title
	values[templates.KeyProjectName] = v.Snake

	return templates.NewContext(values), nil
}

// confirm asks c, treating a canceled context as an error and any other
// prompt failure as "no".
func confirm(ctx context.Context, prompts PromptSource, c prompt.Confirmation, result *RunResult) (bool, error) {
	ok, err := prompts.AskConfirm(ctx, c)
	if err == nil {
		return ok, nil
	}
	if ctx.Err() != nil || errors.Is(err, prompt.ErrAborted) {
		return false, fmt.Errorf("asking %q: %w", c.Title, err)
	}
	result.warn(fmt.Sprintf("could not ask %q, assuming no: %v", c.Title, err))
	return false, nil
}
