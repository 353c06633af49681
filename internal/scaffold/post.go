package scaffold

import (
	"context"
	"fmt"

	oerrors "github.com/jlyonsmith/rust-cli-quickstart/internal/errors"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/exec"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/output"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/prompt"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/vcs"
)

// cleanup offers to delete the bootstrapping scripts. Absent paths are
// skipped and failures are warnings.
func (s *Scaffolder) cleanup(ctx context.Context, prompts PromptSource, files FileStore, result *RunResult) error {
	ok, err := confirm(ctx, prompts, prompt.Confirmation{
		Key:   prompt.KeyDeleteScripts,
		Title: "Delete customization scripts?",
	}, result)
	if err != nil {
		return err
	}
	result.DeleteScripts = ok
	if !ok {
		return nil
	}

	for _, p := range s.opts.CleanupPaths {
		exists, err := files.Exists(p)
		if err != nil {
			result.warn(fmt.Sprintf("could not check %s: %v", p, err))
			continue
		}
		if !exists {
			output.Debug("cleanup path absent, skipping", "path", p)
			continue
		}
		if err := files.Remove(p, false); err != nil {
			result.warn(fmt.Sprintf("could not remove %s: %v", p, err))
			continue
		}
		result.Removed = append(result.Removed, p)
		output.Debug("removed", "path", p)
	}
	return nil
}

// build runs "cargo build". Failures are warnings.
func (s *Scaffolder) build(ctx context.Context, proc ProcessRunner) *CommandStep {
	step := &CommandStep{Command: exec.CommandLine("cargo", []string{"build"})}
	if s.opts.DryRun {
		step.Skipped = true
		return step
	}

	s.runCommand(ctx, proc, step, "cargo", []string{"build"}, "Building project...")
	return step
}

// reinitVCS offers to replace the template's history with a single fresh
// commit. The first failing step halts the sequence; the remaining steps are
// recorded as skipped.
func (s *Scaffolder) reinitVCS(ctx context.Context, prompts PromptSource, files FileStore, proc ProcessRunner, result *RunResult) error {
	ok, err := confirm(ctx, prompts, prompt.Confirmation{
		Key:   prompt.KeyReinitGit,
		Title: "Re-initialize Git repo?",
	}, result)
	if err != nil {
		return err
	}
	result.ReinitVCS = ok
	if !ok {
		return nil
	}

	commands := vcs.ReinitCommands(s.opts.GitBinary, s.opts.CommitMessage)
	steps := make([]CommandStep, 0, len(commands)+1)
	steps = append(steps, CommandStep{Command: "remove " + vcs.DirName})
	for _, c := range commands {
		steps = append(steps, CommandStep{Command: exec.CommandLine(c.Name, c.Args)})
	}

	if s.opts.DryRun {
		for i := range steps {
			steps[i].Skipped = true
		}
		result.VCSSteps = steps
		return nil
	}

	halted := false
	for i := range steps {
		if halted {
			steps[i].Skipped = true
			continue
		}

		if i == 0 {
			s.removeVCSDir(files, &steps[0])
		} else {
			c := commands[i-1]
			s.runCommand(ctx, proc, &steps[i], c.Name, c.Args, "Running "+steps[i].Command+"...")
		}

		if !steps[i].OK() {
			halted = true
			result.warn(fmt.Sprintf("version control step %q failed, remaining steps skipped", steps[i].Command))
		}
	}
	result.VCSSteps = steps
	return nil
}

func (s *Scaffolder) removeVCSDir(files FileStore, step *CommandStep) {
	exists, err := files.Exists(vcs.DirName)
	if err != nil {
		step.Err = fmt.Errorf("%w: checking %s: %w", oerrors.ErrSubprocess, vcs.DirName, err)
		return
	}
	if !exists {
		output.Debug("no repository metadata to remove")
		return
	}
	if err := files.Remove(vcs.DirName, true); err != nil {
		step.Err = fmt.Errorf("%w: %w", oerrors.ErrSubprocess, err)
	}
}

// runCommand runs one external command and records the outcome in step.
// A non-zero exit or a failure to start becomes an ErrSubprocess error.
func (s *Scaffolder) runCommand(ctx context.Context, proc ProcessRunner, step *CommandStep, name string, args []string, title string) {
	var res exec.CmdResult
	err := output.RunWithSpinner(ctx, func() error {
		var runErr error
		res, runErr = proc.Run(ctx, name, args, exec.RunOpts{Dir: s.opts.Dir})
		return runErr
	}, output.WithTitle(title))

	step.ExitCode = res.ExitCode
	step.Stderr = res.Stderr

	switch {
	case err != nil:
		step.Err = fmt.Errorf("%w: %s: %w", oerrors.ErrSubprocess, step.Command, err)
	case !res.Success():
		step.Err = oerrors.NewSubprocessError(step.Command, res.ExitCode, res.Stderr)
	}

	if step.Err != nil {
		output.Error("command failed", "cmd", step.Command, "exit", step.ExitCode)
		return
	}
	output.Debug("command succeeded", "cmd", step.Command)
}
