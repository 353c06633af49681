// Package exec runs external commands behind a small interface so the
// scaffold can be exercised without spawning processes.
package exec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/jlyonsmith/rust-cli-quickstart/internal/output"
)

// CmdResult holds the outcome of a finished command.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (r CmdResult) Success() bool {
	return r.ExitCode == 0
}

// RunOpts holds optional parameters for a command.
type RunOpts struct {
	Dir string // working directory
}

// Runner is the production ProcessRunner backed by os/exec.
type Runner struct{}

// NewRunner creates a Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes name with args and captures its output. A process that runs
// and exits non-zero is reported through CmdResult.ExitCode with a nil
// error; the error is reserved for failures to run at all (binary missing,
// context canceled).
func (r *Runner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	output.Debug("running command", "cmd", CommandLine(name, args), "dir", opts.Dir)

	err := cmd.Run()
	result := CmdResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		return result, err
	}
	return result, nil
}

// CommandLine renders a command for display, quoting arguments that
// contain spaces.
func CommandLine(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = `"` + strings.ReplaceAll(a, `"`, `\"`) + `"`
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
