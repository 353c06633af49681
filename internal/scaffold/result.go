package scaffold

import (
	"github.com/jlyonsmith/rust-cli-quickstart/internal/naming"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/output"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/plan"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/templates"
)

// StepResult is the outcome of one file operation.
type StepResult struct {
	Op plan.FileOperation

	// Path is where the file ended up.
	Path string

	// Status is one of the output.Status* constants.
	Status string

	// Replacements counts token replacements made in the file.
	Replacements int

	// Rendered is set when template placeholders were substituted.
	Rendered bool

	// Missing lists placeholder keys left verbatim.
	Missing []string

	Err error
}

// CommandStep is the outcome of an external command or a version control
// step.
type CommandStep struct {
	Command  string
	ExitCode int
	Stderr   string
	Skipped  bool
	Err      error
}

// OK reports whether the step ran and succeeded.
func (c CommandStep) OK() bool {
	return !c.Skipped && c.Err == nil && c.ExitCode == 0
}

// RunResult reports what a run did.
type RunResult struct {
	Variants naming.Variants
	Context  templates.Context
	Steps    []StepResult

	// DeleteScripts and ReinitVCS hold the confirmation answers.
	DeleteScripts bool
	ReinitVCS     bool

	// Removed lists cleanup paths that were deleted.
	Removed []string

	VCSSteps []CommandStep
	Build    *CommandStep
	Warnings []string
}

// Failed returns the failed step, if any.
func (r *RunResult) Failed() *StepResult {
	for i := range r.Steps {
		if r.Steps[i].Status == output.StatusFailed {
			return &r.Steps[i]
		}
	}
	return nil
}

// VCSOK reports whether re-initialization was requested and fully succeeded.
func (r *RunResult) VCSOK() bool {
	if !r.ReinitVCS || len(r.VCSSteps) == 0 {
		return false
	}
	for _, s := range r.VCSSteps {
		if !s.OK() {
			return false
		}
	}
	return true
}

// Touched maps every path the run changed to a short description, for the
// summary tree.
func (r *RunResult) Touched() map[string]string {
	files := make(map[string]string)
	for _, s := range r.Steps {
		if s.Status == output.StatusUnchanged || s.Status == output.StatusFailed {
			continue
		}
		files[s.Path] = s.Status
	}
	for _, p := range r.Removed {
		files[p] = output.StatusRemoved
	}
	return files
}

// StepRows converts the step results for output.RenderStepTable.
func (r *RunResult) StepRows() []output.StepRow {
	rows := make([]output.StepRow, 0, len(r.Steps))
	for _, s := range r.Steps {
		note := s.Op.Description
		if s.Rendered {
			note += ", rendered"
		}
		if s.Err != nil {
			note = s.Err.Error()
		}
		rows = append(rows, output.StepRow{
			Path:         s.Path,
			Status:       s.Status,
			Replacements: s.Replacements,
			Note:         note,
		})
	}
	return rows
}

func (r *RunResult) warn(msg string) {
	output.Warn(msg)
	r.Warnings = append(r.Warnings, msg)
}
