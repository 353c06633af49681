package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/jlyonsmith/rust-cli-quickstart/internal/filestore"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/output"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/scaffold"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/vcs"
)

// maxListedChanges caps the uncommitted paths named in the preflight warning.
const maxListedChanges = 5

// worktreePreflight warns when dir is a Git work tree with uncommitted
// changes, since the scaffold rewrites files in place.
func worktreePreflight(dir string) scaffold.PreflightFunc {
	return func(_ context.Context) ([]string, error) {
		state, err := vcs.CheckClean(dir)
		if err != nil {
			return nil, err
		}
		if !state.IsRepo || state.Clean() {
			return nil, nil
		}

		listed := state.Changed
		suffix := ""
		if len(listed) > maxListedChanges {
			suffix = fmt.Sprintf(" and %d more", len(listed)-maxListedChanges)
			listed = listed[:maxListedChanges]
		}
		return []string{fmt.Sprintf("working tree has uncommitted changes: %s%s",
			strings.Join(listed, ", "), suffix)}, nil
	}
}

// printReport writes the run summary to stdout. With a dry-run overlay the
// pending diffs are printed first.
func printReport(rootName string, r *scaffold.RunResult, overlay *filestore.DryRun) {
	if overlay != nil {
		printDiffs(overlay)
	}

	if len(r.Steps) > 0 {
		output.Println(output.RenderStepTable(r.StepRows()))
	}

	if tree := output.RenderFileTree(rootName, r.Touched()); tree != "" {
		output.Println(tree)
	}

	if r.Build != nil {
		output.Println(formatCommandStep(*r.Build))
	}
	for _, s := range r.VCSSteps {
		output.Println(formatCommandStep(s))
	}

	if failed := r.Failed(); failed != nil {
		output.Println(output.FormatCross(fmt.Sprintf("Customization of %s stopped at %s",
			output.StyleNoun.Render(r.Variants.Param), failed.Path)))
		return
	}

	rewritten, renamed := 0, 0
	for _, s := range r.Steps {
		switch s.Status {
		case output.StatusRewritten:
			rewritten++
		case output.StatusRenamed:
			renamed++
		}
	}
	summary := output.DiffSummary(rewritten, renamed, len(r.Removed))

	if overlay != nil {
		output.Println(output.FormatCheckmark("Dry run for " +
			output.StyleNoun.Render(r.Variants.Param) + " complete, nothing written " +
			output.StyleDim.Render("("+summary+")")))
		return
	}
	output.Println(output.FormatCheckmark("Customized " +
		output.StyleNoun.Render(r.Variants.Param) + " " +
		output.StyleDim.Render("("+summary+")")))
	if len(r.Warnings) > 0 {
		output.Println(output.StyleSummary.Render(output.FormatCount(len(r.Warnings), "warning") + " above"))
	}
}

func printDiffs(overlay *filestore.DryRun) {
	for _, c := range overlay.Changes() {
		diff, err := output.UnifiedDiff(c.Path, c.Before, c.After)
		if err != nil {
			output.Warn("could not diff", "path", c.Path, "err", err)
			continue
		}
		if diff == "" {
			continue
		}
		output.Println(output.ColorizeDiff(diff))
	}
}

func formatCommandStep(s scaffold.CommandStep) string {
	switch {
	case s.Skipped:
		return output.StyleDim.Render("- " + s.Command + " (" + output.StatusSkipped + ")")
	case s.OK():
		return output.FormatCheckmark(s.Command)
	default:
		msg := s.Command
		if s.ExitCode != 0 {
			msg += fmt.Sprintf(" (exit %d)", s.ExitCode)
		}
		return output.FormatCross(msg)
	}
}
