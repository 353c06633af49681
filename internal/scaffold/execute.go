package scaffold

import (
	"context"
	"fmt"

	oerrors "github.com/jlyonsmith/rust-cli-quickstart/internal/errors"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/manifest"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/output"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/plan"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/rewrite"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/templates"
)

// executePlan runs every plan operation in order and stops at the first
// failure.
func (s *Scaffolder) executePlan(ctx context.Context, files FileStore, tctx templates.Context, result *RunResult) error {
	var manifestText string

	for _, op := range plan.Build(result.Variants) {
		if err := ctx.Err(); err != nil {
			return err
		}

		step, text, err := executeOp(files, op, tctx)
		result.Steps = append(result.Steps, step)
		if err != nil {
			output.StepLogger(step.Path).Error("step failed", "err", err)
			return err
		}
		for _, key := range step.Missing {
			result.warn(fmt.Sprintf("%s: no value for {{%s}}, placeholder left as is", step.Path, key))
		}
		if op.Source == plan.ManifestPath {
			manifestText = text
		}
	}

	for _, problem := range manifest.Verify(manifestText, result.Variants.Param) {
		result.warn(fmt.Sprintf("%s: %s", plan.ManifestPath, problem))
	}
	return nil
}

// executeOp performs one operation and returns the final file contents.
func executeOp(files FileStore, op plan.FileOperation, tctx templates.Context) (StepResult, string, error) {
	step := StepResult{Op: op, Path: op.Target()}
	log := output.StepLogger(op.Target())

	fail := func(action, path string, err error) (StepResult, string, error) {
		step.Status = output.StatusFailed
		step.Err = oerrors.NewFileOperationError(action, path, err)
		return step, "", step.Err
	}

	path, renamed, err := resolveSource(files, op)
	if err != nil {
		return fail("locate", op.Source, err)
	}
	if renamed {
		if err := files.Rename(op.Source, op.Destination); err != nil {
			return fail("rename", op.Source, err)
		}
		log.Debug("renamed", "from", op.Source)
	}
	step.Path = path

	original, err := files.ReadText(path)
	if err != nil {
		return fail("read", path, err)
	}

	text := rewrite.Apply(original, op.Pairs)
	step.Replacements = rewrite.Total(original, op.Pairs)

	// A file is rendered only on the run that customizes it. Once its
	// tokens are gone the placeholders have been filled, and any braces
	// left came from answers.
	switch {
	case op.Render && (renamed || step.Replacements > 0):
		rendered := templates.Render(text, tctx)
		step.Rendered = rendered.Text != text
		step.Missing = rendered.Missing
		text = rendered.Text
	case op.Render:
		log.Debug("already customized, not rendering")
	}

	switch {
	case text != original:
		if err := files.WriteText(path, text); err != nil {
			return fail("write", path, err)
		}
		step.Status = output.StatusRewritten
	default:
		step.Status = output.StatusUnchanged
	}
	if renamed {
		step.Status = output.StatusRenamed
	}

	log.Debug("done", "status", step.Status, "replacements", step.Replacements)
	return step, text, nil
}

// resolveSource decides which path an operation reads and whether it
// renames first. A rename whose source is gone but whose destination exists
// was completed by an earlier run; the destination is rewritten in place.
func resolveSource(files FileStore, op plan.FileOperation) (path string, rename bool, err error) {
	srcExists, err := files.Exists(op.Source)
	if err != nil {
		return "", false, err
	}

	if !op.IsRename() {
		if !srcExists {
			return "", false, fmt.Errorf("%s does not exist", op.Source)
		}
		return op.Source, false, nil
	}

	if srcExists {
		return op.Destination, true, nil
	}

	dstExists, err := files.Exists(op.Destination)
	if err != nil {
		return "", false, err
	}
	if !dstExists {
		return "", false, fmt.Errorf("neither %s nor %s exists", op.Source, op.Destination)
	}
	if op.SourceOptional {
		output.Debug("template absent, rewriting in place", "path", op.Destination)
	} else {
		output.Debug("already renamed, rewriting in place", "path", op.Destination)
	}
	return op.Destination, false, nil
}
