// Package errors provides sentinel errors and structured error details for
// the customize CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrInvalidName indicates an empty or unusable project name.
	ErrInvalidName = errors.New("invalid project name")

	// ErrFileOperation indicates a read, write, rename or remove failure
	// while executing the scaffold plan.
	ErrFileOperation = errors.New("file operation failed")

	// ErrSubprocess indicates an external command exited non-zero or could
	// not be started.
	ErrSubprocess = errors.New("subprocess failed")

	// ErrConfig indicates a malformed configuration or answers file.
	ErrConfig = errors.New("configuration error")
)

// Exit codes for the customize process.
const (
	// ExitSuccess indicates the scaffold completed.
	ExitSuccess = 0

	// ExitGeneralError covers usage errors, invalid names and anything unclassified.
	ExitGeneralError = 1

	// ExitFileOperation indicates the plan was aborted part-way.
	ExitFileOperation = 2

	// ExitConfigError indicates the configuration could not be loaded.
	ExitConfigError = 3
)

// DetailError captures structured error information for display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path the error refers to (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewInvalidNameError creates an invalid project name error.
func NewInvalidNameError(name, hint string) error {
	return &DetailError{
		Type:    "invalid project name",
		Message: fmt.Sprintf("%q cannot be used as a project name", name),
		Hint:    hint,
		Cause:   ErrInvalidName,
	}
}

// NewFileOperationError creates a plan step failure for path.
func NewFileOperationError(op, path string, cause error) error {
	return &DetailError{
		Type:     "file operation failed",
		Message:  fmt.Sprintf("%s: %v", op, cause),
		Location: path,
		Hint:     "Files rewritten before this step were kept. Restore them with git or finish by hand.",
		Cause:    fmt.Errorf("%w: %w", ErrFileOperation, cause),
	}
}

// NewSubprocessError creates an error for a failed external command.
func NewSubprocessError(command string, exitCode int, stderr string) error {
	ctx := map[string]string{"Exit code": fmt.Sprintf("%d", exitCode)}
	if s := strings.TrimSpace(stderr); s != "" {
		ctx["Stderr"] = s
	}
	return &DetailError{
		Type:    "subprocess failed",
		Message: command,
		Context: ctx,
		Cause:   ErrSubprocess,
	}
}

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error

	// Printed is set when the error was already shown to the user.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrFileOperation):
		return ExitFileOperation
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneralError
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
