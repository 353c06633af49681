package cmd

import (
	oerrors "github.com/jlyonsmith/rust-cli-quickstart/internal/errors"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/output"
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case oerrors.ExitSuccess:
		return "Success"
	case oerrors.ExitGeneralError:
		return "General Error"
	case oerrors.ExitFileOperation:
		return "File Operation Failed"
	case oerrors.ExitConfigError:
		return "Configuration Error"
	default:
		return "Unknown"
	}
}

// exitWith wraps err in an ExitError carrying the exit code its sentinel
// maps to.
func exitWith(err error) error {
	if err == nil {
		return nil
	}
	code := oerrors.ExitCodeFromError(err)
	output.Debug("command failed", "code", code, "reason", ExitCodeName(code))
	return &oerrors.ExitError{Code: code, Err: err}
}
