package version

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
)

// toolVersionRegex matches version numbers like "git version 2.43.0" or
// "cargo 1.79.0 (ffa9cf99a 2024-06-03)".
var toolVersionRegex = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// ToolInfo describes an external binary found on PATH.
type ToolInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Path    string `json:"path,omitempty"`
	Found   bool   `json:"found"`
	Message string `json:"message,omitempty"`
}

// String returns a one-line summary.
func (t ToolInfo) String() string {
	if !t.Found {
		return fmt.Sprintf("  %-6s not found", t.Name)
	}
	if t.Version == "" {
		return fmt.Sprintf("  %-6s %s (%s)", t.Name, t.Path, t.Message)
	}
	return fmt.Sprintf("  %-6s %s (%s)", t.Name, t.Version, t.Path)
}

// DetectTool looks up name on PATH and asks it for its version.
func DetectTool(name string) ToolInfo {
	path, err := exec.LookPath(name)
	if err != nil {
		return ToolInfo{Name: name, Message: name + " not found in PATH"}
	}

	cmd := exec.Command(path, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return ToolInfo{Name: name, Path: path, Found: true, Message: "failed to get version: " + err.Error()}
	}

	v, err := extractVersion(out.String())
	if err != nil {
		return ToolInfo{Name: name, Path: path, Found: true, Message: err.Error()}
	}
	return ToolInfo{Name: name, Version: v, Path: path, Found: true}
}

// extractVersion extracts the first version number from tool output.
func extractVersion(output string) (string, error) {
	match := toolVersionRegex.FindString(output)
	if match == "" {
		return "", &versionParseError{output: output}
	}
	return match, nil
}

// versionParseError indicates failure to parse version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse version from output: " + e.output
}
