// Package manifest checks the rendered Cargo package manifest.
package manifest

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Package is the subset of the [package] table inspected after rendering.
type Package struct {
	Name        string   `toml:"name"`
	Version     string   `toml:"version"`
	Description string   `toml:"description"`
	Authors     []string `toml:"authors"`
	Repository  string   `toml:"repository"`
}

// Manifest is the subset of Cargo.toml inspected after rendering.
type Manifest struct {
	Package Package  `toml:"package"`
	Bins    []Target `toml:"bin"`
	Benches []Target `toml:"bench"`
}

// Target is a [[bin]] or [[bench]] entry.
type Target struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

// Parse decodes Cargo.toml contents.
func Parse(text string) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal([]byte(text), &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// Verify parses text and returns human-readable problems. A manifest that
// does not parse yields a single problem. wantName is the expected
// package name.
func Verify(text, wantName string) []string {
	m, err := Parse(text)
	if err != nil {
		return []string{err.Error()}
	}

	var problems []string
	if m.Package.Name != wantName {
		problems = append(problems,
			fmt.Sprintf("package name is %q, expected %q", m.Package.Name, wantName))
	}
	for _, b := range m.Bins {
		if b.Path != "" && b.Name == "" {
			problems = append(problems, fmt.Sprintf("binary at %s has no name", b.Path))
		}
	}
	return problems
}
