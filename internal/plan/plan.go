// Package plan holds the static manifest of files the scaffold rewrites.
package plan

import (
	"path"

	"github.com/jlyonsmith/rust-cli-quickstart/internal/naming"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/rewrite"
)

// Placeholder identifiers shipped in the quickstart template.
const (
	OldSnake  = "rust_cli_quickstart"
	OldPascal = "RustCliQuickStart"
	OldParam  = "rust-cli-quickstart"
)

// Paths of the files touched by the plan, relative to the template root.
const (
	BinDir             = "src/bin"
	OldBinPath         = BinDir + "/" + OldSnake + ".rs"
	LibPath            = "src/lib.rs"
	BenchPath          = "benches/benchmarks.rs"
	DebugConfigPath    = ".zed/debug.json"
	ManifestPath       = "Cargo.toml"
	ReadMeTemplatePath = "README.template.md"
	ReadMePath         = "README.md"
)

// FileOperation is one unit of work in the plan.
type FileOperation struct {
	// Source is the file read by the operation.
	Source string

	// Destination is set only when Source is renamed before rewriting.
	Destination string

	// SourceOptional means a missing Source is not an error: the operation
	// rewrites Destination in place instead.
	SourceOptional bool

	// Pairs are applied in order by the token rewriter.
	Pairs []rewrite.Pair

	// Render passes the rewritten text through the template renderer.
	Render bool

	// Description is shown in the summary tree.
	Description string
}

// IsRename reports whether the operation moves Source to a new path.
func (op FileOperation) IsRename() bool {
	return op.Destination != "" && op.Destination != op.Source
}

// Target returns the path that holds the file once the operation completes.
func (op FileOperation) Target() string {
	if op.Destination != "" {
		return op.Destination
	}
	return op.Source
}

// BinPath returns the binary entry point path for the given variants.
func BinPath(v naming.Variants) string {
	return path.Join(BinDir, v.Snake+".rs")
}

// Build returns the ordered file operations for the given variants. The
// order is fixed: renames of a file always precede rewrites of it.
//
// Within each operation the Pascal pair comes before the snake pair. None of
// the placeholder tokens is a substring of another, so this order is safe for
// the shipped template; it is not a general guarantee for arbitrary pairs.
func Build(v naming.Variants) []FileOperation {
	pascal := rewrite.Pair{Old: OldPascal, New: v.Pascal}
	snake := rewrite.Pair{Old: OldSnake, New: v.Snake}
	param := rewrite.Pair{Old: OldParam, New: v.Param}

	return []FileOperation{
		{
			Source:      OldBinPath,
			Destination: BinPath(v),
			Pairs:       []rewrite.Pair{pascal, snake},
			Description: "Binary entry point",
		},
		{
			Source:      LibPath,
			Pairs:       []rewrite.Pair{pascal},
			Description: "Library root",
		},
		{
			Source:      BenchPath,
			Pairs:       []rewrite.Pair{pascal, snake},
			Description: "Benchmarks",
		},
		{
			Source:      DebugConfigPath,
			Pairs:       []rewrite.Pair{snake, param},
			Description: "Debugger launch configuration",
		},
		{
			Source:      ManifestPath,
			Pairs:       []rewrite.Pair{pascal, snake, param},
			Render:      true,
			Description: "Package manifest",
		},
		{
			Source:         ReadMeTemplatePath,
			Destination:    ReadMePath,
			SourceOptional: true,
			Pairs:          []rewrite.Pair{pascal, snake, param},
			Render:         true,
			Description:    "Project README",
		},
	}
}
