package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jlyonsmith/rust-cli-quickstart/internal/output"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show customize version information.

Displays:
  - customize version, commit, and build date
  - git and cargo versions found on PATH`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	tools := []version.ToolInfo{
		version.DetectTool(GetConfig().Git.Binary),
		version.DetectTool("cargo"),
	}
	output.Println(version.FullVersionString(version.Get(), tools))
	return nil
}
