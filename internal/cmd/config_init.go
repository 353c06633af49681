package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jlyonsmith/rust-cli-quickstart/internal/config"
	oerrors "github.com/jlyonsmith/rust-cli-quickstart/internal/errors"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the customize configuration.

Creates $XDG_CONFIG_HOME/customize/config.yaml with:
  - Author defaults pre-filled into the prompts
  - The git binary and initial commit message
  - The bootstrapping scripts removed after customization

Examples:
  # Initialize configuration
  customize config init

  # Overwrite existing configuration
  customize config init --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	paths := config.DefaultPaths()

	exists, err := config.ConfigFileExists(paths.ConfigFile)
	if err != nil {
		return exitWith(oerrors.NewFileOperationError("stat", paths.ConfigFile, err))
	}
	if exists && !configInitForce {
		return exitWith(&oerrors.DetailError{
			Type:     "configuration error",
			Message:  "configuration already exists",
			Location: paths.ConfigFile,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrConfig,
		})
	}

	// Create directories with secure permissions (0700)
	if err := os.MkdirAll(paths.ConfigDir, 0o700); err != nil {
		return exitWith(oerrors.NewFileOperationError("create directory", paths.ConfigDir, err))
	}

	// Write config.yaml with secure permissions (0600)
	if err := os.WriteFile(paths.ConfigFile, []byte(config.DefaultConfigTemplate), 0o600); err != nil {
		return exitWith(oerrors.NewFileOperationError("write", paths.ConfigFile, err))
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + paths.ConfigFile))
	output.Println("")
	output.Println("Next: fill in the author section so the prompts are pre-filled")
	return nil
}
