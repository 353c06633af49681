package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the customize CLI.`,
	}

	// Add subcommands
	cmd.AddCommand(NewConfigInitCmd())

	return cmd
}
