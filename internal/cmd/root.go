// Package cmd provides CLI command implementations.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jlyonsmith/rust-cli-quickstart/internal/config"
	oerrors "github.com/jlyonsmith/rust-cli-quickstart/internal/errors"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/exec"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/filestore"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/output"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/prompt"
	"github.com/jlyonsmith/rust-cli-quickstart/internal/scaffold"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Scaffold flags
	dirFlag     string
	answersFlag string
	dryRunFlag  bool
	buildFlag   bool

	// Loaded configuration (set during PersistentPreRunE). loadErr is kept
	// so that subcommands like "config init" still work with a broken file.
	appConfig *config.Config
	loadErr   error
)

// NewRootCmd creates the root command for the customize CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "customize <PROJECT-NAME>",
		Short: "Customize a rust-cli-quickstart checkout",
		Long: `Customize turns a fresh rust-cli-quickstart checkout into a named project.

It renames the binary, rewrites the placeholder identifiers in the sources,
fills in Cargo.toml and README.md from your answers, and can optionally
delete the bootstrapping scripts and start a fresh Git history.

Examples:
  # Customize the current directory
  customize data-sync

  # Preview the changes without writing anything
  customize "data sync" --dry-run

  # Non-interactive run from an answers file
  customize data-sync --answers answers.yaml -C ~/src/data-sync

  # A project named like a subcommand ("config", "version") goes after --
  customize -- config`,
		Args:          projectNameArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: runScaffold,
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: CUSTOMIZE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.Flags().StringVarP(&dirFlag, "dir", "C", ".", "Template checkout to customize")
	rootCmd.Flags().StringVarP(&answersFlag, "answers", "a", "", "YAML answers file; prompts are not shown")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Print diffs instead of writing")
	rootCmd.Flags().BoolVar(&buildFlag, "build", false, `Run "cargo build" after rewriting`)

	// Add subcommands
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// projectNameArg requires exactly one project name and prints the usage
// when it is missing or there are extras.
func projectNameArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		cmd.PrintErrln(cmd.UsageString())
		return err
	}
	return nil
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	configPath := config.ResolveConfigFile(configFlag)

	loader := config.NewLoader()
	if err := loader.Viper().BindPFlag("log.timestamps", cmd.Flags().Lookup("timestamps")); err != nil {
		return err
	}
	appConfig, loadErr = loader.Load(configPath.Value)

	// Resolve timestamps: flag (if explicitly set) > config > default (true)
	var tsFlag *bool
	if cmd.Flags().Changed("timestamps") {
		tsFlag = output.BoolPtr(timestampsFlag)
	}
	timestamps, tsSource := config.ResolveTimestamps(tsFlag, appConfig)

	output.SetupLogging(output.LogConfig{
		Verbose:    verboseFlag,
		Timestamps: output.BoolPtr(timestamps),
	})
	output.SetLogOutput(cmd.ErrOrStderr())

	output.Debug("initializing CLI",
		"config", configPath.Value,
		"configSource", configPath.Source,
		"timestamps", timestamps,
		"timestampsSource", tsSource,
	)
	if loadErr != nil {
		output.Debug("config load error", "error", loadErr)
	}
	return nil
}

// GetConfig returns the loaded configuration, or the defaults when none
// was loaded.
func GetConfig() *config.Config {
	if appConfig != nil {
		return appConfig
	}
	return config.DefaultConfig()
}

func runScaffold(cmd *cobra.Command, args []string) error {
	if loadErr != nil {
		return exitWith(loadErr)
	}
	cfg := GetConfig()

	dir, err := filepath.Abs(dirFlag)
	if err != nil {
		return exitWith(oerrors.Wrap(err, "resolving --dir"))
	}

	prompts, err := promptSource()
	if err != nil {
		return exitWith(err)
	}

	base := filestore.NewOS(dir)
	var files scaffold.FileStore = base
	var overlay *filestore.DryRun
	if dryRunFlag {
		overlay = filestore.NewDryRun(base)
		files = overlay
	}

	s := scaffold.New(scaffold.Options{
		DryRun:        dryRunFlag,
		Build:         buildFlag,
		CleanupPaths:  cfg.Cleanup.Paths,
		CommitMessage: cfg.Git.CommitMessage,
		GitBinary:     cfg.Git.Binary,
		Author:        cfg.Author,
		Dir:           dir,
		Preflight:     worktreePreflight(dir),
	})

	output.Debug("customizing", "dir", dir, "dryRun", dryRunFlag, "build", buildFlag)

	result, err := s.Run(cmd.Context(), args[0], prompts, files, exec.NewRunner())
	if result != nil {
		printReport(filepath.Base(dir), result, overlay)
	}
	if err != nil {
		return exitWith(err)
	}
	return nil
}

// promptSource picks where answers come from: the --answers file, the
// interactive form UI, or line-by-line prompts when stdin is not a terminal.
func promptSource() (scaffold.PromptSource, error) {
	if answersFlag != "" {
		answers, err := prompt.LoadAnswers(answersFlag)
		if err != nil {
			return nil, err
		}
		return answers, nil
	}
	if output.IsInputTTY() {
		return prompt.NewTerminal(), nil
	}
	return prompt.NewAccessible(os.Stdin, os.Stderr), nil
}
