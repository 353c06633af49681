package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/jlyonsmith/rust-cli-quickstart/internal/errors"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.Viper())
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		content := `
author:
  firstName: Jane
  lastName: Doe
  email: jane@example.com
  alias: jdoe
git:
  commitMessage: "chore: scaffold"
cleanup:
  paths: [customize.rs]
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, "Jane", cfg.Author.FirstName)
		assert.Equal(t, "Doe", cfg.Author.LastName)
		assert.Equal(t, "jane@example.com", cfg.Author.Email)
		assert.Equal(t, "jdoe", cfg.Author.Alias)
		assert.Equal(t, "git", cfg.Git.Binary, "unset keys keep defaults")
		assert.Equal(t, "chore: scaffold", cfg.Git.CommitMessage)
		assert.Equal(t, []string{"customize.rs"}, cfg.Cleanup.Paths)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns defaults for missing file", func(t *testing.T) {
		cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().Cleanup.Paths, cfg.Cleanup.Paths)
		assert.Equal(t, "Initial commit", cfg.Git.CommitMessage)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("CUSTOMIZE_AUTHOR_EMAIL", "env@example.com")
		t.Setenv("CUSTOMIZE_GIT_BINARY", "/opt/git/bin/git")

		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("author:\n  email: file@example.com\n"), 0o644))

		cfg, err := NewLoader().Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, "env@example.com", cfg.Author.Email)
		assert.Equal(t, "/opt/git/bin/git", cfg.Git.Binary)
	})

	t.Run("malformed file is a config error", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("author: [unclosed\n"), 0o644))

		_, err := NewLoader().Load(configFile)
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrConfig)
		assert.Equal(t, oerrors.ExitConfigError, oerrors.ExitCodeFromError(err))
	})

	t.Run("invalid values are a config error", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("cleanup:\n  paths: [\"../outside\"]\n"), 0o644))

		_, err := NewLoader().Load(configFile)
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrConfig)
		assert.Contains(t, err.Error(), "escapes the project directory")
	})

	t.Run("uses CUSTOMIZE_CONFIG when no path given", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("author:\n  alias: envfile\n"), 0o644))
		t.Setenv(ConfigEnvVar, configFile)

		cfg, err := NewLoader().Load("")
		require.NoError(t, err)
		assert.Equal(t, "envfile", cfg.Author.Alias)
	})
}

func TestLoaderLoad_BoundFlag(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		args     []string
		wantTime bool
	}{
		{name: "unset flag keeps file value", file: "log:\n  timestamps: false\n", wantTime: false},
		{name: "set flag beats file value", file: "log:\n  timestamps: true\n", args: []string{"--timestamps=false"}, wantTime: false},
		{name: "set flag true beats file false", file: "log:\n  timestamps: false\n", args: []string{"--timestamps"}, wantTime: true},
		{name: "unset flag and no file keeps default", wantTime: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := filepath.Join(t.TempDir(), "config.yaml")
			if tt.file != "" {
				require.NoError(t, os.WriteFile(configFile, []byte(tt.file), 0o644))
			}

			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags.Bool("timestamps", true, "")
			require.NoError(t, flags.Parse(tt.args))

			loader := NewLoader()
			require.NoError(t, loader.Viper().BindPFlag("log.timestamps", flags.Lookup("timestamps")))

			cfg, err := loader.Load(configFile)
			require.NoError(t, err)
			require.NotNil(t, cfg.Log.Timestamps)
			assert.Equal(t, tt.wantTime, *cfg.Log.Timestamps)
		})
	}
}

func TestConfigFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	ok, err := ConfigFileExists(path)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(path, []byte(DefaultConfigTemplate), 0o644))
	ok, err = ConfigFileExists(path)
	require.NoError(t, err)
	assert.True(t, ok)
}
