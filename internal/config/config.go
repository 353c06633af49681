// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AuthorConfig holds defaults offered by the author prompts.
type AuthorConfig struct {
	// FirstName, LastName, Email and Alias pre-fill the matching prompts.
	// Env: CUSTOMIZE_AUTHOR_FIRSTNAME, CUSTOMIZE_AUTHOR_LASTNAME, ...
	FirstName string `mapstructure:"firstName" yaml:"firstName"`
	LastName  string `mapstructure:"lastName" yaml:"lastName"`
	Email     string `mapstructure:"email" yaml:"email"`
	Alias     string `mapstructure:"alias" yaml:"alias"`
}

// GitConfig controls repository re-initialization.
type GitConfig struct {
	// Binary is the git executable. Default: "git".
	Binary string `mapstructure:"binary" yaml:"binary"`

	// CommitMessage is the message of the fresh first commit.
	// Default: "Initial commit".
	CommitMessage string `mapstructure:"commitMessage" yaml:"commitMessage"`
}

// CleanupConfig lists the bootstrapping scripts offered for deletion.
type CleanupConfig struct {
	Paths []string `mapstructure:"paths" yaml:"paths"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the customize CLI configuration.
// Loaded from $XDG_CONFIG_HOME/customize/config.yaml.
type Config struct {
	Author  AuthorConfig  `mapstructure:"author" yaml:"author"`
	Git     GitConfig     `mapstructure:"git" yaml:"git"`
	Cleanup CleanupConfig `mapstructure:"cleanup" yaml:"cleanup"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// DefaultCleanupPaths are the scripts shipped with the template checkout.
var DefaultCleanupPaths = []string{"customize.rs", "customize.ts", "deno.json", "deno.lock"}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Git: GitConfig{
			Binary:        "git",
			CommitMessage: "Initial commit",
		},
		Cleanup: CleanupConfig{
			Paths: append([]string(nil), DefaultCleanupPaths...),
		},
		Log: LogConfig{Timestamps: &timestamps},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks field values that would make a run misbehave.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(c.Git.Binary) == "" {
		errs = append(errs, ValidationError{Field: "git.binary", Message: "must not be empty"})
	}
	if c.Author.Email != "" && !strings.Contains(c.Author.Email, "@") {
		errs = append(errs, ValidationError{Field: "author.email", Message: fmt.Sprintf("%q is not an email address", c.Author.Email)})
	}
	for i, p := range c.Cleanup.Paths {
		field := fmt.Sprintf("cleanup.paths[%d]", i)
		switch {
		case strings.TrimSpace(p) == "":
			errs = append(errs, ValidationError{Field: field, Message: "must not be empty"})
		case filepath.IsAbs(p):
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("%q must be relative to the project", p)})
		case !filepath.IsLocal(p):
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("%q escapes the project directory", p)})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// DefaultConfigTemplate is written by `customize config init`.
const DefaultConfigTemplate = `# customize configuration
#
# Values here pre-fill the interactive prompts. Every key can also be set
# through the environment, e.g. CUSTOMIZE_AUTHOR_EMAIL.

author:
  firstName: ""
  lastName: ""
  email: ""
  alias: ""

git:
  binary: git
  commitMessage: Initial commit

cleanup:
  paths:
    - customize.rs
    - customize.ts
    - deno.json
    - deno.lock

log:
  timestamps: true
`
