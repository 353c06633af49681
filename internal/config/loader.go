package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	oerrors "github.com/jlyonsmith/rust-cli-quickstart/internal/errors"
)

// Environment variable prefix for customize configuration.
const envPrefix = "CUSTOMIZE"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader with defaults and
// environment bindings in place.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("author.firstName", def.Author.FirstName)
	v.SetDefault("author.lastName", def.Author.LastName)
	v.SetDefault("author.email", def.Author.Email)
	v.SetDefault("author.alias", def.Author.Alias)
	v.SetDefault("git.binary", def.Git.Binary)
	v.SetDefault("git.commitMessage", def.Git.CommitMessage)
	v.SetDefault("cleanup.paths", def.Cleanup.Paths)
	v.SetDefault("log.timestamps", *def.Log.Timestamps)

	return &Loader{v: v}
}

// Viper exposes the underlying viper instance. The root command binds
// --timestamps to log.timestamps through it.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load loads configuration from the given file path.
// If configFile is empty, the default config file path is used.
// Precedence: bound flags > environment > file > defaults.
// A missing file is not an error; an unreadable or invalid one is.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, configError(configFile, "cannot determine config file path", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, configError(configFile, "cannot expand config path", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, configError(expandedPath, "cannot read config file", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, configError(expandedPath, "cannot decode config file", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, configError(expandedPath, "invalid configuration", err)
	}

	return &cfg, nil
}

func configError(path, msg string, cause error) error {
	return &oerrors.DetailError{
		Type:     "configuration error",
		Message:  fmt.Sprintf("%s: %v", msg, cause),
		Location: path,
		Hint:     "Run 'customize config init --force' to write a fresh config file.",
		Cause:    fmt.Errorf("%w: %w", oerrors.ErrConfig, cause),
	}
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
