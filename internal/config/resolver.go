package config

import (
	"os"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a value together with where it came from.
type ResolvedValue struct {
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigFile resolves the config file path using precedence:
// (1) --config flag, (2) CUSTOMIZE_CONFIG env, (3) the XDG default.
func ResolveConfigFile(flagValue string) ResolvedValue {
	envValue := os.Getenv(ConfigEnvVar)
	def := DefaultPaths().ConfigFile

	return resolve(flagValue, envValue, "", def)
}

// ResolveTimestamps resolves whether log lines carry timestamps using
// precedence: (1) --timestamps flag when changed, (2) config file, (3) on.
func ResolveTimestamps(flag *bool, cfg *Config) (bool, ConfigSource) {
	if flag != nil {
		return *flag, SourceFlag
	}
	if cfg != nil && cfg.Log.Timestamps != nil {
		return *cfg.Log.Timestamps, SourceConfig
	}
	return true, SourceDefault
}

func resolve(flagValue, envValue, configValue, defaultValue string) ResolvedValue {
	result := ResolvedValue{Shadowed: make(map[ConfigSource]string)}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, envValue},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		if c.source != SourceDefault {
			result.Shadowed[c.source] = c.value
		}
	}
	return result
}
