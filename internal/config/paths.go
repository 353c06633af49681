package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the configuration directory.
const AppName = "customize"

// ConfigEnvVar overrides the config file location.
const ConfigEnvVar = "CUSTOMIZE_CONFIG"

// Paths contains standard filesystem paths for customize.
type Paths struct {
	// ConfigDir is $XDG_CONFIG_HOME/customize.
	ConfigDir string

	// ConfigFile is $XDG_CONFIG_HOME/customize/config.yaml.
	ConfigFile string
}

// DefaultPaths returns the default paths for customize.
func DefaultPaths() *Paths {
	dir := filepath.Join(xdg.ConfigHome, AppName)
	return &Paths{
		ConfigDir:  dir,
		ConfigFile: filepath.Join(dir, "config.yaml"),
	}
}

// GetConfigFile returns the config file path.
// If CUSTOMIZE_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(ConfigEnvVar); envPath != "" {
		return envPath, nil
	}
	return DefaultPaths().ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
