package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnrating"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnrating by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gnrating by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnrating/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// DataDir returns the directory for source data.
// Returns ~/.local/share/gnrating by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnrating/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// PolicyFilePath returns the full path to the policy.yaml file with
// overrides and curated row lists.
func PolicyFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "policy.yaml")
}

// SourcePath returns the SQLite file to read records from.
func (c *Config) SourcePath() string {
	if c.Source.Path != "" {
		return c.Source.Path
	}
	return filepath.Join(DataDir(c.HomeDir), "rating.sqlite")
}
