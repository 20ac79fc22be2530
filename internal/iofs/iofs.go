// Package iofs prepares the directories and the user-editable files
// of GNrating.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/gnrating/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed policy.yaml
var PolicyYAML string

// EnsureDirs creates config, cache, data and log directories.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless it exists.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

// EnsurePolicyFile writes the policy.yaml template unless it exists.
// The template has no exclusion set, so a run fails until the user
// picks one.
func EnsurePolicyFile(homeDir string) error {
	return ensureFile(config.PolicyFilePath(homeDir), PolicyYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}

	return nil
}
