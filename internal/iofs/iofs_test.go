package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnrating/pkg/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	// idempotent
	for range 2 {
		require.NoError(t, EnsureDirs(tmpDir))
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "gnrating"),
		filepath.Join(tmpDir, ".cache", "gnrating"),
		filepath.Join(tmpDir, ".local", "share", "gnrating"),
		filepath.Join(tmpDir, ".local", "share", "gnrating", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err, v)
		assert.True(t, info.IsDir(), v)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), v)
	}
}

func TestTouchDirExisting(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "existing")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, touchDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestEnsureFiles(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureConfigFile(tmpDir))
	require.NoError(t, EnsurePolicyFile(tmpDir))

	configPath := filepath.Join(tmpDir, ".config", "gnrating", "config.yaml")
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(content))

	policyPath := filepath.Join(tmpDir, ".config", "gnrating", "policy.yaml")
	content, err = os.ReadFile(policyPath)
	require.NoError(t, err)
	assert.Equal(t, PolicyYAML, string(content))

	// existing files are not overwritten
	custom := "exclusion: duplicates\n"
	require.NoError(t, os.WriteFile(policyPath, []byte(custom), 0644))
	require.NoError(t, EnsurePolicyFile(tmpDir))
	content, err = os.ReadFile(policyPath)
	require.NoError(t, err)
	assert.Equal(t, custom, string(content))
}

func TestEnsureConfigFileNoDir(t *testing.T) {
	err := EnsureConfigFile(filepath.Join(t.TempDir(), "nohome"))
	assert.Error(t, err)
}

func TestEmbeddedTemplates(t *testing.T) {
	var cfg map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(ConfigYAML), &cfg))
	assert.Contains(t, cfg, "source")
	assert.Contains(t, cfg, "rating")

	// the template parses but needs an exclusion before use
	_, err := policy.Parse([]byte(PolicyYAML))
	assert.Error(t, err)
}
