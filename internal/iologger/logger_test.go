package iologger_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/internal/iologger"
	"github.com/gnames/gnrating/pkg/config"
	"github.com/gnames/gnrating/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	defer slog.SetDefault(slog.Default())

	dir := t.TempDir()
	cfg := config.LogConfig{Format: "text", Level: "debug", Destination: "file"}
	require.NoError(t, iologger.Init(dir, cfg, false))

	slog.Info("ranking started", "persons", 3)
	data, err := os.ReadFile(filepath.Join(dir, "gnrating.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "ranking started")
	assert.Contains(t, string(data), "persons=3")
}

func TestInitBadDir(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	dir := filepath.Join(t.TempDir(), "missing", "dir")
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}
	err := iologger.Init(dir, cfg, true)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"loud", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, iologger.Level(tt.name))
		})
	}
}

func TestInitAppend(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	defer slog.SetDefault(slog.Default())

	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}
	require.NoError(t, iologger.Init(dir, cfg, false))
	slog.Info("first run")
	require.NoError(t, iologger.Init(dir, cfg, true))
	slog.Info("second run")
	slog.Debug("hidden")

	data, err := os.ReadFile(filepath.Join(dir, "gnrating.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"first run"`)
	assert.Contains(t, string(data), `"msg":"second run"`)
	assert.NotContains(t, string(data), "hidden")

	require.NoError(t, iologger.Init(dir, cfg, false))
	data, err = os.ReadFile(filepath.Join(dir, "gnrating.log"))
	require.NoError(t, err)
	assert.Empty(t, string(data))
}
