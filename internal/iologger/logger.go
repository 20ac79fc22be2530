// Package iologger sets up the default slog logger of GNrating.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnrating/pkg/config"
)

// Init replaces the default slog logger according to cfg. With the
// "file" destination the log goes to gnrating.log in logDir, either
// appended or truncated.
func Init(logDir string, cfg config.LogConfig, append bool) error {
	w, err := output(logDir, cfg.Destination, append)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: Level(cfg.Level)}
	var h slog.Handler
	switch cfg.Format {
	case "text", "tint":
		h = slog.NewTextHandler(w, opts)
	default:
		h = slog.NewJSONHandler(w, opts)
	}

	slog.SetDefault(slog.New(h))
	return nil
}

// Level converts a level name to slog.Level. Unknown names give Info.
func Level(name string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func output(logDir, dest string, append bool) (io.Writer, error) {
	switch dest {
	case "stdout":
		return os.Stdout, nil
	case "file":
	default:
		return os.Stderr, nil
	}

	path := filepath.Join(logDir, config.AppName+".log")
	flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if append {
		flag = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return nil, CreateLogFileError(path, err)
	}
	return f, nil
}
