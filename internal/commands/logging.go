package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/diogo/mindmate/internal/config"
)

// newLogger returns a debug-level text logger writing to the log file when
// verbose, otherwise a logger that drops everything. The terminal never
// receives log records.
func newLogger(cfg config.Config) (*slog.Logger, func() error, error) {
	if !cfg.Verbose {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	path, err := config.GetLogPath(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler).With("pid", os.Getpid()), f.Close, nil
}
