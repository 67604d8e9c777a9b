package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the level from SWEETS_LOG_LEVEL.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl := strings.TrimSpace(os.Getenv("SWEETS_LOG_LEVEL")); lvl != "" {
		if level, err := log.ParseLevel(lvl); err == nil {
			logger.SetLevel(level)
		}
	}
	return logger
}

// openPlayLog opens ~/.sweets/sweets.log for logging while the alt screen
// owns the terminal. It falls back to discarding logs.
func openPlayLog() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, "sweets"), func() {}
	}
	dir := filepath.Join(home, ".sweets")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, "sweets"), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "sweets.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, "sweets"), func() {}
	}
	return newLogger(f, "sweets"), func() { f.Close() }
}
