// Package logging sets up the structured logger. The TUI owns the terminal,
// so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to path, creating parent directories as
// needed. An empty path discards all output. The returned func closes the
// underlying file.
func New(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return newLogger(io.Discard), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return newLogger(f), f.Close, nil
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pickforme",
		Level:           log.DebugLevel,
	})
}
