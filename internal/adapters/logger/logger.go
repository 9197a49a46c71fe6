// Package logger implements a logging adapter using log/slog backed by charmbracelet/log.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"go.trai.ch/pinpack/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	level    log.Level
	output   io.Writer
}

var _ ports.Logger = (*Logger)(nil)

// New creates a new Logger writing to os.Stderr at info level.
func New() *Logger {
	l := &Logger{
		output: os.Stderr,
		level:  log.InfoLevel,
	}
	l.rebuild()
	return l
}

// rebuild swaps the slog handler. Callers must hold mu or own l exclusively.
func (l *Logger) rebuild() {
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           l.level,
	}
	if l.jsonMode {
		opts.Formatter = log.JSONFormatter
	}
	l.logger = slog.New(log.NewWithOptions(l.output, opts))
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and human-readable output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose enables debug-level output.
func (l *Logger) SetVerbose(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = log.InfoLevel
	if enable {
		l.level = log.DebugLevel
	}
	l.rebuild()
}

// Debug logs a diagnostic message, shown only in verbose mode.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its full cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// Format renders err the way Error prints it.
func Format(err error) string {
	return formatErrorEntries(collectErrorEntries(err))
}
