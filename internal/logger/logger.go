// Package logger provides the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
)

var level = new(slog.LevelVar)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: level,
}))

// Default returns the shared logger. Output goes to stderr so command output
// on stdout stays clean.
func Default() *slog.Logger {
	return defaultLogger
}

// SetVerbose switches the shared logger between info and debug level.
func SetVerbose(verbose bool) {
	if verbose {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelInfo)
}
