// Package logger provides the process-wide zerolog logger used across
// qasmgen. Output defaults to a console writer on stderr.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// Logger returns the shared logger.
func Logger() zerolog.Logger {
	return logger
}

// Set replaces the shared logger.
func Set(l zerolog.Logger) {
	logger = l
}

// SetOutput redirects the shared logger to w.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// SetLevel adjusts the shared logger's level.
func SetLevel(level zerolog.Level) {
	logger = logger.Level(level)
}

// Disable turns logging off.
func Disable() {
	logger = zerolog.Nop()
}
