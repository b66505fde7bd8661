// Package logging provides a zerolog-backed implementation of the
// metasys.Logger interface.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger adapts zerolog to the metasys.Logger interface.
type Logger struct {
	zl zerolog.Logger
}

// New creates a Logger writing JSON lines to output at the given level
// ("debug", "info", "warn", "error"; unknown levels fall back to info).
func New(output io.Writer, level string) *Logger {
	if output == nil {
		output = os.Stderr
	}

	zl := zerolog.New(output).Level(parseLevel(level)).With().Timestamp().Logger()

	return &Logger{zl: zl}
}

// NewPretty creates a Logger with human-readable console output.
func NewPretty(output io.Writer, level string) *Logger {
	if output == nil {
		output = os.Stderr
	}

	writer := zerolog.ConsoleWriter{Out: output}
	zl := zerolog.New(writer).Level(parseLevel(level)).With().Timestamp().Logger()

	return &Logger{zl: zl}
}

// parseLevel converts a level name to zerolog.Level.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug implements metasys.Logger.Debug.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

// Info implements metasys.Logger.Info.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.zl.Info().Fields(fields).Msg(msg)
}

// Warn implements metasys.Logger.Warn.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

// Error implements metasys.Logger.Error.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.zl.Error().Fields(fields).Msg(msg)
}
