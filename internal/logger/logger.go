// Package logger wraps zerolog with component-tagged helpers shared by the
// UI, the pipeline runner and the CLI.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// EnvLogLevel selects the level at startup (debug, info, warn, error)
const EnvLogLevel = "CRYOCARE_LOG_LEVEL"

// Logger is a component-aware structured logger
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger writing JSON lines to writer
func New(writer io.Writer, level zerolog.Level) *Logger {
	zl := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: zl}
}

// NewConsole creates a human-readable logger on stderr
func NewConsole(level zerolog.Level) *Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr}, level)
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// LevelFromEnv reads EnvLogLevel, defaulting to info
func LevelFromEnv() zerolog.Level {
	return ParseLevel(os.Getenv(EnvLogLevel))
}

// ParseLevel maps a level name to a zerolog level, defaulting to info
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Info(component, message string, fields map[string]interface{}) {
	event := l.zl.Info().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (l *Logger) Warning(component, message string, fields map[string]interface{}) {
	event := l.zl.Warn().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (l *Logger) Debug(component, message string, fields map[string]interface{}) {
	event := l.zl.Debug().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

// Error logs err under message; a nil err is logged without the error field
func (l *Logger) Error(component, message string, err error, fields map[string]interface{}) {
	event := l.zl.Error().Str("component", component)
	if err != nil {
		event = event.Err(err)
	}
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}
