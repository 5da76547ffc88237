// Package logger provides structured diagnostics for the scan. The report
// itself goes to stdout; diagnostics go to stderr so they never disturb the
// report's byte-stable output.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Level represents log levels.
type Level = zerolog.Level

// Log levels.
const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
)

// Logger wraps zerolog for structured logging.
type Logger struct {
	zl zerolog.Logger
}

// Config holds logger configuration.
type Config struct {
	Level  Level
	Pretty bool // use console writer (colored output)
	Output io.Writer
}

// New creates a new logger with the given configuration.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	var output io.Writer = cfg.Output
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: "15:04:05",
		}
	}

	zl := zerolog.New(output).
		With().
		Timestamp().
		Logger().
		Level(cfg.Level)

	return &Logger{zl: zl}
}

// NewDefault creates a pretty stderr logger at warn level, which keeps the
// tool quiet unless something is worth mentioning.
func NewDefault() *Logger {
	return New(Config{Level: WarnLevel, Pretty: true})
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", component).Logger()}
}

// SetLevel returns a copy of the logger at the given level.
func (l *Logger) SetLevel(level Level) *Logger {
	return &Logger{zl: l.zl.Level(level)}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.zl.Debug().Msgf(format, args...)
}
