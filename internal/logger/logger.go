package logger

import (
	"io"
	"log"
	"os"
)

// Logger defines the wurlitzer logging contract.
// Implementations should support standard log levels and be safe for concurrent use.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}

// StdLogger wraps Go's standard logger to implement the wurlitzer logging contract.
// Debug lines are dropped unless debug output has been enabled.
type StdLogger struct {
	logger *log.Logger
	debug  bool
}

// NewStdLogger creates a new StdLogger writing to w.
func NewStdLogger(w io.Writer) *StdLogger {
	return &StdLogger{
		logger: log.New(w, "", log.LstdFlags),
	}
}

// SetDebug toggles debug output.
func (l *StdLogger) SetDebug(on bool) {
	l.debug = on
}

func (l *StdLogger) Info(msg string, args ...any) {
	l.logger.Printf("[INFO] "+msg, args...)
}

func (l *StdLogger) Warn(msg string, args ...any) {
	l.logger.Printf("[WARN] "+msg, args...)
}

func (l *StdLogger) Error(msg string, args ...any) {
	l.logger.Printf("[ERROR] "+msg, args...)
}

func (l *StdLogger) Debug(msg string, args ...any) {
	if !l.debug {
		return
	}
	l.logger.Printf("[DEBUG] "+msg, args...)
}

// Default provides a global default logger instance writing to stderr.
var Default = NewStdLogger(os.Stderr)
