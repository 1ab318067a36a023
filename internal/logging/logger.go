package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/fadedpez/blackjack/internal/types"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

var charmLevels = map[Level]charmlog.Level{
	DEBUG: charmlog.DebugLevel,
	INFO:  charmlog.InfoLevel,
	WARN:  charmlog.WarnLevel,
	ERROR: charmlog.ErrorLevel,
}

// String returns the upper-case level name
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts a level name such as "debug" or "WARN" into a Level
func ParseLevel(name string) (Level, error) {
	for level, levelName := range levelNames {
		if strings.EqualFold(strings.TrimSpace(name), levelName) {
			return level, nil
		}
	}
	return INFO, types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("unknown log level %q", name))
}

// Logger represents our custom logger
type Logger struct {
	base  *charmlog.Logger
	level Level
}

// NewLogger creates a new logger instance writing to stderr
func NewLogger(level Level) *Logger {
	return NewLoggerWithWriter(os.Stderr, level)
}

// NewLoggerWithWriter creates a logger that writes to w
func NewLoggerWithWriter(w io.Writer, level Level) *Logger {
	base := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05.000",
		ReportCaller:    true,
		CallerOffset:    1,
		Level:           charmLevels[level],
	})
	return &Logger{
		base:  base,
		level: level,
	}
}

// Level returns the minimum level this logger emits
func (l *Logger) Level() Level {
	return l.level
}

// With returns a child logger that adds the given key/value pairs to every line
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{
		base:  l.base.With(keyvals...),
		level: l.level,
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.base.Debugf(format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.base.Infof(format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.base.Warnf(format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.base.Errorf(format, v...)
}

// LogError logs a GameError with appropriate context
func (l *Logger) LogError(err error) {
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		// Format error context
		context := []string{
			fmt.Sprintf("Code: %s", gameErr.Code),
			fmt.Sprintf("Message: %s", gameErr.Message),
		}
		if gameErr.Err != nil {
			context = append(context, fmt.Sprintf("Cause: %v", gameErr.Err))
		}

		l.base.Errorf("Game error occurred:\n\t%s", strings.Join(context, "\n\t"))
	} else {
		l.base.Errorf("Unexpected error: %v", err)
	}
}

// Default logger instance
var Default = NewLogger(INFO)

// Discard is a logger that drops everything, handy in tests
var Discard = NewLoggerWithWriter(io.Discard, ERROR)
