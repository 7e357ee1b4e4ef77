package types

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// LogLevel orders log messages by severity.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarning
	LogLevelError
	LogLevelNone // silences everything
)

var levelNames = [...]string{
	LogLevelDebug:   "debug",
	LogLevelInfo:    "info",
	LogLevelWarning: "warning",
	LogLevelError:   "error",
	LogLevelNone:    "none",
}

func (l LogLevel) String() string {
	if l < LogLevelDebug || l > LogLevelNone {
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLogLevel maps a config value such as "INFO" to its level. "off" is an
// alias for none and anything unrecognised falls back to warning.
func ParseLogLevel(s string) LogLevel {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "off" {
		return LogLevelNone
	}
	for level, n := range levelNames {
		if n == name {
			return LogLevel(level)
		}
	}
	return LogLevelWarning
}

// Logger prints messages at or above its level, one stdlib logger per level
// so every line carries its severity as a prefix.
type Logger struct {
	sinks [LogLevelNone]*log.Logger
	level LogLevel
}

// GlobalLogger is shared by the binaries. It starts at warning on stderr so
// stdout only carries the tables.
var GlobalLogger = InitLogger(LogLevelWarning, os.Stderr)

// InitLogger builds a Logger writing to output, or to stderr when output is nil.
func InitLogger(level LogLevel, output io.Writer) *Logger {
	if output == nil {
		output = os.Stderr
	}
	l := &Logger{level: level}
	for lvl := range l.sinks {
		prefix := strings.ToUpper(levelNames[lvl]) + ": "
		l.sinks[lvl] = log.New(output, prefix, log.Ldate|log.Ltime)
	}
	return l
}

func (l *Logger) SetLevel(level LogLevel) { l.level = level }

func (l *Logger) GetLevel() LogLevel { return l.level }

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level LogLevel) bool {
	return level >= l.level && level < LogLevelNone
}

func (l *Logger) logf(level LogLevel, format string, v ...interface{}) {
	if l.Enabled(level) {
		l.sinks[level].Printf(format, v...)
	}
}

func (l *Logger) Debug(format string, v ...interface{}) { l.logf(LogLevelDebug, format, v...) }

func (l *Logger) Info(format string, v ...interface{}) { l.logf(LogLevelInfo, format, v...) }

func (l *Logger) Warning(format string, v ...interface{}) { l.logf(LogLevelWarning, format, v...) }

func (l *Logger) Error(format string, v ...interface{}) { l.logf(LogLevelError, format, v...) }
