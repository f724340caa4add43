package logging

import (
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"
)

// ComponentLogger provides scoped logging for a specific component.
// It writes to both a local ErrorLogger (file) and a remote Dispatcher
// (syslog, OTLP) when configured. Nil-safe: if both are nil, calls are no-ops.
type ComponentLogger struct {
	component   string
	fields      map[string]any
	errorLogger *ErrorLogger
	dispatcher  *Dispatcher
}

// NewComponentLogger creates a logger for the given component.
// Either errorLogger or dispatcher (or both) may be nil.
func NewComponentLogger(component string, errorLogger *ErrorLogger, dispatcher *Dispatcher) *ComponentLogger {
	return &ComponentLogger{
		component:   component,
		fields:      map[string]any{"component": component},
		errorLogger: errorLogger,
		dispatcher:  dispatcher,
	}
}

// ComponentLogger creates a scoped logger for the given component.
// The receiver may be nil, in which case only the errorLogger is used.
func (d *Dispatcher) ComponentLogger(component string, errorLogger *ErrorLogger) *ComponentLogger {
	return NewComponentLogger(component, errorLogger, d)
}

// With returns a copy of the logger that adds key=value to every entry.
func (l *ComponentLogger) With(key string, value any) *ComponentLogger {
	if l == nil {
		return nil
	}
	out := *l
	out.fields = maps.Clone(l.fields)
	out.fields[key] = value
	return &out
}

// WithRunID returns a copy of the logger tagged with a fresh run id.
func (l *ComponentLogger) WithRunID() *ComponentLogger {
	return l.With("run_id", uuid.NewString())
}

// Field returns the value of a field attached to the logger.
func (l *ComponentLogger) Field(key string) (any, bool) {
	if l == nil {
		return nil, false
	}
	v, ok := l.fields[key]
	return v, ok
}

// Warnf logs a warning message.
func (l *ComponentLogger) Warnf(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Infof logs an informational message.
func (l *ComponentLogger) Infof(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Errorf logs an error message.
func (l *ComponentLogger) Errorf(format string, args ...any) {
	l.log(LevelError, format, args...)
}

func (l *ComponentLogger) log(level Level, format string, args ...any) {
	if l == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.writeLocal(level, msg)
	l.dispatch(level, msg)
}

// writeLocal writes to the local ErrorLogger file.
func (l *ComponentLogger) writeLocal(level Level, msg string) {
	if l.errorLogger == nil {
		return
	}
	switch level {
	case LevelError:
		l.errorLogger.LogErrorf(l.component, "%s", msg)
	case LevelWarn:
		l.errorLogger.LogWarnf(l.component, "%s", msg)
	default:
		l.errorLogger.LogInfof(l.component, "%s", msg)
	}
}

// dispatch sends the entry to remote backends via the Dispatcher.
func (l *ComponentLogger) dispatch(level Level, msg string) {
	if l.dispatcher == nil {
		return
	}
	_ = l.dispatcher.Write(&Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   msg,
		Fields:    maps.Clone(l.fields),
	})
}
