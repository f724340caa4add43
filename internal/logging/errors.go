package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ErrorLogger appends warnings and errors to a local file, including
// failures of the remote receivers themselves.
type ErrorLogger struct {
	file *os.File
	mu   sync.Mutex
}

// NewErrorLogger creates an error logger that writes to the specified file.
// The file is created if it doesn't exist, and appended to if it does.
func NewErrorLogger(path string) (*ErrorLogger, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open error log: %w", err)
	}

	return &ErrorLogger{file: file}, nil
}

// LogError writes an error entry to the log file.
func (l *ErrorLogger) LogError(component, operation string, err error) {
	l.LogErrorf(component, "%s: %v", operation, err)
}

// LogErrorf writes a formatted error entry to the log file.
func (l *ErrorLogger) LogErrorf(component, format string, args ...any) {
	l.write("ERROR", component, format, args...)
}

// LogWarnf writes a formatted warning entry to the log file.
func (l *ErrorLogger) LogWarnf(component, format string, args ...any) {
	l.write("WARN", component, format, args...)
}

// LogInfof writes a formatted informational entry to the log file.
func (l *ErrorLogger) LogInfof(component, format string, args ...any) {
	l.write("INFO", component, format, args...)
}

func (l *ErrorLogger) write(level, component, format string, args ...any) {
	if l == nil || l.file == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(l.file, "%s %s [%s] %s\n", timestamp, level, component, msg)
}

// Close closes the error log file.
func (l *ErrorLogger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.file.Close()
	l.file = nil
	return err
}
