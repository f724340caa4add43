// Package logging forwards generator log entries to a local file and to
// remote receivers (syslog, OTLP).
package logging

import (
	"errors"
	"sync"
	"time"
)

// Level represents log severity level.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Entry represents a log entry to be forwarded.
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     Level          `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Writer is the interface for log destinations.
type Writer interface {
	// Write sends a log entry to the destination.
	Write(entry *Entry) error

	// Close flushes any buffered data and closes the writer.
	Close() error
}

// Dispatcher fans out log entries to multiple writers.
type Dispatcher struct {
	writers     []Writer
	errorLogger *ErrorLogger
	mu          sync.RWMutex
}

// NewDispatcher creates a new log dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// AddWriter adds a writer to the dispatcher.
func (d *Dispatcher) AddWriter(w Writer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.writers = append(d.writers, w)
}

// Write sends an entry to all registered writers. A failing writer does
// not stop delivery to the others; failures are recorded in the error log.
func (d *Dispatcher) Write(entry *Entry) error {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, w := range d.writers {
		if err := w.Write(entry); err != nil {
			d.errorLogger.LogError("dispatcher", "write", err)
		}
	}
	return nil
}

// Close closes all registered writers and the error logger.
// It returns the joined close errors of the writers.
func (d *Dispatcher) Close() error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	var errs []error
	for _, w := range d.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if d.errorLogger != nil {
		_ = d.errorLogger.Close()
	}

	d.writers = nil
	return errors.Join(errs...)
}

// HasWriters returns true if the dispatcher has any writers registered.
func (d *Dispatcher) HasWriters() bool {
	if d == nil {
		return false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.writers) > 0
}
