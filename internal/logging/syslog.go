package logging

import (
	"fmt"
	"log/syslog"
	"maps"
	"slices"
	"strings"
)

// SyslogConfig contains syslog writer configuration.
type SyslogConfig struct {
	// Network is empty for local syslog, or "udp"/"tcp" for remote.
	Network string

	// Address is the remote syslog server address (e.g., "logs.example.com:514").
	// Empty for local syslog.
	Address string

	// Facility is the syslog facility (e.g., "local0", "user", "daemon").
	Facility string

	// Tag is the program name/tag for syslog messages.
	Tag string

	// ErrorLogger logs internal errors to a file (optional).
	ErrorLogger *ErrorLogger
}

// SyslogWriter sends logs to syslog (local or remote).
type SyslogWriter struct {
	writer      *syslog.Writer
	errorLogger *ErrorLogger
	address     string // for error messages
}

// NewSyslogWriter creates a new syslog writer.
func NewSyslogWriter(cfg SyslogConfig) (*SyslogWriter, error) {
	facility := parseFacility(cfg.Facility)
	priority := facility | syslog.LOG_INFO

	tag := cfg.Tag
	if tag == "" {
		tag = DefaultSyslogTag
	}

	var writer *syslog.Writer
	var err error
	address := "local"

	if cfg.Network != "" && cfg.Address != "" {
		// Remote syslog
		writer, err = syslog.Dial(cfg.Network, cfg.Address, priority, tag)
		address = cfg.Network + "://" + cfg.Address
	} else {
		// Local syslog
		writer, err = syslog.New(priority, tag)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to syslog: %w", err)
	}

	return &SyslogWriter{
		writer:      writer,
		errorLogger: cfg.ErrorLogger,
		address:     address,
	}, nil
}

// Write sends a log entry to syslog.
func (s *SyslogWriter) Write(entry *Entry) error {
	msg := formatSyslog(entry)

	var writeErr error
	switch entry.Level {
	case LevelDebug:
		writeErr = s.writer.Debug(msg)
	case LevelWarn:
		writeErr = s.writer.Warning(msg)
	case LevelError:
		writeErr = s.writer.Err(msg)
	default:
		writeErr = s.writer.Info(msg)
	}

	if writeErr != nil {
		s.errorLogger.LogErrorf("syslog", "failed to write to %s: %v", s.address, writeErr)
	}
	return writeErr
}

// Close closes the syslog connection.
func (s *SyslogWriter) Close() error {
	if s.writer != nil {
		return s.writer.Close()
	}
	return nil
}

// formatSyslog renders an entry as its message followed by key=value
// fields in key order, e.g. "wrote table tools=15 run_id=...".
func formatSyslog(entry *Entry) string {
	var b strings.Builder
	b.WriteString(entry.Message)
	for _, k := range slices.Sorted(maps.Keys(entry.Fields)) {
		fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
	}
	return b.String()
}

// parseFacility converts a facility name to syslog.Priority.
func parseFacility(name string) syslog.Priority {
	if p, ok := facilities[name]; ok {
		return p
	}
	return syslog.LOG_LOCAL0
}

var facilities = map[string]syslog.Priority{
	"kern":     syslog.LOG_KERN,
	"user":     syslog.LOG_USER,
	"daemon":   syslog.LOG_DAEMON,
	"auth":     syslog.LOG_AUTH,
	"syslog":   syslog.LOG_SYSLOG,
	"cron":     syslog.LOG_CRON,
	"authpriv": syslog.LOG_AUTHPRIV,
	"local0":   syslog.LOG_LOCAL0,
	"local1":   syslog.LOG_LOCAL1,
	"local2":   syslog.LOG_LOCAL2,
	"local3":   syslog.LOG_LOCAL3,
	"local4":   syslog.LOG_LOCAL4,
	"local5":   syslog.LOG_LOCAL5,
	"local6":   syslog.LOG_LOCAL6,
	"local7":   syslog.LOG_LOCAL7,
}
