package logging

import (
	"fmt"
	"time"

	"toolcatalog/internal/config"
)

// DefaultSyslogTag is used when a syslog receiver has no tag.
const DefaultSyslogTag = "toolcatalog"

// NewDispatcherFromConfig builds a dispatcher for the logging section of
// the configuration. The error log file is opened when set and receives
// both component warnings and receiver failures.
func NewDispatcherFromConfig(cfg config.LoggingConfig) (*Dispatcher, *ErrorLogger, error) {
	d := NewDispatcher()

	var errorLogger *ErrorLogger
	if cfg.ErrorLog != "" {
		var err error
		errorLogger, err = NewErrorLogger(cfg.ErrorLog)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create error logger: %w", err)
		}
		d.errorLogger = errorLogger
	}

	for i, r := range cfg.Receivers {
		w, err := newWriterFromConfig(r, cfg.Attributes, errorLogger)
		if err != nil {
			_ = d.Close()
			return nil, nil, fmt.Errorf("receiver %d (%s): %w", i, r.Type, err)
		}
		d.AddWriter(w)
	}

	return d, errorLogger, nil
}

func newWriterFromConfig(r config.ReceiverConfig, attrs map[string]string, errorLogger *ErrorLogger) (Writer, error) {
	tag := r.Tag
	if tag == "" {
		tag = DefaultSyslogTag
	}

	switch r.Type {
	case "syslog":
		return NewSyslogWriter(SyslogConfig{
			Facility:    r.Facility,
			Tag:         tag,
			ErrorLogger: errorLogger,
		})

	case "syslog-remote":
		protocol := r.Protocol
		if protocol == "" {
			protocol = "udp"
		}
		return NewSyslogWriter(SyslogConfig{
			Network:     protocol,
			Address:     r.Address,
			Facility:    r.Facility,
			Tag:         tag,
			ErrorLogger: errorLogger,
		})

	case "otlp":
		endpoint := r.Endpoint
		if endpoint == "" {
			endpoint = r.Address
		}
		if endpoint == "" {
			return nil, fmt.Errorf("endpoint is required for otlp receiver")
		}

		cfg := OTLPConfig{
			Endpoint:           endpoint,
			Protocol:           r.Protocol,
			Headers:            r.Headers,
			BatchSize:          r.BatchSize,
			Insecure:           r.Insecure,
			ResourceAttributes: attrs,
			ErrorLogger:        errorLogger,
		}
		if r.Timeout != "" {
			d, err := time.ParseDuration(r.Timeout)
			if err != nil {
				return nil, fmt.Errorf("invalid timeout: %w", err)
			}
			cfg.Timeout = d
		}
		return NewOTLPWriter(cfg)

	default:
		return nil, fmt.Errorf("unknown receiver type: %s", r.Type)
	}
}
