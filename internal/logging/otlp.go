package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"maps"
	"net/http"
	"slices"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"

	collectorlogs "go.opentelemetry.io/proto/otlp/collector/logs/v1"
	commonpb "go.opentelemetry.io/proto/otlp/common/v1"
	logspb "go.opentelemetry.io/proto/otlp/logs/v1"
	resourcepb "go.opentelemetry.io/proto/otlp/resource/v1"

	"toolcatalog/internal/version"
)

const (
	// ServiceName is reported as the service.name resource attribute.
	ServiceName = "toolcatalog"

	// ScopeName is the instrumentation scope of generator log records.
	ScopeName = "toolcatalog.generate"
)

// OTLPConfig contains OpenTelemetry writer configuration.
type OTLPConfig struct {
	// Endpoint is the OTLP endpoint.
	// For HTTP: "http://localhost:4318/v1/logs"
	// For gRPC: "localhost:4317"
	Endpoint string

	// Protocol is "http" or "grpc" (default: http).
	Protocol string

	// Headers are custom headers (for authentication, etc.).
	Headers map[string]string

	// BatchSize is the number of entries exported per request.
	BatchSize int

	// Timeout bounds a single export request.
	Timeout time.Duration

	// Insecure disables TLS for gRPC connections.
	Insecure bool

	// ResourceAttributes are custom attributes added to the resource.
	ResourceAttributes map[string]string

	// ErrorLogger logs internal errors to a file (optional).
	ErrorLogger *ErrorLogger
}

// OTLPWriter sends logs to an OpenTelemetry collector. Entries are buffered
// and exported whenever a batch fills up and once more on Close. Exports run
// on the calling goroutine.
type OTLPWriter struct {
	cfg         OTLPConfig
	httpClient  *http.Client
	grpcConn    *grpc.ClientConn
	grpcClient  collectorlogs.LogsServiceClient
	errorLogger *ErrorLogger
	buffer      []*Entry
	mu          sync.Mutex
	closed      bool
}

// NewOTLPWriter creates a new OTLP writer.
func NewOTLPWriter(cfg OTLPConfig) (*OTLPWriter, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTLP endpoint is required")
	}

	if cfg.Protocol == "" {
		cfg.Protocol = "http"
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	w := &OTLPWriter{
		cfg:         cfg,
		errorLogger: cfg.ErrorLogger,
		buffer:      make([]*Entry, 0, cfg.BatchSize),
	}

	switch cfg.Protocol {
	case "grpc":
		if err := w.initGRPC(); err != nil {
			return nil, fmt.Errorf("failed to initialize gRPC: %w", err)
		}
	case "http":
		w.httpClient = &http.Client{Timeout: cfg.Timeout}
	default:
		return nil, fmt.Errorf("unsupported protocol: %s (use 'http' or 'grpc')", cfg.Protocol)
	}

	return w, nil
}

func (w *OTLPWriter) initGRPC() error {
	var opts []grpc.DialOption
	if w.cfg.Insecure {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	conn, err := grpc.NewClient(w.cfg.Endpoint, opts...)
	if err != nil {
		return err
	}

	w.grpcConn = conn
	w.grpcClient = collectorlogs.NewLogsServiceClient(conn)
	return nil
}

// Write buffers a log entry and exports the batch once it is full.
func (w *OTLPWriter) Write(entry *Entry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("otlp writer is closed")
	}

	w.buffer = append(w.buffer, entry)
	if len(w.buffer) >= w.cfg.BatchSize {
		return w.flushLocked()
	}
	return nil
}

// Flush exports all buffered entries.
func (w *OTLPWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.flushLocked()
}

// Close exports remaining entries and releases the transport.
func (w *OTLPWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	err := w.flushLocked()
	if w.grpcConn != nil {
		if cerr := w.grpcConn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (w *OTLPWriter) flushLocked() error {
	if len(w.buffer) == 0 {
		return nil
	}

	entries := w.buffer
	w.buffer = make([]*Entry, 0, w.cfg.BatchSize)

	ctx, cancel := context.WithTimeout(context.Background(), w.cfg.Timeout)
	defer cancel()

	var err error
	switch w.cfg.Protocol {
	case "grpc":
		err = w.sendGRPC(ctx, entries)
	default:
		err = w.sendHTTP(ctx, entries)
	}
	if err != nil {
		w.errorLogger.LogErrorf("otlp-"+w.cfg.Protocol, "failed to export %d entries to %s: %v", len(entries), w.cfg.Endpoint, err)
	}
	return err
}

func (w *OTLPWriter) sendHTTP(ctx context.Context, entries []*Entry) error {
	payload, err := protojson.MarshalOptions{UseEnumNumbers: true}.Marshal(w.buildRequest(entries))
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range w.cfg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return nil
}

func (w *OTLPWriter) sendGRPC(ctx context.Context, entries []*Entry) error {
	if len(w.cfg.Headers) > 0 {
		ctx = metadata.NewOutgoingContext(ctx, metadata.New(w.cfg.Headers))
	}
	_, err := w.grpcClient.Export(ctx, w.buildRequest(entries))
	return err
}

func (w *OTLPWriter) buildRequest(entries []*Entry) *collectorlogs.ExportLogsServiceRequest {
	observed := uint64(time.Now().UnixNano())
	records := make([]*logspb.LogRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, &logspb.LogRecord{
			TimeUnixNano:         uint64(e.Timestamp.UnixNano()),
			ObservedTimeUnixNano: observed,
			SeverityNumber:       severityNumber(e.Level),
			SeverityText:         string(e.Level),
			Body:                 stringValue(e.Message),
			Attributes:           attributes(e.Fields),
		})
	}

	resource := []*commonpb.KeyValue{
		{Key: "service.name", Value: stringValue(ServiceName)},
		{Key: "service.version", Value: stringValue(version.Version)},
		{Key: "service.commit", Value: stringValue(version.Commit)},
	}
	for _, k := range slices.Sorted(maps.Keys(w.cfg.ResourceAttributes)) {
		resource = append(resource, &commonpb.KeyValue{Key: k, Value: stringValue(w.cfg.ResourceAttributes[k])})
	}

	return &collectorlogs.ExportLogsServiceRequest{
		ResourceLogs: []*logspb.ResourceLogs{{
			Resource: &resourcepb.Resource{Attributes: resource},
			ScopeLogs: []*logspb.ScopeLogs{{
				Scope:      &commonpb.InstrumentationScope{Name: ScopeName, Version: version.Version},
				LogRecords: records,
			}},
		}},
	}
}

func severityNumber(level Level) logspb.SeverityNumber {
	switch level {
	case LevelDebug:
		return logspb.SeverityNumber_SEVERITY_NUMBER_DEBUG
	case LevelWarn:
		return logspb.SeverityNumber_SEVERITY_NUMBER_WARN
	case LevelError:
		return logspb.SeverityNumber_SEVERITY_NUMBER_ERROR
	default:
		return logspb.SeverityNumber_SEVERITY_NUMBER_INFO
	}
}

func stringValue(s string) *commonpb.AnyValue {
	return &commonpb.AnyValue{Value: &commonpb.AnyValue_StringValue{StringValue: s}}
}

// attributes converts entry fields in key order.
func attributes(fields map[string]any) []*commonpb.KeyValue {
	if len(fields) == 0 {
		return nil
	}

	attrs := make([]*commonpb.KeyValue, 0, len(fields))
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		attr := &commonpb.KeyValue{Key: k}
		switch val := fields[k].(type) {
		case string:
			attr.Value = stringValue(val)
		case int:
			attr.Value = &commonpb.AnyValue{Value: &commonpb.AnyValue_IntValue{IntValue: int64(val)}}
		case int64:
			attr.Value = &commonpb.AnyValue{Value: &commonpb.AnyValue_IntValue{IntValue: val}}
		case bool:
			attr.Value = &commonpb.AnyValue{Value: &commonpb.AnyValue_BoolValue{BoolValue: val}}
		case float64:
			attr.Value = &commonpb.AnyValue{Value: &commonpb.AnyValue_DoubleValue{DoubleValue: val}}
		default:
			attr.Value = stringValue(fmt.Sprintf("%v", val))
		}
		attrs = append(attrs, attr)
	}
	return attrs
}
