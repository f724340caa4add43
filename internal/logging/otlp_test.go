package logging

import (
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"google.golang.org/protobuf/encoding/protojson"

	collectorlogs "go.opentelemetry.io/proto/otlp/collector/logs/v1"
)

type otlpRecorder struct {
	mu       sync.Mutex
	requests []*collectorlogs.ExportLogsServiceRequest
	headers  []http.Header
}

func (r *otlpRecorder) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		msg := &collectorlogs.ExportLogsServiceRequest{}
		if err := protojson.Unmarshal(body, msg); err != nil {
			t.Errorf("decode body: %v\n%s", err, body)
		}
		r.mu.Lock()
		r.requests = append(r.requests, msg)
		r.headers = append(r.headers, req.Header.Clone())
		r.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}
}

func (r *otlpRecorder) snapshot() ([]*collectorlogs.ExportLogsServiceRequest, []http.Header) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.requests), slices.Clone(r.headers)
}

func TestOTLPWriter_HTTPBatching(t *testing.T) {
	rec := &otlpRecorder{}
	srv := httptest.NewServer(rec.handler(t))
	defer srv.Close()

	w, err := NewOTLPWriter(OTLPConfig{
		Endpoint:           srv.URL,
		BatchSize:          2,
		Headers:            map[string]string{"Authorization": "Bearer token"},
		ResourceAttributes: map[string]string{"project": "warnings-ng"},
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, msg := range []string{"one", "two", "three"} {
		if err := w.Write(&Entry{Timestamp: time.Now(), Level: LevelInfo, Message: msg, Fields: map[string]any{"component": "generate"}}); err != nil {
			t.Fatalf("Write(%s): %v", msg, err)
		}
	}
	if requests, _ := rec.snapshot(); len(requests) != 1 {
		t.Fatalf("expected one export after a full batch, got %d", len(requests))
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	requests, headers := rec.snapshot()
	if len(requests) != 2 {
		t.Fatalf("expected Close to export the remainder, got %d requests", len(requests))
	}

	if got := headers[0].Get("Authorization"); got != "Bearer token" {
		t.Errorf("Authorization header = %q", got)
	}
	if got := headers[0].Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}

	first := requests[0].GetResourceLogs()[0]
	attrs := map[string]string{}
	for _, kv := range first.GetResource().GetAttributes() {
		attrs[kv.GetKey()] = kv.GetValue().GetStringValue()
	}
	if attrs["service.name"] != ServiceName {
		t.Errorf("service.name = %q", attrs["service.name"])
	}
	if attrs["project"] != "warnings-ng" {
		t.Errorf("project attribute = %q", attrs["project"])
	}

	scope := first.GetScopeLogs()[0]
	if scope.GetScope().GetName() != ScopeName {
		t.Errorf("scope name = %q", scope.GetScope().GetName())
	}
	records := scope.GetLogRecords()
	if len(records) != 2 || records[0].GetBody().GetStringValue() != "one" {
		t.Fatalf("unexpected records: %v", records)
	}
	if records[0].GetSeverityText() != "info" {
		t.Errorf("severity text = %q", records[0].GetSeverityText())
	}

	last := requests[1].GetResourceLogs()[0].GetScopeLogs()[0].GetLogRecords()
	if len(last) != 1 || last[0].GetBody().GetStringValue() != "three" {
		t.Errorf("unexpected final batch: %v", last)
	}
}

func TestOTLPWriter_WriteAfterClose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	defer srv.Close()

	w, err := NewOTLPWriter(OTLPConfig{Endpoint: srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Write(&Entry{Message: "late"}); err == nil {
		t.Error("expected error writing to a closed writer")
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestOTLPWriter_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	w, err := NewOTLPWriter(OTLPConfig{Endpoint: srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	_ = w.Write(&Entry{Timestamp: time.Now(), Level: LevelError, Message: "boom"})

	err = w.Flush()
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Errorf("Flush error = %v, want status 503", err)
	}
	_ = w.Close()
}

func TestNewOTLPWriter_Errors(t *testing.T) {
	if _, err := NewOTLPWriter(OTLPConfig{}); err == nil {
		t.Error("expected error for missing endpoint")
	}
	if _, err := NewOTLPWriter(OTLPConfig{Endpoint: "localhost:4317", Protocol: "udp"}); err == nil {
		t.Error("expected error for unsupported protocol")
	}
}
