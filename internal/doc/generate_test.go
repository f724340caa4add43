package doc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"toolcatalog/internal/tools"
)

type recordingLogger struct {
	infos, warns, errors []string
}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(format string, args ...any) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func TestGenerate_WritesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "SUPPORTED-FORMATS.md")
	logger := &recordingLogger{}

	result, err := Generate(sampleDescriptors(), path, Options{
		Generator: "TestLister",
		Now:       func() time.Time { return fixedTime },
		Logger:    logger,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if result.Tools != 2 || result.Rows != 3 {
		t.Errorf("Result = %+v, want 2 tools and 3 rows", result)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if result.Bytes != len(data) {
		t.Errorf("Result.Bytes = %d, file has %d bytes", result.Bytes, len(data))
	}
	if !strings.HasPrefix(string(data), "<!--- DO NOT EDIT - Generated by TestLister at 2026-10-14T09:30:15.123-->\n") {
		t.Errorf("unexpected banner in %q", string(data[:80]))
	}
	if !strings.HasSuffix(string(data), sampleTable) {
		t.Error("file does not end with the expected table")
	}
	if len(logger.infos) != 1 || !strings.Contains(logger.infos[0], "2 tools, 3 rows") {
		t.Errorf("info log = %v", logger.infos)
	}
}

func TestGenerate_TruncatesPreviousContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	if err := os.WriteFile(path, []byte(strings.Repeat("stale\n", 10000)), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Generate(nil, path, Options{}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("previous content was not truncated")
	}
}

func TestGenerate_IsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")
	opts := Options{Now: func() time.Time { return fixedTime }}

	if _, err := Generate(sampleDescriptors(), path, opts); err != nil {
		t.Fatal(err)
	}
	first, _ := os.ReadFile(path)

	if _, err := Generate(sampleDescriptors(), path, opts); err != nil {
		t.Fatal(err)
	}
	second, _ := os.ReadFile(path)

	if string(first) != string(second) {
		t.Error("second run produced different content")
	}
}

func TestGenerate_MissingParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.md")
	logger := &recordingLogger{}

	_, err := Generate(sampleDescriptors(), path, Options{Logger: logger})
	if err == nil {
		t.Fatal("Generate() expected error for missing parent directory")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Generate() error = %v, want not-exist error", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the path", err)
	}
	if len(logger.errors) != 1 {
		t.Errorf("error log = %v", logger.errors)
	}
}

func TestGenerate_WarnsAboutEmptyLabel(t *testing.T) {
	logger := &recordingLogger{}
	descs := []tools.Descriptor{tools.Definition{Identifier: "nolabel", Title: "No Label"}}

	if _, err := Generate(descs, filepath.Join(t.TempDir(), "out.md"), Options{Logger: logger}); err != nil {
		t.Fatal(err)
	}
	if len(logger.warns) != 1 || !strings.Contains(logger.warns[0], "nolabel") {
		t.Errorf("warn log = %v", logger.warns)
	}
}

func TestGenerateFrom_Registry(t *testing.T) {
	registry := tools.NewRegistry()
	for _, d := range sampleDescriptors() {
		if err := registry.Register(d); err != nil {
			t.Fatal(err)
		}
	}

	result, err := GenerateFrom(registry, filepath.Join(t.TempDir(), "out.md"), Options{})
	if err != nil {
		t.Fatalf("GenerateFrom() error = %v", err)
	}
	if result.Tools != 2 {
		t.Errorf("Result.Tools = %d, want 2", result.Tools)
	}
}
