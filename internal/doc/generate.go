package doc

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"toolcatalog/internal/tools"
)

const (
	// DefaultOutputPath is the document location relative to the working
	// directory of the generator.
	DefaultOutputPath = "../SUPPORTED-FORMATS.md"

	// DefaultGenerator is the program name shown in the banner.
	DefaultGenerator = "ToolsLister"
)

// Logger reports progress of a generator run.
type Logger interface {
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// Options configures Generate.
type Options struct {
	// Generator is shown in the banner. Defaults to DefaultGenerator.
	Generator string

	// Now returns the banner timestamp. Defaults to time.Now.
	Now func() time.Time

	// Logger receives progress messages. Defaults to a no-op logger.
	Logger Logger
}

func (o Options) withDefaults() Options {
	if o.Generator == "" {
		o.Generator = DefaultGenerator
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = nopLogger{}
	}
	return o
}

// Result describes a written document.
type Result struct {
	Path  string
	Tools int
	Rows  int
	Bytes int
}

// Build sorts the descriptors and assembles the document without writing it.
func Build(descriptors []tools.Descriptor, opts Options) Document {
	opts = opts.withDefaults()
	sorted := Sort(descriptors)
	for _, d := range sorted {
		if d.LabelProvider().Name() == "" {
			opts.Logger.Warnf("tool %s has no label name, sorting it first", d.ID())
		}
	}
	return Document{
		Generator:   opts.Generator,
		GeneratedAt: opts.Now(),
		Rows:        BuildRows(sorted),
	}
}

// Generate writes the reference document of descriptors to outputPath,
// replacing any previous content. The document is rendered completely
// before the file is opened; the parent directory must exist.
func Generate(descriptors []tools.Descriptor, outputPath string, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if outputPath == "" {
		outputPath = DefaultOutputPath
	}

	document := Build(descriptors, opts)
	content := document.Render()

	if err := writeFile(outputPath, content); err != nil {
		opts.Logger.Errorf("writing %s failed: %v", outputPath, err)
		return nil, err
	}

	result := &Result{
		Path:  outputPath,
		Tools: len(descriptors),
		Rows:  len(document.Rows),
		Bytes: len(content),
	}
	opts.Logger.Infof("wrote %s (%d tools, %d rows)", result.Path, result.Tools, result.Rows)
	return result, nil
}

// GenerateFrom runs Generate over the descriptors of src.
func GenerateFrom(src tools.Source, outputPath string, opts Options) (*Result, error) {
	return Generate(src.Descriptors(), outputPath, opts)
}

// writeFile truncates path and writes content through a buffer. The file
// is closed on every path; the first error wins.
func writeFile(path, content string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	w := bufio.NewWriter(file)
	if _, err := w.WriteString(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
