package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"toolcatalog/internal/tools"
)

//go:embed builtin.toml
var builtinCatalog []byte

// BuiltinName is the name under which the embedded catalog is reported.
const BuiltinName = "builtin.toml"

// Loader reads catalog files into a registry.
type Loader struct {
	registry *tools.Registry
	loaded   map[string]bool
	files    []string
}

// NewLoader creates a loader that registers into registry.
func NewLoader(registry *tools.Registry) *Loader {
	return &Loader{
		registry: registry,
		loaded:   make(map[string]bool),
	}
}

// Files returns the catalog files read so far, in load order.
func (l *Loader) Files() []string {
	return append([]string(nil), l.files...)
}

// LoadFile reads the catalog at path and every file it includes.
// A file that was already loaded is skipped, which also breaks include
// cycles.
func (l *Loader) LoadFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if l.loaded[abs] {
		return nil
	}
	l.loaded[abs] = true

	format, err := DetectFormat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}
	file, err := Parse(data, format)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	l.files = append(l.files, path)
	if err := l.register(path, file); err != nil {
		return err
	}

	for _, pattern := range file.Include {
		matches, err := l.expandInclude(filepath.Dir(path), pattern)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, match := range matches {
			if err := l.LoadFile(match); err != nil {
				return err
			}
		}
	}
	return nil
}

// LoadBuiltin registers the embedded catalog.
func (l *Loader) LoadBuiltin() error {
	if l.loaded[BuiltinName] {
		return nil
	}
	l.loaded[BuiltinName] = true

	file, err := Parse(builtinCatalog, FormatTOML)
	if err != nil {
		return fmt.Errorf("%s: %w", BuiltinName, err)
	}
	if len(file.Include) > 0 {
		return fmt.Errorf("%s: includes are not supported in the built-in catalog", BuiltinName)
	}
	l.files = append(l.files, BuiltinName)
	return l.register(BuiltinName, file)
}

func (l *Loader) register(name string, file *File) error {
	for i, entry := range file.Tools {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("%s: tool[%d]: %w", name, i, err)
		}
		if err := l.registry.Register(entry.Descriptor()); err != nil {
			return fmt.Errorf("%s: tool[%d]: %w", name, i, err)
		}
	}
	return nil
}

// expandInclude resolves an include glob relative to dir. Matches are
// returned in lexical order.
func (l *Loader) expandInclude(dir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(dir, pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Load reads the given catalog files into a new registry. Without paths
// the built-in catalog is loaded.
func Load(paths ...string) (*tools.Registry, error) {
	registry := tools.NewRegistry()
	loader := NewLoader(registry)

	if len(paths) == 0 {
		if err := loader.LoadBuiltin(); err != nil {
			return nil, err
		}
		return registry, nil
	}

	for _, path := range paths {
		if err := loader.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// LoadBuiltin returns a registry with the embedded catalog.
func LoadBuiltin() (*tools.Registry, error) {
	return Load()
}
