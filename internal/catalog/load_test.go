package catalog

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"toolcatalog/internal/tools"
)

func TestLoad_Includes(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "catalog.toml")
	writeFile(t, main, `
include = ["tools.d/*.toml", "extra/**/*.yaml"]

[[tool]]
id = "main"
name = "Main"
`)
	writeFile(t, filepath.Join(dir, "tools.d", "b.toml"), `
[[tool]]
id = "b"
name = "B"
`)
	writeFile(t, filepath.Join(dir, "tools.d", "a.toml"), `
[[tool]]
id = "a"
name = "A"
`)
	writeFile(t, filepath.Join(dir, "extra", "nested", "c.yaml"), `
tools:
  - id: c
    name: C
`)

	registry, err := Load(main)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got := strings.Join(registryIDs(registry), ",")
	if got != "main,a,b,c" {
		t.Errorf("registration order = %s, want main,a,b,c", got)
	}
}

func TestLoad_IncludeCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.toml"), `
include = ["b.toml"]
[[tool]]
id = "a"
name = "A"
`)
	writeFile(t, filepath.Join(dir, "b.toml"), `
include = ["a.toml"]
[[tool]]
id = "b"
name = "B"
`)

	registry, err := Load(filepath.Join(dir, "a.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if registry.Len() != 2 {
		t.Errorf("Len() = %d, want 2", registry.Len())
	}
}

func TestLoad_DuplicateAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one.toml"), `
[[tool]]
id = "pmd"
name = "PMD"
`)
	writeFile(t, filepath.Join(dir, "two.yaml"), `
tools:
  - id: other
    name: Other
  - id: pmd
    name: PMD again
`)

	_, err := Load(filepath.Join(dir, "one.toml"), filepath.Join(dir, "two.yaml"))
	if !errors.Is(err, tools.ErrDuplicateID) {
		t.Fatalf("Load() error = %v, want ErrDuplicateID", err)
	}
	if !strings.Contains(err.Error(), "two.yaml: tool[1]") {
		t.Errorf("error %q does not name the file and entry", err)
	}
}

func TestLoad_InvalidEntryNamesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	writeFile(t, path, `
[[tool]]
id = "a"
name = "A"

[[tool]]
id = "b"
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error")
	}
	if !strings.Contains(err.Error(), "bad.toml: tool[1]") {
		t.Errorf("error %q does not name the file and entry", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoadBuiltin(t *testing.T) {
	registry, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin() error = %v", err)
	}
	if registry.Len() == 0 {
		t.Fatal("built-in catalog is empty")
	}
	for _, id := range []string{"checkstyle", "pmd", "spotbugs", "groovy"} {
		if registry.Get(id) == nil {
			t.Errorf("built-in catalog is missing %s", id)
		}
	}
	if _, ok := tools.PatternOf(registry.Get("groovy")); ok {
		t.Error("groovy should not be a parser")
	}
}

func TestLoader_BuiltinAndFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, `
[[tool]]
id = "custom"
name = "Custom"
`)

	registry := tools.NewRegistry()
	loader := NewLoader(registry)
	if err := loader.LoadBuiltin(); err != nil {
		t.Fatal(err)
	}
	builtinCount := registry.Len()
	if err := loader.LoadFile(path); err != nil {
		t.Fatal(err)
	}
	if err := loader.LoadBuiltin(); err != nil {
		t.Fatal(err)
	}

	if registry.Len() != builtinCount+1 {
		t.Errorf("Len() = %d, want %d", registry.Len(), builtinCount+1)
	}
	files := loader.Files()
	if len(files) != 2 || files[0] != BuiltinName || files[1] != path {
		t.Errorf("Files() = %v", files)
	}
}
