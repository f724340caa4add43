package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"toolcatalog/internal/tools"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func registryIDs(r *tools.Registry) []string {
	var ids []string
	for _, d := range r.All() {
		ids = append(ids, d.ID())
	}
	return ids
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"tools.toml", FormatTOML, false},
		{"tools.YAML", FormatYAML, false},
		{"dir/tools.yml", FormatYAML, false},
		{"tools.json", "", true},
		{"tools", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DetectFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DetectFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_TOML(t *testing.T) {
	data := `
[[tool]]
id = "checkstyle"
kind = "parser"
symbol = "checkStyle"
name = "CheckStyle"
pattern = "**/checkstyle-result.xml"
[tool.label]
name = "Checkstyle"
icon = "symbol-checkstyle plugin-warnings-ng"

[[tool]]
id = "groovy"
name = "Groovy Parser"
`
	file, err := Parse([]byte(data), FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(file.Tools) != 2 {
		t.Fatalf("Parse() returned %d tools, want 2", len(file.Tools))
	}

	first := file.Tools[0]
	if first.Kind != KindParser || first.Label.Name != "Checkstyle" || first.Pattern != "**/checkstyle-result.xml" {
		t.Errorf("first entry = %+v", first)
	}
	if file.Tools[1].Kind != "" {
		t.Errorf("second entry kind = %q, want empty", file.Tools[1].Kind)
	}
}

func TestParse_TOMLUnknownKey(t *testing.T) {
	data := `
[[tool]]
id = "checkstyle"
name = "CheckStyle"
colour = "red"
`
	_, err := Parse([]byte(data), FormatTOML)
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Errorf("Parse() error = %v, want unknown key error", err)
	}
}

func TestParse_YAML(t *testing.T) {
	data := `
include:
  - more/*.yaml
tools:
  - id: eslint
    kind: parser
    symbol: esLint
    name: ESLint
    help: Use option --format checkstyle.
    label:
      icon: /plugin/warnings-ng/icons/eslint-24x24.png
`
	file, err := Parse([]byte(data), FormatYAML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(file.Include) != 1 || file.Include[0] != "more/*.yaml" {
		t.Errorf("Include = %v", file.Include)
	}
	if len(file.Tools) != 1 || file.Tools[0].Help != "Use option --format checkstyle." {
		t.Errorf("Tools = %+v", file.Tools)
	}
}

func TestParse_EmptyYAML(t *testing.T) {
	file, err := Parse(nil, FormatYAML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(file.Tools) != 0 {
		t.Errorf("Tools = %v, want none", file.Tools)
	}
}

func TestEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   Entry
		wantErr string
	}{
		{"valid tool", Entry{ID: "a", Name: "A"}, ""},
		{"valid parser", Entry{ID: "a", Name: "A", Kind: KindParser, Pattern: "**/a.xml"}, ""},
		{"parser without pattern", Entry{ID: "a", Name: "A", Kind: KindParser}, ""},
		{"missing id", Entry{Name: "A"}, "id cannot be empty"},
		{"missing name", Entry{ID: "a"}, "name cannot be empty"},
		{"pattern on tool", Entry{ID: "a", Name: "A", Pattern: "**/a.xml"}, "pattern requires kind"},
		{"unknown kind", Entry{ID: "a", Name: "A", Kind: "linter"}, "kind must be"},
		{"bad glob", Entry{ID: "a", Name: "A", Kind: KindParser, Pattern: "**/[a.xml"}, "invalid glob pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestEntry_Descriptor(t *testing.T) {
	parser := Entry{ID: "pmd", Kind: KindParser, Name: "PMD", Pattern: "**/pmd.xml"}.Descriptor()
	if pattern, ok := tools.PatternOf(parser); !ok || pattern != "**/pmd.xml" {
		t.Errorf("PatternOf(parser) = %q, %v", pattern, ok)
	}
	if parser.LabelProvider().Name() != "PMD" {
		t.Errorf("label name = %q, want tool name", parser.LabelProvider().Name())
	}

	tool := Entry{ID: "groovy", Name: "Groovy", Label: LabelEntry{Name: "Groovy Parser", Icon: "symbol-x"}}.Descriptor()
	if _, ok := tools.PatternOf(tool); ok {
		t.Error("plain tool should not carry a pattern")
	}
	if tool.LabelProvider().Name() != "Groovy Parser" || tool.LabelProvider().LargeIconURL() != "symbol-x" {
		t.Errorf("labels = %+v", tool.LabelProvider())
	}
}
