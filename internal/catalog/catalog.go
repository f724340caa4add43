// Package catalog loads tool descriptors from declarative catalog files.
//
// A catalog is a TOML or YAML file with a list of tools and optional
// includes:
//
//	include = ["tools.d/*.toml"]
//
//	[[tool]]
//	id = "checkstyle"
//	kind = "parser"
//	symbol = "checkStyle"
//	name = "CheckStyle"
//	url = "https://checkstyle.org/"
//	pattern = "**/checkstyle-result.xml"
//
//	[tool.label]
//	icon = "symbol-checkstyle plugin-warnings-ng"
//
// Include globs are relative to the including file. Tools are registered
// in file order, then entry order; included files follow the entries of
// the file that includes them.
package catalog

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind selects the descriptor type of a catalog entry.
type Kind string

const (
	// KindTool is a tool without a default pattern.
	KindTool Kind = "tool"

	// KindParser is a parser of report files with a default pattern.
	KindParser Kind = "parser"
)

// File is the decoded content of one catalog file.
type File struct {
	// Include lists glob patterns of further catalog files.
	Include []string `toml:"include" yaml:"include"`

	// Tools lists the tool entries of this file.
	Tools []Entry `toml:"tool" yaml:"tools"`
}

// Entry describes one tool.
type Entry struct {
	ID      string     `toml:"id" yaml:"id"`
	Kind    Kind       `toml:"kind" yaml:"kind"`
	Symbol  string     `toml:"symbol" yaml:"symbol"`
	Name    string     `toml:"name" yaml:"name"`
	URL     string     `toml:"url" yaml:"url"`
	Pattern string     `toml:"pattern" yaml:"pattern"`
	Help    string     `toml:"help" yaml:"help"`
	Label   LabelEntry `toml:"label" yaml:"label"`
}

// LabelEntry describes the label provider of a tool.
// An empty Name defaults to the tool name.
type LabelEntry struct {
	Name string `toml:"name" yaml:"name"`
	Icon string `toml:"icon" yaml:"icon"`
}

// Format is the encoding of a catalog file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// DetectFormat returns the format of path based on its extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported catalog format %q (use .toml, .yaml or .yml)", filepath.Ext(path))
	}
}
