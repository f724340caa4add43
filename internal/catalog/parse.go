package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"toolcatalog/internal/tools"
)

// Parse decodes a catalog file of the given format.
func Parse(data []byte, format Format) (*File, error) {
	var file File
	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(data), &file)
		if err != nil {
			return nil, err
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	return &file, nil
}

// Validate checks a single entry.
func (e Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("id cannot be empty")
	}
	if e.Name == "" {
		return fmt.Errorf("tool %s: name cannot be empty", e.ID)
	}
	switch e.Kind {
	case "", KindTool:
		if e.Pattern != "" {
			return fmt.Errorf("tool %s: pattern requires kind %q", e.ID, KindParser)
		}
	case KindParser:
		if err := tools.ValidatePattern(e.Pattern); err != nil {
			return fmt.Errorf("tool %s: %w", e.ID, err)
		}
	default:
		return fmt.Errorf("tool %s: kind must be %q or %q, got %q", e.ID, KindTool, KindParser, e.Kind)
	}
	return nil
}

// Descriptor converts a validated entry into a tool descriptor.
func (e Entry) Descriptor() tools.Descriptor {
	labelName := e.Label.Name
	if labelName == "" {
		labelName = e.Name
	}
	def := tools.Definition{
		Identifier: e.ID,
		Symbol:     e.Symbol,
		Title:      e.Name,
		HomePage:   e.URL,
		HelpText:   e.Help,
		Label:      tools.Labels{DisplayName: labelName, Icon: e.Label.Icon},
	}
	if e.Kind == KindParser {
		return tools.ParserDefinition{Definition: def, DefaultPattern: e.Pattern}
	}
	return def
}
