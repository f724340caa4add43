// Package tools defines the tool descriptors catalogued in the generated
// document. Each descriptor exposes its identity, display metadata and a
// label provider; parsers additionally expose a default file pattern.
package tools

// LabelProvider supplies the canonical display name and icon of a tool.
type LabelProvider interface {
	// Name returns the display name used to order tools.
	Name() string

	// LargeIconURL returns the icon reference. It is either empty, a
	// named symbol ("symbol-<name> plugin-<pack>") or a concrete URL.
	LargeIconURL() string
}

// Descriptor is the read-only metadata record of one tool.
type Descriptor interface {
	// ID returns the unique identifier of the tool.
	ID() string

	// SymbolName returns the pipeline symbol, possibly empty.
	SymbolName() string

	// Name returns the human readable name of the tool.
	Name() string

	// URL returns the home page of the tool, possibly empty.
	URL() string

	// Help returns an HTML fragment with usage hints, possibly empty.
	Help() string

	// LabelProvider returns the label provider of the tool.
	LabelProvider() LabelProvider
}

// PatternProvider extends Descriptor with a default file pattern.
// Only parsers that read report files implement it.
type PatternProvider interface {
	Descriptor

	// Pattern returns the default Ant-style pattern of report files,
	// possibly empty.
	Pattern() string
}

// PatternOf returns the default pattern of d and whether d carries one.
func PatternOf(d Descriptor) (string, bool) {
	p, ok := d.(PatternProvider)
	if !ok {
		return "", false
	}
	return p.Pattern(), true
}

// Labels is a static LabelProvider.
type Labels struct {
	DisplayName string
	Icon        string
}

func (l Labels) Name() string {
	return l.DisplayName
}

func (l Labels) LargeIconURL() string {
	return l.Icon
}

// Definition is a static Descriptor of a tool without a default pattern.
type Definition struct {
	Identifier string
	Symbol     string
	Title      string
	HomePage   string
	HelpText   string
	Label      Labels
}

func (d Definition) ID() string {
	return d.Identifier
}

func (d Definition) SymbolName() string {
	return d.Symbol
}

func (d Definition) Name() string {
	return d.Title
}

func (d Definition) URL() string {
	return d.HomePage
}

func (d Definition) Help() string {
	return d.HelpText
}

func (d Definition) LabelProvider() LabelProvider {
	return d.Label
}

// ParserDefinition is a static Descriptor of a parser that reads report
// files matching DefaultPattern.
type ParserDefinition struct {
	Definition
	DefaultPattern string
}

func (p ParserDefinition) Pattern() string {
	return p.DefaultPattern
}
