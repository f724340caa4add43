package doc

import (
	"strings"

	"toolcatalog/internal/tools"
)

// Symbol returns the pipeline invocation of d. Tools without a symbol
// render as "()".
func Symbol(d tools.Descriptor) string {
	return d.SymbolName() + "()"
}

// Pattern returns the default pattern of d, or the placeholder when d is
// not a parser or has no pattern.
func Pattern(d tools.Descriptor) string {
	pattern, ok := tools.PatternOf(d)
	if !ok || pattern == "" {
		return Placeholder
	}
	return pattern
}

// NameCell returns the name of d, linked to its home page when it has one.
func NameCell(d tools.Descriptor) Node {
	if d.URL() == "" {
		return Text(d.Name())
	}
	return El("a", Text(d.Name())).With("href", d.URL())
}

// HasHelp reports whether d carries non-blank help text.
func HasHelp(d tools.Descriptor) bool {
	return strings.TrimSpace(d.Help()) != ""
}
