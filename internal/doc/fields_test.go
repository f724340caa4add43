package doc

import (
	"testing"

	"toolcatalog/internal/tools"
)

func TestSymbol(t *testing.T) {
	if got := Symbol(tools.Definition{Symbol: "checkStyle"}); got != "checkStyle()" {
		t.Errorf("Symbol() = %q, want %q", got, "checkStyle()")
	}
	if got := Symbol(tools.Definition{}); got != "()" {
		t.Errorf("Symbol() of empty symbol = %q, want %q", got, "()")
	}
}

func TestPattern(t *testing.T) {
	tests := []struct {
		name string
		desc tools.Descriptor
		want string
	}{
		{"tool without pattern capability", tools.Definition{Identifier: "owasp"}, "-"},
		{"parser with empty pattern", tools.ParserDefinition{}, "-"},
		{"parser with pattern", tools.ParserDefinition{DefaultPattern: "**/pmd.xml"}, "**/pmd.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pattern(tt.desc); got != tt.want {
				t.Errorf("Pattern() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNameCell(t *testing.T) {
	plain := Render(NameCell(tools.Definition{Title: "CheckStyle"}))
	if plain != "CheckStyle\n" {
		t.Errorf("NameCell() without url = %q, want plain text", plain)
	}

	linked := Render(NameCell(tools.Definition{Title: "CheckStyle", HomePage: "https://checkstyle.org"}))
	want := "<a href=\"https://checkstyle.org\">\n    CheckStyle\n</a>\n"
	if linked != want {
		t.Errorf("NameCell() with url = %q, want %q", linked, want)
	}
}

func TestHasHelp(t *testing.T) {
	tests := []struct {
		help string
		want bool
	}{
		{"", false},
		{"   \n\t", false},
		{"Use <code>-f xml</code>.", true},
	}

	for _, tt := range tests {
		if got := HasHelp(tools.Definition{HelpText: tt.help}); got != tt.want {
			t.Errorf("HasHelp(%q) = %v, want %v", tt.help, got, tt.want)
		}
	}
}
