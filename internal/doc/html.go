package doc

import (
	"html"
	"strings"
)

const indentUnit = "    "

// voidElements are rendered without a closing tag.
var voidElements = map[string]bool{
	"img": true,
	"br":  true,
	"hr":  true,
}

// Node is a piece of markup that renders itself on its own lines.
type Node interface {
	render(b *strings.Builder, depth int)
}

// Attr is a single element attribute.
type Attr struct {
	Key   string
	Value string
}

// Element is an HTML element with ordered attributes and children.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

// Text is escaped character data.
type Text string

// Raw is markup emitted verbatim.
type Raw string

// El creates an element with the given children.
func El(tag string, children ...Node) *Element {
	return &Element{Tag: tag, Children: children}
}

// With appends an attribute and returns the element.
func (e *Element) With(key, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
	return e
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Element) render(b *strings.Builder, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(e.Tag)
	for _, a := range e.Attrs {
		b.WriteString(" ")
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Value))
		b.WriteString(`"`)
	}
	b.WriteString(">")

	if voidElements[e.Tag] {
		b.WriteString("\n")
		return
	}
	if len(e.Children) == 0 {
		b.WriteString("</" + e.Tag + ">\n")
		return
	}

	b.WriteString("\n")
	for _, child := range e.Children {
		child.render(b, depth+1)
	}
	b.WriteString(indent)
	b.WriteString("</" + e.Tag + ">\n")
}

func (t Text) render(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteString(html.EscapeString(string(t)))
	b.WriteString("\n")
}

func (r Raw) render(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteString(string(r))
	b.WriteString("\n")
}

// Render returns the formatted markup of n.
func Render(n Node) string {
	var b strings.Builder
	n.render(&b, 0)
	return b.String()
}
