package doc

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Preamble is the fixed prose between the banner and the table.
const Preamble = `# Supported Report Formats

Jenkins' Warnings Next Generation Plugin supports the following report formats.
If your tool is supported, but has no custom icon yet, please file a pull request for the
[Warnings Next Generation Plugin](https://github.com/jenkinsci/warnings-ng-plugin/pulls).

If your tool is not yet supported you can
1. define a new Groovy based parser in the user interface
2. export the issues of your tool to the native XML format (or any other format)
3. provide a parser within a new small plugin.

If the parser is useful for
other teams as well please share it and provide pull requests for the
[Warnings Next Generation Plug-in](https://github.com/jenkinsci/warnings-ng-plugin/pulls) and
the [Analysis Parsers Library](https://github.com/jenkinsci/analysis-model/).
`

// Document is the generated reference document.
type Document struct {
	// Generator names the program in the banner.
	Generator string

	// GeneratedAt is the timestamp shown in the banner.
	GeneratedAt time.Time

	// Rows are the table rows in output order.
	Rows []Row
}

// Banner returns the machine-generated marker line.
func (d Document) Banner() string {
	return fmt.Sprintf("<!--- DO NOT EDIT - Generated by %s at %s-->", d.Generator, FormatTimestamp(d.GeneratedAt))
}

// Table returns the formatted tools table.
func (d Document) Table() *Element {
	header := El("tr")
	for _, c := range Columns {
		header.Children = append(header.Children, El("th", Text(c)))
	}

	body := El("tbody")
	for _, r := range d.Rows {
		body.Children = append(body.Children, r.Element())
	}

	return El("table", El("thead", header), body)
}

// Render returns the complete document.
func (d Document) Render() string {
	var b strings.Builder
	b.WriteString(d.Banner())
	b.WriteString("\n")
	b.WriteString(Preamble)
	b.WriteString("\n")
	b.WriteString(Render(d.Table()))
	return b.String()
}

// WriteTo writes the complete document to w.
func (d Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Render())
	return int64(n), err
}

// FormatTimestamp formats t as an ISO local date-time. Seconds are
// omitted when they and the fraction are zero, and the fraction is shown
// in groups of three digits.
func FormatTimestamp(t time.Time) string {
	nanos := t.Nanosecond()
	switch {
	case nanos == 0 && t.Second() == 0:
		return t.Format("2006-01-02T15:04")
	case nanos == 0:
		return t.Format("2006-01-02T15:04:05")
	case nanos%1_000_000 == 0:
		return t.Format("2006-01-02T15:04:05.000")
	case nanos%1_000 == 0:
		return t.Format("2006-01-02T15:04:05.000000")
	default:
		return t.Format("2006-01-02T15:04:05.000000000")
	}
}
