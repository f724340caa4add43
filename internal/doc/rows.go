package doc

import (
	"strconv"
	"strings"

	"toolcatalog/internal/tools"
)

// HelpMarker precedes the help text of a tool.
const HelpMarker = ":bulb:"

// Columns are the header labels of the tools table, in order.
var Columns = []string{"ID", "Pipeline Symbol", "Icon", "Name", "Default Pattern"}

// Row is one table row, either the data row of a tool or its help row.
type Row struct {
	ToolID string
	Help   bool
	Cells  []*Element
}

// Element returns the row as a <tr> element.
func (r Row) Element() *Element {
	tr := El("tr")
	for _, c := range r.Cells {
		tr.Children = append(tr.Children, c)
	}
	return tr
}

// Rows converts one descriptor into its data row and, if it has help
// text, a help row spanning all columns.
func Rows(d tools.Descriptor) []Row {
	rows := []Row{{
		ToolID: d.ID(),
		Cells: []*Element{
			El("td", Text(d.ID())),
			El("td", Text(Symbol(d))),
			El("td", ResolveIcon(d.LabelProvider().LargeIconURL(), d.Name())),
			El("td", NameCell(d)),
			El("td", Text(Pattern(d))),
		},
	}}

	if HasHelp(d) {
		help := Raw(HelpMarker + " " + strings.TrimSpace(d.Help()))
		rows = append(rows, Row{
			ToolID: d.ID(),
			Help:   true,
			Cells:  []*Element{El("td", help).With("colspan", strconv.Itoa(len(Columns)))},
		})
	}
	return rows
}

// BuildRows returns the rows of all descriptors in the given order.
func BuildRows(descs []tools.Descriptor) []Row {
	rows := make([]Row, 0, len(descs))
	for _, d := range descs {
		rows = append(rows, Rows(d)...)
	}
	return rows
}
