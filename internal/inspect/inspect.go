// Package inspect reads a generated tools document back into structured
// entries, the way downstream consumers scrape it by its column layout.
package inspect

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"toolcatalog/internal/doc"
)

var (
	// ErrNoTable is returned when the document contains no table.
	ErrNoTable = errors.New("no table found")

	// ErrColumnContract is returned when the header does not match the
	// expected column labels.
	ErrColumnContract = errors.New("table header does not match column contract")
)

// Entry is one tool scraped from the table.
type Entry struct {
	ID      string
	Symbol  string
	Icon    string // image source, empty for the placeholder
	Name    string
	Link    string
	Pattern string
	Help    string // inner markup of the help row without the marker
}

// Table is the scraped tools table.
type Table struct {
	Header  []string
	Entries []Entry
}

// IDs returns the entry ids in document order.
func (t *Table) IDs() []string {
	ids := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		ids[i] = e.ID
	}
	return ids
}

// HelpRows returns the number of entries with help text.
func (t *Table) HelpRows() int {
	count := 0
	for _, e := range t.Entries {
		if e.Help != "" {
			count++
		}
	}
	return count
}

// Verify checks the header against the column contract.
func (t *Table) Verify() error {
	if !slices.Equal(t.Header, doc.Columns) {
		return fmt.Errorf("%w: got %q, want %q", ErrColumnContract, t.Header, doc.Columns)
	}
	return nil
}

// ParseFile parses the document at path.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Parse reads the first table of a document.
func Parse(r io.Reader) (*Table, error) {
	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	selection := document.Find("table").First()
	if selection.Length() == 0 {
		return nil, ErrNoTable
	}

	table := &Table{}
	selection.Find("thead th").Each(func(_ int, th *goquery.Selection) {
		table.Header = append(table.Header, cellText(th))
	})

	rows := selection.Find("tbody tr")
	for i := range rows.Nodes {
		cells := rows.Eq(i).ChildrenFiltered("td")

		if _, isHelp := cells.First().Attr("colspan"); isHelp && cells.Length() == 1 {
			if len(table.Entries) == 0 {
				return nil, fmt.Errorf("row %d: help row without a preceding tool row", i+1)
			}
			table.Entries[len(table.Entries)-1].Help = helpText(cells.First())
			continue
		}

		if cells.Length() != len(doc.Columns) {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", i+1, len(doc.Columns), cells.Length())
		}
		table.Entries = append(table.Entries, Entry{
			ID:      cellText(cells.Eq(0)),
			Symbol:  cellText(cells.Eq(1)),
			Icon:    cells.Eq(2).Find("img").AttrOr("src", ""),
			Name:    cellText(cells.Eq(3)),
			Link:    cells.Eq(3).Find("a").AttrOr("href", ""),
			Pattern: cellText(cells.Eq(4)),
		})
	}
	return table, nil
}

func cellText(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

func helpText(s *goquery.Selection) string {
	inner, err := s.Html()
	if err != nil {
		inner = s.Text()
	}
	inner = strings.TrimSpace(inner)
	inner = strings.TrimPrefix(inner, doc.HelpMarker)
	return strings.TrimSpace(inner)
}
