package doc

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"toolcatalog/internal/tools"
)

type keyed struct {
	key  string
	desc tools.Descriptor
}

// Sort returns the descriptors ordered by their label name, lower-cased
// with a fixed English locale so the order does not depend on the
// environment. Equal keys keep their input order. The input slice is not
// modified.
func Sort(descs []tools.Descriptor) []tools.Descriptor {
	fold := cases.Lower(language.English)

	entries := make([]keyed, len(descs))
	for i, d := range descs {
		entries[i] = keyed{key: fold.String(d.LabelProvider().Name()), desc: d}
	}
	slices.SortStableFunc(entries, func(a, b keyed) int {
		return strings.Compare(a.key, b.key)
	})

	sorted := make([]tools.Descriptor, len(entries))
	for i, e := range entries {
		sorted[i] = e.desc
	}
	return sorted
}
