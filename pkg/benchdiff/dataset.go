// Package benchdiff compares two snapshots of benchmark results and
// reports, per benchmark case and metric, how each value moved.
//
// The package is the comparison core only: it derives a stable identity
// for each benchmark case across two heterogeneous tabular inputs,
// classifies metric columns by semantic kind, normalizes unit-annotated
// cells into canonical base units, and computes percentage deltas with a
// pass/fail regression verdict. Loading files and rendering reports are
// handled by the loader and render packages.
package benchdiff

import (
	"regexp"
	"strings"
)

// Row maps a column name (original spelling) to its raw cell value.
type Row map[string]string

// Dataset is an ordered sequence of rows plus the ordered list of
// distinct column names as presented in the source. A Dataset is loaded
// once by a loader and must not be mutated afterwards.
//
// Column lookups are case- and whitespace-insensitive, but the original
// header spelling is always preserved and returned.
type Dataset struct {
	// Headers lists the column names in source order, original spelling.
	Headers []string

	// Rows holds the data rows in source order.
	Rows []Row

	// index maps normalized header names to their original spelling.
	index map[string]string
}

// NewDataset builds a Dataset from ordered headers and rows.
func NewDataset(headers []string, rows []Row) *Dataset {
	d := &Dataset{Headers: headers, Rows: rows}
	d.index = make(map[string]string, len(headers))
	for _, h := range headers {
		nk := NormalizeName(h)
		if _, ok := d.index[nk]; !ok {
			d.index[nk] = h
		}
	}
	return d
}

// Lookup resolves a column name case- and whitespace-insensitively,
// returning the original header spelling.
func (d *Dataset) Lookup(name string) (string, bool) {
	h, ok := d.index[NormalizeName(name)]
	return h, ok
}

// Has reports whether the dataset has a column matching name.
func (d *Dataset) Has(name string) bool {
	_, ok := d.Lookup(name)
	return ok
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeName canonicalizes a column name for comparison: leading and
// trailing whitespace is trimmed, interior whitespace runs collapse to a
// single space, and the result is lower-cased. "Alloc  B/op " and
// "alloc b/op" normalize identically.
func NormalizeName(s string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " "))
}

// CaseKey builds the composite identity string for one row: column=value
// pairs in keyCols order, joined by " | ". Two rows with the same CaseKey
// are the same benchmark case across datasets. Keys are not guaranteed
// globally unique when the key column set is under-specified.
func CaseKey(row Row, keyCols []string) string {
	parts := make([]string, len(keyCols))
	for i, c := range keyCols {
		parts[i] = c + "=" + row[c]
	}
	return strings.Join(parts, " | ")
}
