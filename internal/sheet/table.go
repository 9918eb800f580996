// Package sheet reads header-first tabular data as returned by spreadsheet
// APIs and workbook readers.
package sheet

import (
	"fmt"
	"strings"
)

// Table is a header row plus data rows. Short rows are allowed; missing
// cells read as empty.
type Table struct {
	Header []string
	Rows   [][]string
	index  map[string]int
}

// NewTable splits values into header and rows. Trailing blank rows are
// dropped, blank rows in the middle are kept so positions stay meaningful.
func NewTable(values [][]string) *Table {
	t := &Table{index: make(map[string]int)}
	if len(values) == 0 {
		return t
	}
	t.Header = make([]string, len(values[0]))
	for i, h := range values[0] {
		name := strings.TrimSpace(h)
		t.Header[i] = name
		if _, dup := t.index[name]; !dup && name != "" {
			t.index[name] = i
		}
	}
	rows := values[1:]
	for len(rows) > 0 && blank(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	t.Rows = rows
	return t
}

// FromValues converts API cell values into strings.
func FromValues(values [][]interface{}) [][]string {
	out := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			if v != nil {
				cells[j] = fmt.Sprintf("%v", v)
			}
		}
		out[i] = cells
	}
	return out
}

// Column returns the index of the first of names present in the header.
func (t *Table) Column(names ...string) (int, bool) {
	for _, n := range names {
		if i, ok := t.index[n]; ok {
			return i, true
		}
	}
	return -1, false
}

// Has reports whether any of names is a header.
func (t *Table) Has(names ...string) bool {
	_, ok := t.Column(names...)
	return ok
}

// Cell returns the trimmed value of row r under the first matching header.
func (t *Table) Cell(r int, names ...string) string {
	c, ok := t.Column(names...)
	if !ok || r < 0 || r >= len(t.Rows) || c >= len(t.Rows[r]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[r][c])
}

// Raw returns row r keyed by header, untrimmed, for every named column.
// Cells missing from a short row are absent from the map.
func (t *Table) Raw(r int) map[string]string {
	out := make(map[string]string, len(t.Header))
	if r < 0 || r >= len(t.Rows) {
		return out
	}
	for name, c := range t.index {
		if c < len(t.Rows[r]) {
			out[name] = t.Rows[r][c]
		}
	}
	return out
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
