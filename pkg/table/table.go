// Package table implements the canonical tabular form shared by all
// fundamentals resources: a two-axis table per entity, and a grouped variant
// that stacks per-entity tables under an ordered outer ticker level.
package table

import (
	"fmt"
	"sort"
	"strings"
)

// Table is a sparse two-dimensional table with ordered, unique axis labels.
// An absent cell means "no data", which is distinct from a stored zero.
type Table struct {
	rows   []string
	cols   []string
	colSet map[string]struct{}
	cells  map[string]map[string]any
}

// New returns an empty table.
func New() *Table {
	return &Table{
		colSet: make(map[string]struct{}),
		cells:  make(map[string]map[string]any),
	}
}

// Set stores a value, appending unseen axis labels in encounter order.
// Writing the same cell twice keeps the last value.
func (t *Table) Set(row, col string, value any) {
	if _, ok := t.cells[row]; !ok {
		t.rows = append(t.rows, row)
		t.cells[row] = make(map[string]any)
	}
	if _, ok := t.colSet[col]; !ok {
		t.cols = append(t.cols, col)
		t.colSet[col] = struct{}{}
	}
	t.cells[row][col] = value
}

// Value returns the cell value and whether it is present.
func (t *Table) Value(row, col string) (any, bool) {
	cells, ok := t.cells[row]
	if !ok {
		return nil, false
	}
	v, ok := cells[col]
	return v, ok
}

// Rows returns the row labels in order.
func (t *Table) Rows() []string {
	return append([]string(nil), t.rows...)
}

// Columns returns the column labels in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// IsEmpty reports whether the table holds no cells.
func (t *Table) IsEmpty() bool {
	for _, cells := range t.cells {
		if len(cells) > 0 {
			return false
		}
	}
	return true
}

// Transpose swaps the row and column axes.
func (t *Table) Transpose() *Table {
	out := New()
	out.rows = append([]string(nil), t.cols...)
	out.cols = append([]string(nil), t.rows...)
	for _, row := range t.rows {
		out.colSet[row] = struct{}{}
	}
	for _, col := range t.cols {
		out.cells[col] = make(map[string]any)
	}
	for row, cells := range t.cells {
		for col, v := range cells {
			out.cells[col][row] = v
		}
	}
	return out
}

// RenameRows replaces row labels that have an entry in names; unmatched
// labels pass through. The operation is a pure lookup-and-replace, so
// applying it twice is the same as applying it once.
func (t *Table) RenameRows(names map[string]string) {
	if len(names) == 0 {
		return
	}
	for i, row := range t.rows {
		canonical, ok := names[row]
		if !ok || canonical == row {
			continue
		}
		t.rows[i] = canonical
		t.cells[canonical] = t.cells[row]
		delete(t.cells, row)
	}
}

// RenameColumns is the column-axis counterpart of RenameRows.
func (t *Table) RenameColumns(names map[string]string) {
	if len(names) == 0 {
		return
	}
	for i, col := range t.cols {
		canonical, ok := names[col]
		if !ok || canonical == col {
			continue
		}
		t.cols[i] = canonical
		delete(t.colSet, col)
		t.colSet[canonical] = struct{}{}
		for _, cells := range t.cells {
			if v, present := cells[col]; present {
				cells[canonical] = v
				delete(cells, col)
			}
		}
	}
}

// SortRows reorders the row axis by the supplied comparison.
func (t *Table) SortRows(less func(a, b string) bool) {
	sort.SliceStable(t.rows, func(i, j int) bool { return less(t.rows[i], t.rows[j]) })
}

// SortColumns reorders the column axis by the supplied comparison.
func (t *Table) SortColumns(less func(a, b string) bool) {
	sort.SliceStable(t.cols, func(i, j int) bool { return less(t.cols[i], t.cols[j]) })
}

// DropEmptyRows removes rows that have no value in any column.
func (t *Table) DropEmptyRows() {
	kept := t.rows[:0]
	for _, row := range t.rows {
		if len(t.cells[row]) == 0 {
			delete(t.cells, row)
			continue
		}
		kept = append(kept, row)
	}
	t.rows = kept
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	out := New()
	out.rows = append([]string(nil), t.rows...)
	out.cols = append([]string(nil), t.cols...)
	for _, col := range t.cols {
		out.colSet[col] = struct{}{}
	}
	for row, cells := range t.cells {
		copied := make(map[string]any, len(cells))
		for col, v := range cells {
			copied[col] = v
		}
		out.cells[row] = copied
	}
	return out
}

// Equal reports structural equality: same axis labels in the same order and
// the same cell values.
func (t *Table) Equal(o *Table) bool {
	if o == nil {
		return false
	}
	if len(t.rows) != len(o.rows) || len(t.cols) != len(o.cols) {
		return false
	}
	for i := range t.rows {
		if t.rows[i] != o.rows[i] {
			return false
		}
	}
	for i := range t.cols {
		if t.cols[i] != o.cols[i] {
			return false
		}
	}
	for _, row := range t.rows {
		for _, col := range t.cols {
			a, okA := t.Value(row, col)
			b, okB := o.Value(row, col)
			if okA != okB || (okA && a != b) {
				return false
			}
		}
	}
	return true
}

// String renders a plain text view with rows down and columns across.
func (t *Table) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.cols, "\t"))
	b.WriteByte('\n')
	for _, row := range t.rows {
		b.WriteString(row)
		for _, col := range t.cols {
			b.WriteByte('\t')
			if v, ok := t.Value(row, col); ok {
				fmt.Fprintf(&b, "%v", v)
			} else {
				b.WriteByte('-')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
