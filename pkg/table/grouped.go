package table

import (
	"strings"
)

// Grouped stacks per-entity tables under an outer ticker level. Key order is
// the order tickers were added, which callers drive from the order the
// request supplied; it is never re-sorted.
type Grouped struct {
	keys   []string
	groups map[string]*Table
	single *Table
}

// NewGrouped returns an empty grouped table.
func NewGrouped() *Grouped {
	return &Grouped{groups: make(map[string]*Table)}
}

// Add appends an entity table under key. Re-adding a key replaces its table
// without changing its position.
func (g *Grouped) Add(key string, t *Table) {
	if t == nil {
		t = New()
	}
	if _, ok := g.groups[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.groups[key] = t
}

// Keys returns the outer-level labels in insertion order.
func (g *Grouped) Keys() []string {
	return append([]string(nil), g.keys...)
}

// Group returns the table stored under key.
func (g *Grouped) Group(key string) (*Table, bool) {
	t, ok := g.groups[key]
	return t, ok
}

// Columns returns the union of group columns in first-seen order. Entities
// missing a column simply have no value there; concatenation never fails on
// heterogeneous column sets.
func (g *Grouped) Columns() []string {
	var cols []string
	seen := make(map[string]struct{})
	for _, key := range g.keys {
		for _, col := range g.groups[key].Columns() {
			if _, ok := seen[col]; ok {
				continue
			}
			seen[col] = struct{}{}
			cols = append(cols, col)
		}
	}
	return cols
}

// DropEmptyRows removes rows that carry no value in any column, per entity.
func (g *Grouped) DropEmptyRows() {
	for _, key := range g.keys {
		g.groups[key].DropEmptyRows()
	}
}

// SortColumns reorders the column axis of every entity table by the supplied
// comparison.
func (g *Grouped) SortColumns(less func(a, b string) bool) {
	for _, key := range g.keys {
		g.groups[key].SortColumns(less)
	}
}

// RenameRows applies a row-label remap across every entity table.
func (g *Grouped) RenameRows(names map[string]string) {
	for _, key := range g.keys {
		g.groups[key].RenameRows(names)
	}
}

// Collapse strips the outer entity level when the request named exactly one
// ticker, so single-ticker callers get the same shape a bare normalization
// would produce. Multi-ticker requests are left unchanged.
func (g *Grouped) Collapse(requested []string) *Grouped {
	if len(requested) == 1 {
		if t, ok := g.groups[requested[0]]; ok {
			g.single = t
		}
	}
	return g
}

// Single returns the collapsed per-entity table, present only when the
// request named exactly one ticker.
func (g *Grouped) Single() (*Table, bool) {
	if g.single == nil {
		return nil, false
	}
	return g.single, true
}

// String renders each entity block in key order.
func (g *Grouped) String() string {
	if t, ok := g.Single(); ok {
		return t.String()
	}
	var b strings.Builder
	for _, key := range g.keys {
		b.WriteString(key)
		b.WriteByte('\n')
		b.WriteString(g.groups[key].String())
	}
	return b.String()
}
