// Package table provides the in-memory tabular data model assessed by the
// check library: an ordered set of named columns of typed cell values, plus
// the CSV loading routine that builds one.
package table

import "fmt"

// Column is a named, ordered sequence of cell values.
type Column struct {
	Name   string
	Values []Value
}

// Len returns the number of cells in the column.
func (c *Column) Len() int { return len(c.Values) }

// MissingCount returns the number of missing-marker cells.
func (c *Column) MissingCount() int {
	n := 0
	for _, v := range c.Values {
		if v.IsMissing() {
			n++
		}
	}
	return n
}

// Type returns the inferred element kind of the column: the shared kind of
// all non-missing cells, KindFloat for mixed int/float columns, KindString
// for any other mix, and KindMissing for an all-missing column.
func (c *Column) Type() Kind {
	inferred := KindMissing
	for _, v := range c.Values {
		if v.IsMissing() {
			continue
		}
		switch {
		case inferred == KindMissing:
			inferred = v.Kind()
		case inferred == v.Kind():
		case (inferred == KindInt && v.Kind() == KindFloat) || (inferred == KindFloat && v.Kind() == KindInt):
			inferred = KindFloat
		default:
			return KindString
		}
	}
	return inferred
}

// Table is an ordered sequence of named columns with a uniform row count.
// It is built once by the loader and read-only afterwards.
type Table struct {
	cols  []*Column
	index map[string]int
}

// New builds a Table from columns, validating that column names are unique
// and every column has the same length.
func New(cols []*Column) (*Table, error) {
	t := &Table{index: make(map[string]int, len(cols))}
	for i, c := range cols {
		if c.Name == "" {
			return nil, fmt.Errorf("column %d has an empty name", i)
		}
		if _, exists := t.index[c.Name]; exists {
			return nil, fmt.Errorf("duplicate column name %q", c.Name)
		}
		if i > 0 && c.Len() != cols[0].Len() {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", c.Name, c.Len(), cols[0].Len())
		}
		t.index[c.Name] = i
		t.cols = append(t.cols, c)
	}
	return t, nil
}

// Column returns the named column, or false if it does not exist.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// Columns returns the columns in declaration order.
func (t *Table) Columns() []*Column { return t.cols }

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}
