package models

import "strings"

// Table is an untyped tabular input: named columns over ordered rows.
// It is the only shape the normalization core accepts; file codecs
// produce it and discard their own representations.
type Table struct {
	// Columns holds the header names in file order.
	Columns []string
	// Rows holds the cell values, one slice per row, indexed the same
	// way as Columns.
	Rows [][]Value
}

// NewTable creates an empty table with the given header.
func NewTable(columns ...string) *Table {
	return &Table{Columns: columns}
}

// AppendRow adds a row, padding short rows with missing cells and
// dropping cells past the header width.
func (t *Table) AppendRow(cells ...Value) {
	row := make([]Value, len(t.Columns))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = MissingValue
		}
	}
	t.Rows = append(t.Rows, row)
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Cell returns the value at the given row and column index.
func (t *Table) Cell(row, col int) Value {
	return t.Rows[row][col]
}

// ColumnIndex returns the index of the named column, matched
// case-insensitively, or -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if strings.EqualFold(c, name) {
			return i
		}
	}
	return -1
}

// FirstSample returns the first non-missing value in a column, or
// MissingValue when the column is empty or all missing.
func (t *Table) FirstSample(col int) Value {
	for _, row := range t.Rows {
		if !row[col].IsMissing() {
			return row[col]
		}
	}
	return MissingValue
}
