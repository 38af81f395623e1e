// Package table holds the in-memory tabular model shared by all pipeline
// stages: an ordered set of uniformly-schemed rows of typed cells.
package table

import (
	"sort"
	"strings"
)

// ColumnType is the semantic type assigned to a column by normalization
type ColumnType string

const (
	TypeCategorical ColumnType = "categorical"
	TypeInteger     ColumnType = "integer"
	TypeNumeric     ColumnType = "numeric"
	TypeText        ColumnType = "text"
)

// Row maps column labels to cells
type Row map[string]Cell

// Table is an ordered collection of rows sharing a uniform schema
type Table struct {
	Columns []string              // Ordered column labels
	Types   map[string]ColumnType // Semantic type per column
	Rows    []Row
}

// New creates an empty table with the given column labels, all typed as text
func New(columns []string) *Table {
	types := make(map[string]ColumnType, len(columns))
	for _, col := range columns {
		types[col] = TypeText
	}
	return &Table{
		Columns: columns,
		Types:   types,
	}
}

// NumRows returns the number of data rows
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// HasColumn reports whether a column label exists in the schema
func (t *Table) HasColumn(name string) bool {
	_, ok := t.Types[name]
	return ok
}

// HasColumns reports the first missing column label, if any
func (t *Table) HasColumns(names ...string) (string, bool) {
	for _, name := range names {
		if !t.HasColumn(name) {
			return name, false
		}
	}
	return "", true
}

// Cell returns the cell for a row/column pair; absent cells read as missing
func (t *Table) Cell(row Row, column string) Cell {
	if cell, ok := row[column]; ok {
		return cell
	}
	return NewMissingCell()
}

// AddColumn appends a column to the schema with the given semantic type.
// Rows without a value for it read as missing.
func (t *Table) AddColumn(name string, colType ColumnType) {
	if t.HasColumn(name) {
		t.Types[name] = colType
		return
	}
	t.Columns = append(t.Columns, name)
	t.Types[name] = colType
}

// FilterRows returns a table containing only rows matching the predicate.
// Row order is preserved; rows are shared, not copied.
func (t *Table) FilterRows(keep func(Row) bool) *Table {
	out := &Table{
		Columns: t.Columns,
		Types:   t.Types,
	}
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// DropNullRows returns a table without rows that have a missing cell in any
// of the given columns
func (t *Table) DropNullRows(columns ...string) *Table {
	return t.FilterRows(func(row Row) bool {
		for _, col := range columns {
			if t.Cell(row, col).IsMissing {
				return false
			}
		}
		return true
	})
}

// DropNonNumericRows returns a table without rows whose cell in any of the
// given columns is not numeric. Text and missing cells both disqualify a row.
func (t *Table) DropNonNumericRows(columns ...string) *Table {
	return t.FilterRows(func(row Row) bool {
		for _, col := range columns {
			if !t.Cell(row, col).IsNumeric() {
				return false
			}
		}
		return true
	})
}

// DropNonIntegerRows returns a table without rows whose cell in any of the
// given columns is not an integer
func (t *Table) DropNonIntegerRows(columns ...string) *Table {
	return t.FilterRows(func(row Row) bool {
		for _, col := range columns {
			if !t.Cell(row, col).IsInteger() {
				return false
			}
		}
		return true
	})
}

// DistinctIntegers returns the sorted distinct integer values of a column,
// skipping missing and non-integer cells
func (t *Table) DistinctIntegers(column string) []int {
	seen := make(map[int]bool)
	for _, row := range t.Rows {
		cell := t.Cell(row, column)
		if cell.IsInteger() {
			seen[int(cell.AsInt64())] = true
		}
	}
	values := make([]int, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}

// DistinctTextCount returns the number of distinct text values in a column,
// ignoring missing cells
func (t *Table) DistinctTextCount(column string) int {
	seen := make(map[string]bool)
	for _, row := range t.Rows {
		cell := t.Cell(row, column)
		if cell.IsText() {
			seen[cell.AsString()] = true
		}
	}
	return len(seen)
}

// Fingerprint returns a stable identity string for a row over the table's
// schema. Two rows with equal cells in every column share a fingerprint.
func (t *Table) Fingerprint(row Row) string {
	var b strings.Builder
	for _, col := range t.Columns {
		cell := t.Cell(row, col)
		b.WriteString(string(cell.Type))
		b.WriteByte('=')
		b.WriteString(cell.String())
		b.WriteByte('\x1f')
	}
	return b.String()
}
