// Package normalizer cleans a freshly loaded table: it lowercases column
// labels, coerces column semantic types, and removes exact-duplicate rows.
package normalizer

import (
	"strings"

	"healthcharts/domain/table"
	"healthcharts/internal"
)

// Normalizer cleans and types a raw table
type Normalizer struct {
	logger *internal.Logger
}

// New creates a normalizer with the default logger
func New() *Normalizer {
	return &Normalizer{logger: internal.DefaultLogger}
}

// Normalize returns a cleaned table:
//   - column labels lowercased and trimmed (collisions resolve last-write-wins)
//   - country/gender typed categorical, year coerced to integer
//   - remaining text columns attempted as numeric per cell; failures keep
//     their original text, so partially numeric columns stay mixed
//   - exact-duplicate rows removed, first occurrence kept, order preserved
//
// Normalizing an already-normalized table yields an identical table.
func (n *Normalizer) Normalize(t *table.Table) *table.Table {
	lowered := n.lowercaseColumns(t)
	coerced := n.coerceTypes(lowered)
	deduped := n.dropDuplicates(coerced)

	n.logger.Debug("[Normalizer] %d columns, %d rows (%d duplicates removed)",
		len(deduped.Columns), deduped.NumRows(), coerced.NumRows()-deduped.NumRows())
	return deduped
}

// lowercaseColumns rewrites every column label in lowercase. When two
// distinct labels collapse to the same lowercase label the right-most column
// wins, matching the documented last-write-wins policy.
func (n *Normalizer) lowercaseColumns(t *table.Table) *table.Table {
	columns := make([]string, 0, len(t.Columns))
	seen := make(map[string]bool, len(t.Columns))
	for _, col := range t.Columns {
		lowered := strings.ToLower(strings.TrimSpace(col))
		if seen[lowered] {
			n.logger.Warn("[Normalizer] column label collision after lowercasing: %q", lowered)
			continue
		}
		seen[lowered] = true
		columns = append(columns, lowered)
	}

	out := table.New(columns)
	for _, row := range t.Rows {
		newRow := make(table.Row, len(columns))
		// Iterate original order so later columns overwrite on collision
		for _, col := range t.Columns {
			lowered := strings.ToLower(strings.TrimSpace(col))
			if cell, ok := row[col]; ok {
				newRow[lowered] = cell
			}
		}
		out.Rows = append(out.Rows, newRow)
	}
	return out
}

// coerceTypes assigns semantic column types and converts cells in place
func (n *Normalizer) coerceTypes(t *table.Table) *table.Table {
	for _, col := range t.Columns {
		switch col {
		case table.ColumnCountry, table.ColumnGender:
			t.Types[col] = table.TypeCategorical
		case table.ColumnYear:
			t.Types[col] = table.TypeInteger
			for _, row := range t.Rows {
				row[col] = coerceIntegerCell(t.Cell(row, col))
			}
		default:
			t.Types[col] = n.coerceNumericColumn(t, col)
		}
	}
	return t
}

// coerceNumericColumn attempts numeric coercion per cell and reports the
// resulting semantic type: numeric when every surviving cell parsed, text
// when any cell kept its original text (mixed columns are accepted as-is)
func (n *Normalizer) coerceNumericColumn(t *table.Table, col string) table.ColumnType {
	sawText := false
	sawNumeric := false
	for _, row := range t.Rows {
		cell := coerceNumericCell(t.Cell(row, col))
		row[col] = cell
		if cell.IsText() {
			sawText = true
		}
		if cell.IsNumeric() {
			sawNumeric = true
		}
	}
	if sawNumeric && !sawText {
		return table.TypeNumeric
	}
	return table.TypeText
}

// dropDuplicates removes exact-duplicate rows, keeping the first occurrence.
// Runs after coercion so repeated normalization cannot uncover new duplicates.
func (n *Normalizer) dropDuplicates(t *table.Table) *table.Table {
	seen := make(map[string]bool, len(t.Rows))
	return t.FilterRows(func(row table.Row) bool {
		fp := t.Fingerprint(row)
		if seen[fp] {
			return false
		}
		seen[fp] = true
		return true
	})
}
