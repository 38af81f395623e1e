package app

import (
	"healthcharts/domain/table"
)

// FilterBothSexes keeps only rows representing the aggregate statistic,
// whose gender label matches the sentinel exactly. Rows with a missing or
// differing gender are excluded.
func FilterBothSexes(t *table.Table) *table.Table {
	return t.FilterRows(func(row table.Row) bool {
		cell := t.Cell(row, table.ColumnGender)
		return cell.IsText() && cell.AsString() == table.GenderBothSexes
	})
}
