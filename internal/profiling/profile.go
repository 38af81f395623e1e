// Package profiling computes per-column summary statistics for a normalized
// table. The summaries are diagnostic only; they never affect chart output.
package profiling

import (
	"healthcharts/domain/table"
	"healthcharts/internal"

	"github.com/montanaflynn/stats"
)

// ColumnSummary describes the distribution of one numeric column
type ColumnSummary struct {
	Column      string
	Count       int
	Missing     int
	Mean        float64
	Median      float64
	Min         float64
	Max         float64
	StdDev      float64
	MissingRate float64
}

// Summarize computes summary statistics for every numeric and integer column
func Summarize(t *table.Table) []ColumnSummary {
	var summaries []ColumnSummary

	for _, col := range t.Columns {
		colType := t.Types[col]
		if colType != table.TypeNumeric && colType != table.TypeInteger {
			continue
		}

		values := make([]float64, 0, t.NumRows())
		missing := 0
		for _, row := range t.Rows {
			cell := t.Cell(row, col)
			if cell.IsNumeric() {
				values = append(values, cell.AsFloat64())
			} else {
				missing++
			}
		}

		summary := ColumnSummary{
			Column:  col,
			Count:   len(values),
			Missing: missing,
		}
		if t.NumRows() > 0 {
			summary.MissingRate = float64(missing) / float64(t.NumRows())
		}

		if len(values) > 0 {
			// stats errors only on empty input, which is excluded above
			summary.Mean, _ = stats.Mean(values)
			summary.Median, _ = stats.Median(values)
			summary.Min, _ = stats.Min(values)
			summary.Max, _ = stats.Max(values)
			summary.StdDev, _ = stats.StandardDeviation(values)
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

// LogSummaries writes the column summaries through the given logger
func LogSummaries(logger *internal.Logger, summaries []ColumnSummary) {
	for _, s := range summaries {
		logger.Debug("[Profile] %s: n=%d missing=%d (%.1f%%) mean=%.3f median=%.3f min=%.3f max=%.3f sd=%.3f",
			s.Column, s.Count, s.Missing, s.MissingRate*100, s.Mean, s.Median, s.Min, s.Max, s.StdDev)
	}
}
