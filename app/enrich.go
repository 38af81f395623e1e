package app

import (
	"healthcharts/domain/table"
	"healthcharts/internal"
	"healthcharts/internal/geo"
)

// EnrichContinent adds a continent column by looking up each row's country.
// Every lookup failure variant maps to a missing cell; enrichment is
// best-effort and never aborts the pipeline.
func EnrichContinent(t *table.Table) *table.Table {
	t.AddColumn(table.ColumnContinent, table.TypeCategorical)

	unmapped := 0
	for _, row := range t.Rows {
		countryCell := t.Cell(row, table.ColumnCountry)
		continent, err := geo.Lookup(countryCell.AsString())
		if err != nil {
			row[table.ColumnContinent] = table.NewMissingCell()
			unmapped++
			continue
		}
		row[table.ColumnContinent] = table.NewTextCell(continent.String())
	}

	if unmapped > 0 {
		internal.DefaultLogger.Warn("[GeoEnricher] %d rows left without a continent", unmapped)
	}
	return t
}
