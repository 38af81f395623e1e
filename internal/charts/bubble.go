package charts

import (
	"fmt"

	"healthcharts/domain/table"
	"healthcharts/internal"
	"healthcharts/internal/errors"
)

// yearParam is the parameter name driving the year slider
const yearParam = "year_selection"

// BubbleBuilder produces the GDP vs life-expectancy bubble chart with an
// interactive year slider
type BubbleBuilder struct {
	logger *internal.Logger
}

// NewBubbleBuilder creates a bubble chart builder
func NewBubbleBuilder() *BubbleBuilder {
	return &BubbleBuilder{logger: internal.DefaultLogger}
}

// Build produces the chart specification. Rows without a country or
// continent, without an integer year, or whose GDP, life-expectancy, or
// population cell is anything but numeric, are dropped. A missing required
// column is fatal, as is an empty table after dropping.
func (b *BubbleBuilder) Build(t *table.Table) (*Spec, error) {
	required := []string{
		table.ColumnGDPPerCapita,
		table.ColumnLifeExpectancy,
		table.ColumnPopulation,
		table.ColumnYear,
		table.ColumnContinent,
		table.ColumnCountry,
	}
	if missing, ok := t.HasColumns(required...); !ok {
		return nil, errors.MissingColumn(missing)
	}

	view := t.DropNullRows(table.ColumnCountry, table.ColumnContinent).
		DropNonNumericRows(table.ColumnGDPPerCapita, table.ColumnLifeExpectancy, table.ColumnPopulation).
		DropNonIntegerRows(table.ColumnYear)
	if view.NumRows() == 0 {
		return nil, errors.EmptyInput("bubble")
	}

	years := view.DistinctIntegers(table.ColumnYear)
	if len(years) == 0 {
		return nil, errors.EmptyInput("bubble")
	}
	minYear, maxYear := years[0], years[len(years)-1]
	b.logger.Info("[BubbleChart] year range: %d to %d", minYear, maxYear)
	b.logger.Info("[BubbleChart] number of countries: %d", view.DistinctTextCount(table.ColumnCountry))

	values := make([]map[string]interface{}, 0, view.NumRows())
	for _, row := range view.Rows {
		values = append(values, map[string]interface{}{
			table.ColumnCountry:        view.Cell(row, table.ColumnCountry).AsString(),
			table.ColumnContinent:      view.Cell(row, table.ColumnContinent).AsString(),
			table.ColumnYear:           view.Cell(row, table.ColumnYear).AsInt64(),
			table.ColumnGDPPerCapita:   view.Cell(row, table.ColumnGDPPerCapita).AsFloat64(),
			table.ColumnLifeExpectancy: view.Cell(row, table.ColumnLifeExpectancy).AsFloat64(),
			table.ColumnPopulation:     view.Cell(row, table.ColumnPopulation).AsFloat64(),
		})
	}

	return &Spec{
		Schema: SchemaURL,
		Title: &Title{
			Text:             "The Wealth and Health of Nations",
			Subtitle:         fmt.Sprintf("GDP per Capita vs Life Expectancy (%d-%d)", minYear, maxYear),
			FontSize:         20,
			SubtitleFontSize: 14,
		},
		Width:  800,
		Height: 500,
		Data:   &Data{Values: values},
		Mark:   &Mark{Type: "circle", Opacity: 0.7, Stroke: "black", StrokeWidth: 0.5},
		Encoding: &Encoding{
			X: &FieldDef{
				Field: table.ColumnGDPPerCapita,
				Type:  "quantitative",
				Scale: &Scale{Type: "log", Domain: []float64{100, 100000}},
				Axis:  &Axis{Title: "GDP per Capita ($, log scale)", Format: "$,.0f"},
			},
			Y: &FieldDef{
				Field: table.ColumnLifeExpectancy,
				Type:  "quantitative",
				Scale: &Scale{Domain: []float64{40, 90}},
				Axis:  &Axis{Title: "Life Expectancy (years)"},
			},
			Size: &FieldDef{
				Field:  table.ColumnPopulation,
				Type:   "quantitative",
				Scale:  &Scale{Type: "sqrt", Range: []float64{10, 2000}},
				Legend: &Legend{Title: "Population", Format: ".2s"},
			},
			Color: &FieldDef{
				Field:  table.ColumnContinent,
				Type:   "nominal",
				Scale:  &Scale{Scheme: "category10"},
				Legend: &Legend{Title: "Continent"},
			},
			Tooltip: []FieldDef{
				{Field: table.ColumnCountry, Type: "nominal", Title: "Country"},
				{Field: table.ColumnYear, Type: "ordinal", Title: "Year"},
				{Field: table.ColumnGDPPerCapita, Type: "quantitative", Title: "GDP per Capita", Format: "$,.0f"},
				{Field: table.ColumnLifeExpectancy, Type: "quantitative", Title: "Life Expectancy", Format: ".1f"},
				{Field: table.ColumnPopulation, Type: "quantitative", Title: "Population", Format: ",.0f"},
				{Field: table.ColumnContinent, Type: "nominal", Title: "Continent"},
			},
		},
		Params: []Param{
			{
				Name:   yearParam,
				Select: PointSelect{Type: "point", Fields: []string{table.ColumnYear}},
				Bind: BindRange{
					Input: "range",
					Min:   float64(minYear),
					Max:   float64(maxYear),
					Step:  1,
					Name:  "Year: ",
				},
				Value: []map[string]interface{}{{table.ColumnYear: minYear}},
			},
			panZoomParam(),
		},
		Transform: []Transform{
			{Filter: ParamRef{Param: yearParam}},
		},
	}, nil
}
