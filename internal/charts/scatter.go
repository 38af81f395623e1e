package charts

import (
	"healthcharts/domain/table"
	"healthcharts/internal"
	"healthcharts/internal/errors"
)

// DefaultLoessBandwidth is the trend-curve smoothing fraction used when no
// bandwidth is configured
const DefaultLoessBandwidth = 0.3

// ScatterBuilder produces the diet-composition vs life-expectancy scatter
// plot with a smoothed trend line
type ScatterBuilder struct {
	bandwidth float64
	logger    *internal.Logger
}

// NewScatterBuilder creates a scatter builder with the given LOESS bandwidth
func NewScatterBuilder(bandwidth float64) *ScatterBuilder {
	if bandwidth <= 0 || bandwidth > 1 {
		bandwidth = DefaultLoessBandwidth
	}
	return &ScatterBuilder{bandwidth: bandwidth, logger: internal.DefaultLogger}
}

// Build produces the layered chart specification. Rows without a country or
// continent, or whose diet or life-expectancy cell is anything but numeric,
// are dropped. A missing required column is fatal; so is an empty table after
// dropping.
func (b *ScatterBuilder) Build(t *table.Table) (*Spec, error) {
	required := []string{
		table.ColumnDietFruitVeg,
		table.ColumnLifeExpectancy,
		table.ColumnCountry,
		table.ColumnContinent,
	}
	if missing, ok := t.HasColumns(required...); !ok {
		return nil, errors.MissingColumn(missing)
	}

	view := t.DropNullRows(table.ColumnCountry, table.ColumnContinent).
		DropNonNumericRows(table.ColumnDietFruitVeg, table.ColumnLifeExpectancy)
	if view.NumRows() == 0 {
		return nil, errors.EmptyInput("scatter")
	}
	b.logger.Info("[ScatterChart] building from %d rows", view.NumRows())

	values := make([]map[string]interface{}, 0, view.NumRows())
	dietVals := make([]float64, 0, view.NumRows())
	lifeVals := make([]float64, 0, view.NumRows())
	for _, row := range view.Rows {
		diet := view.Cell(row, table.ColumnDietFruitVeg).AsFloat64()
		life := view.Cell(row, table.ColumnLifeExpectancy).AsFloat64()
		dietVals = append(dietVals, diet)
		lifeVals = append(lifeVals, life)
		values = append(values, map[string]interface{}{
			table.ColumnCountry:        view.Cell(row, table.ColumnCountry).AsString(),
			table.ColumnContinent:      view.Cell(row, table.ColumnContinent).AsString(),
			table.ColumnDietFruitVeg:   diet,
			table.ColumnLifeExpectancy: life,
		})
	}

	points := Spec{
		Data: &Data{Values: values},
		Mark: &Mark{Type: "circle", Size: 60, Opacity: 0.7},
		Encoding: &Encoding{
			X: &FieldDef{
				Field: table.ColumnDietFruitVeg,
				Type:  "quantitative",
				Title: "Diet Composition - Fruit and Vegetables (kcal/person/day)",
			},
			Y: &FieldDef{
				Field: table.ColumnLifeExpectancy,
				Type:  "quantitative",
				Title: "Life Expectancy (years)",
			},
			Color: &FieldDef{
				Field: table.ColumnContinent,
				Type:  "nominal",
				Title: "Continent",
				Scale: &Scale{Scheme: "category10"},
			},
			Tooltip: []FieldDef{
				{Field: table.ColumnCountry, Type: "nominal", Title: "Country"},
				{Field: table.ColumnDietFruitVeg, Type: "quantitative", Title: "Fruit & Vegetable %", Format: ".2f"},
				{Field: table.ColumnLifeExpectancy, Type: "quantitative", Title: "Life Expectancy", Format: ".2f"},
				{Field: table.ColumnContinent, Type: "nominal", Title: "Continent"},
			},
		},
		Params: []Param{panZoomParam()},
	}

	trend := b.trendLayer(dietVals, lifeVals)

	return &Spec{
		Schema: SchemaURL,
		Title: &Title{
			Text: "Relationship between Fruit & Vegetable Composition and Life Expectancy by Continent",
		},
		Width:  700,
		Height: 500,
		Layer:  []Spec{points, trend},
	}, nil
}

// trendLayer precomputes the locally-weighted regression curve and renders it
// as a single continuous line drawn over the points
func (b *ScatterBuilder) trendLayer(xs, ys []float64) Spec {
	curve := Loess(xs, ys, b.bandwidth)
	values := make([]map[string]interface{}, len(curve))
	for i, p := range curve {
		values[i] = map[string]interface{}{
			table.ColumnDietFruitVeg:   p.X,
			table.ColumnLifeExpectancy: p.Y,
		}
	}

	return Spec{
		Data: &Data{Values: values},
		Mark: &Mark{Type: "line", Color: "black", StrokeWidth: 3, Opacity: 0.8},
		Encoding: &Encoding{
			X: &FieldDef{Field: table.ColumnDietFruitVeg, Type: "quantitative"},
			Y: &FieldDef{Field: table.ColumnLifeExpectancy, Type: "quantitative"},
		},
	}
}
