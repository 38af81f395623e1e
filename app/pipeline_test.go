package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"healthcharts/adapters/tabular"
	"healthcharts/domain/table"
	"healthcharts/internal/charts"
	"healthcharts/internal/config"
	"healthcharts/internal/errors"
	"healthcharts/internal/normalizer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Country,Gender,Year,GDP per Capita,Life Expectancy,Total Population,Diet Composition Fruit and Vegetables
France,Both sexes,2010,35000,81.5,65000000,120
France,Both sexes,2010,35000,81.5,65000000,120
Japan,Both sexes,2010,42000,83.0,128000000,140
Japan,Male,2010,42000,80.1,128000000,140
Neverland,Both sexes,2010,9999,70.0,1000,90
Kenya,Both sexes,2011,1800,61.0,41000000,80
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "health.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

// loadCleaned runs the pipeline stages up to and including the gender filter
func loadCleaned(t *testing.T, path string) *table.Table {
	t.Helper()
	tbl, err := tabular.NewDataReader(path).Load()
	require.NoError(t, err)
	tbl = normalizer.New().Normalize(tbl)
	tbl = EnrichContinent(tbl)
	return FilterBothSexes(tbl)
}

func TestEnrichContinentMapsFailuresToNull(t *testing.T) {
	tbl := loadCleaned(t, writeSample(t))

	byCountry := make(map[string]table.Cell)
	for _, row := range tbl.Rows {
		byCountry[tbl.Cell(row, table.ColumnCountry).AsString()] = tbl.Cell(row, table.ColumnContinent)
	}

	assert.Equal(t, "Europe", byCountry["France"].AsString())
	assert.Equal(t, "Asia", byCountry["Japan"].AsString())
	assert.Equal(t, "Africa", byCountry["Kenya"].AsString())
	assert.True(t, byCountry["Neverland"].IsMissing, "unknown country should enrich to null")
}

func TestFilterExcludesGenderSplitRows(t *testing.T) {
	tbl := loadCleaned(t, writeSample(t))

	for _, row := range tbl.Rows {
		assert.Equal(t, table.GenderBothSexes, tbl.Cell(row, table.ColumnGender).AsString())
	}
	// France duplicate removed, Male row filtered: France, Japan, Neverland, Kenya
	assert.Equal(t, 4, tbl.NumRows())
}

func TestFranceScenarioEndToEnd(t *testing.T) {
	tbl := loadCleaned(t, writeSample(t))

	var france table.Row
	for _, row := range tbl.Rows {
		if tbl.Cell(row, table.ColumnCountry).AsString() == "France" {
			france = row
		}
	}
	require.NotNil(t, france)

	year := tbl.Cell(france, table.ColumnYear)
	assert.True(t, year.IsInteger())
	assert.EqualValues(t, 2010, year.AsInt64())
	assert.InDelta(t, 35000.0, tbl.Cell(france, table.ColumnGDPPerCapita).AsFloat64(), 1e-9)
	assert.Equal(t, "Europe", tbl.Cell(france, table.ColumnContinent).AsString())

	spec, err := charts.NewBubbleBuilder().Build(tbl)
	require.NoError(t, err)

	// Neverland has no continent, so three rows reach the bubble chart
	require.NotNil(t, spec.Data)
	assert.Len(t, spec.Data.Values, 3)

	var franceRow map[string]interface{}
	for _, v := range spec.Data.Values {
		if v[table.ColumnCountry] == "France" {
			franceRow = v
		}
	}
	require.NotNil(t, franceRow, "France should be present in the bubble data")
	assert.EqualValues(t, 2010, franceRow[table.ColumnYear])

	// Slider default (min year) covers the France row's year
	bind := spec.Params[0].Bind.(charts.BindRange)
	assert.LessOrEqual(t, bind.Min, 2010.0)
}

func TestMaleRowExcludedFromBothCharts(t *testing.T) {
	tbl := loadCleaned(t, writeSample(t))

	scatter, err := charts.NewScatterBuilder(0.3).Build(tbl)
	require.NoError(t, err)
	for _, v := range scatter.Layer[0].Data.Values {
		life := v[table.ColumnLifeExpectancy].(float64)
		assert.NotEqual(t, 80.1, life, "the Male row's value must not appear")
	}

	bubble, err := charts.NewBubbleBuilder().Build(tbl)
	require.NoError(t, err)
	for _, v := range bubble.Data.Values {
		assert.NotEqual(t, 80.1, v[table.ColumnLifeExpectancy])
	}
}

func TestPipelineRunWritesBothDocuments(t *testing.T) {
	outDir := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathConfig{
			InputFile:   writeSample(t),
			ScatterFile: filepath.Join(outDir, "scatter.html"),
			BubbleFile:  filepath.Join(outDir, "bubble.html"),
		},
		Charts: config.ChartConfig{LoessBandwidth: 0.3},
		Render: config.RenderConfig{MaxRows: 0},
	}

	require.NoError(t, New(cfg).Run(context.Background()))

	for _, path := range []string{cfg.Paths.ScatterFile, cfg.Paths.BubbleFile} {
		content, err := os.ReadFile(path)
		require.NoError(t, err, "expected %s to be written", path)
		assert.True(t, strings.Contains(string(content), "vega-embed"))
	}
}

func TestPipelineRunMissingInputFails(t *testing.T) {
	outDir := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathConfig{
			InputFile:   filepath.Join(outDir, "absent.csv"),
			ScatterFile: filepath.Join(outDir, "scatter.html"),
			BubbleFile:  filepath.Join(outDir, "bubble.html"),
		},
		Charts: config.ChartConfig{LoessBandwidth: 0.3},
	}

	err := New(cfg).Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeLoadError, errors.GetCode(err))
}

func TestPipelineRunMissingColumnFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.csv")
	// No diet composition column: the scatter chart cannot be built
	csv := "Country,Gender,Year,GDP per Capita,Life Expectancy,Total Population\n" +
		"France,Both sexes,2010,35000,81.5,65000000\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	cfg := &config.Config{
		Paths: config.PathConfig{
			InputFile:   path,
			ScatterFile: filepath.Join(dir, "scatter.html"),
			BubbleFile:  filepath.Join(dir, "bubble.html"),
		},
		Charts: config.ChartConfig{LoessBandwidth: 0.3},
	}

	err := New(cfg).Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeMissingColumn, errors.GetCode(err))

	_, statErr := os.Stat(cfg.Paths.ScatterFile)
	assert.True(t, os.IsNotExist(statErr), "no partial scatter output should exist")
}
