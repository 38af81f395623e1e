package table

// Well-known column labels of the health dataset, post-normalization
const (
	ColumnCountry        = "country"
	ColumnGender         = "gender"
	ColumnYear           = "year"
	ColumnContinent      = "continent"
	ColumnLifeExpectancy = "life expectancy"
	ColumnGDPPerCapita   = "gdp per capita"
	ColumnPopulation     = "total population"
	ColumnDietFruitVeg   = "diet composition fruit and vegetables"
)

// GenderBothSexes is the sentinel label for aggregate (non-gender-split)
// statistics, as it appears in the source data
const GenderBothSexes = "Both sexes"
