// Package geo maps free-text country names to continent names. The table
// mirrors the ISO country list grouped by continent code; lookups are
// best-effort and callers are expected to tolerate unknown names.
package geo

import (
	"errors"
	"fmt"
	"strings"
)

// Continent is one of the seven fixed continent names
type Continent string

const (
	Africa       Continent = "Africa"
	Antarctica   Continent = "Antarctica"
	Asia         Continent = "Asia"
	Europe       Continent = "Europe"
	NorthAmerica Continent = "North America"
	Oceania      Continent = "Oceania"
	SouthAmerica Continent = "South America"
)

// Continents returns the fixed continent-name set
func Continents() []Continent {
	return []Continent{Africa, Antarctica, Asia, Europe, NorthAmerica, Oceania, SouthAmerica}
}

// IsValid reports whether c is a member of the fixed continent-name set
func (c Continent) IsValid() bool {
	switch c {
	case Africa, Antarctica, Asia, Europe, NorthAmerica, Oceania, SouthAmerica:
		return true
	}
	return false
}

func (c Continent) String() string { return string(c) }

// Lookup failure variants
var (
	ErrEmptyCountry   = errors.New("country name is empty")
	ErrUnknownCountry = errors.New("unknown country")
)

// Lookup resolves a free-text country name to its continent. The result is
// explicit: either a valid continent or an error variant, never both.
func Lookup(country string) (Continent, error) {
	name := strings.TrimSpace(country)
	if name == "" {
		return "", ErrEmptyCountry
	}

	if continent, ok := countryContinent[name]; ok {
		return continent, nil
	}

	// Tolerate casing differences in otherwise known names
	if continent, ok := countryContinentFolded[strings.ToLower(name)]; ok {
		return continent, nil
	}

	return "", fmt.Errorf("%q: %w", name, ErrUnknownCountry)
}

// countryContinentFolded is the lowercase index over countryContinent
var countryContinentFolded = func() map[string]Continent {
	m := make(map[string]Continent, len(countryContinent))
	for name, continent := range countryContinent {
		m[strings.ToLower(name)] = continent
	}
	return m
}()

// countryContinent covers the ISO country names plus the alternate spellings
// that appear in WHO and World Bank health exports
var countryContinent = map[string]Continent{
	// Africa
	"Algeria":                          Africa,
	"Angola":                           Africa,
	"Benin":                            Africa,
	"Botswana":                         Africa,
	"Burkina Faso":                     Africa,
	"Burundi":                          Africa,
	"Cabo Verde":                       Africa,
	"Cape Verde":                       Africa,
	"Cameroon":                         Africa,
	"Central African Republic":         Africa,
	"Chad":                             Africa,
	"Comoros":                          Africa,
	"Congo":                            Africa,
	"Republic of the Congo":            Africa,
	"Democratic Republic of the Congo": Africa,
	"Côte d'Ivoire":                    Africa,
	"Cote d'Ivoire":                    Africa,
	"Ivory Coast":                      Africa,
	"Djibouti":                         Africa,
	"Egypt":                            Africa,
	"Equatorial Guinea":                Africa,
	"Eritrea":                          Africa,
	"Eswatini":                         Africa,
	"Swaziland":                        Africa,
	"Ethiopia":                         Africa,
	"Gabon":                            Africa,
	"Gambia":                           Africa,
	"Ghana":                            Africa,
	"Guinea":                           Africa,
	"Guinea-Bissau":                    Africa,
	"Kenya":                            Africa,
	"Lesotho":                          Africa,
	"Liberia":                          Africa,
	"Libya":                            Africa,
	"Madagascar":                       Africa,
	"Malawi":                           Africa,
	"Mali":                             Africa,
	"Mauritania":                       Africa,
	"Mauritius":                        Africa,
	"Morocco":                          Africa,
	"Mozambique":                       Africa,
	"Namibia":                          Africa,
	"Niger":                            Africa,
	"Nigeria":                          Africa,
	"Rwanda":                           Africa,
	"Sao Tome and Principe":            Africa,
	"Senegal":                          Africa,
	"Seychelles":                       Africa,
	"Sierra Leone":                     Africa,
	"Somalia":                          Africa,
	"South Africa":                     Africa,
	"South Sudan":                      Africa,
	"Sudan":                            Africa,
	"Togo":                             Africa,
	"Tunisia":                          Africa,
	"Uganda":                           Africa,
	"United Republic of Tanzania":      Africa,
	"Tanzania":                         Africa,
	"Zambia":                           Africa,
	"Zimbabwe":                         Africa,

	// Asia
	"Afghanistan":                           Asia,
	"Armenia":                               Asia,
	"Azerbaijan":                            Asia,
	"Bahrain":                               Asia,
	"Bangladesh":                            Asia,
	"Bhutan":                                Asia,
	"Brunei Darussalam":                     Asia,
	"Brunei":                                Asia,
	"Cambodia":                              Asia,
	"China":                                 Asia,
	"Cyprus":                                Asia,
	"Georgia":                               Asia,
	"India":                                 Asia,
	"Indonesia":                             Asia,
	"Iran (Islamic Republic of)":            Asia,
	"Iran":                                  Asia,
	"Iraq":                                  Asia,
	"Israel":                                Asia,
	"Japan":                                 Asia,
	"Jordan":                                Asia,
	"Kazakhstan":                            Asia,
	"Kuwait":                                Asia,
	"Kyrgyzstan":                            Asia,
	"Lao People's Democratic Republic":      Asia,
	"Laos":                                  Asia,
	"Lebanon":                               Asia,
	"Malaysia":                              Asia,
	"Maldives":                              Asia,
	"Mongolia":                              Asia,
	"Myanmar":                               Asia,
	"Nepal":                                 Asia,
	"Democratic People's Republic of Korea": Asia,
	"North Korea":                           Asia,
	"Oman":                                  Asia,
	"Pakistan":                              Asia,
	"Philippines":                           Asia,
	"Qatar":                                 Asia,
	"Republic of Korea":                     Asia,
	"South Korea":                           Asia,
	"Saudi Arabia":                          Asia,
	"Singapore":                             Asia,
	"Sri Lanka":                             Asia,
	"State of Palestine":                    Asia,
	"Syrian Arab Republic":                  Asia,
	"Syria":                                 Asia,
	"Tajikistan":                            Asia,
	"Thailand":                              Asia,
	"Timor-Leste":                           Asia,
	"Turkey":                                Asia,
	"Türkiye":                               Asia,
	"Turkmenistan":                          Asia,
	"United Arab Emirates":                  Asia,
	"Uzbekistan":                            Asia,
	"Viet Nam":                              Asia,
	"Vietnam":                               Asia,
	"Yemen":                                 Asia,

	// Europe
	"Albania":                Europe,
	"Andorra":                Europe,
	"Austria":                Europe,
	"Belarus":                Europe,
	"Belgium":                Europe,
	"Bosnia and Herzegovina": Europe,
	"Bulgaria":               Europe,
	"Croatia":                Europe,
	"Czechia":                Europe,
	"Czech Republic":         Europe,
	"Denmark":                Europe,
	"Estonia":                Europe,
	"Finland":                Europe,
	"France":                 Europe,
	"Germany":                Europe,
	"Greece":                 Europe,
	"Hungary":                Europe,
	"Iceland":                Europe,
	"Ireland":                Europe,
	"Italy":                  Europe,
	"Latvia":                 Europe,
	"Liechtenstein":          Europe,
	"Lithuania":              Europe,
	"Luxembourg":             Europe,
	"Malta":                  Europe,
	"Monaco":                 Europe,
	"Montenegro":             Europe,
	"Netherlands":            Europe,
	"North Macedonia":        Europe,
	"Norway":                 Europe,
	"Poland":                 Europe,
	"Portugal":               Europe,
	"Republic of Moldova":    Europe,
	"Moldova":                Europe,
	"Romania":                Europe,
	"Russian Federation":     Europe,
	"Russia":                 Europe,
	"San Marino":             Europe,
	"Serbia":                 Europe,
	"Slovakia":               Europe,
	"Slovenia":               Europe,
	"Spain":                  Europe,
	"Sweden":                 Europe,
	"Switzerland":            Europe,
	"Ukraine":                Europe,
	"United Kingdom":         Europe,
	"United Kingdom of Great Britain and Northern Ireland": Europe,

	// North America
	"Antigua and Barbuda":              NorthAmerica,
	"Bahamas":                          NorthAmerica,
	"Barbados":                         NorthAmerica,
	"Belize":                           NorthAmerica,
	"Canada":                           NorthAmerica,
	"Costa Rica":                       NorthAmerica,
	"Cuba":                             NorthAmerica,
	"Dominica":                         NorthAmerica,
	"Dominican Republic":               NorthAmerica,
	"El Salvador":                      NorthAmerica,
	"Grenada":                          NorthAmerica,
	"Guatemala":                        NorthAmerica,
	"Haiti":                            NorthAmerica,
	"Honduras":                         NorthAmerica,
	"Jamaica":                          NorthAmerica,
	"Mexico":                           NorthAmerica,
	"Nicaragua":                        NorthAmerica,
	"Panama":                           NorthAmerica,
	"Saint Kitts and Nevis":            NorthAmerica,
	"Saint Lucia":                      NorthAmerica,
	"Saint Vincent and the Grenadines": NorthAmerica,
	"Trinidad and Tobago":              NorthAmerica,
	"United States of America":         NorthAmerica,
	"United States":                    NorthAmerica,

	// Oceania
	"Australia":                      Oceania,
	"Fiji":                           Oceania,
	"Kiribati":                       Oceania,
	"Marshall Islands":               Oceania,
	"Micronesia (Federated States of)": Oceania,
	"Micronesia":                     Oceania,
	"Nauru":                          Oceania,
	"New Zealand":                    Oceania,
	"Palau":                          Oceania,
	"Papua New Guinea":               Oceania,
	"Samoa":                          Oceania,
	"Solomon Islands":                Oceania,
	"Tonga":                          Oceania,
	"Tuvalu":                         Oceania,
	"Vanuatu":                        Oceania,

	// South America
	"Argentina":                          SouthAmerica,
	"Bolivia (Plurinational State of)":   SouthAmerica,
	"Bolivia":                            SouthAmerica,
	"Brazil":                             SouthAmerica,
	"Chile":                              SouthAmerica,
	"Colombia":                           SouthAmerica,
	"Ecuador":                            SouthAmerica,
	"Guyana":                             SouthAmerica,
	"Paraguay":                           SouthAmerica,
	"Peru":                               SouthAmerica,
	"Suriname":                           SouthAmerica,
	"Uruguay":                            SouthAmerica,
	"Venezuela (Bolivarian Republic of)": SouthAmerica,
	"Venezuela":                          SouthAmerica,
}
