// Package classify holds the row-enrichment classifiers: two country
// taxonomies and the product-category keyword table. All classifiers are
// total functions over arbitrary strings; unmatched input falls into a
// catch-all label, never an error.
package classify

// The two country taxonomies below are deliberately independent. The coarse
// grouping drives the region-demand report; the continent table drives the
// continent AOV report. They overlap only partially (e.g. "Ireland" is an EU
// country here while the continent table knows it as "EIRE") and must not be
// unified without a stakeholder decision.

const (
	GroupAsian        = "Asian Countries"
	GroupEU           = "EU Countries"
	GroupOtherRegions = "Other Regions"

	ContinentOther = "Other"
)

var asianCountries = map[string]struct{}{
	"Japan": {}, "Singapore": {}, "Hong Kong": {}, "Korea": {}, "China": {},
	"Thailand": {}, "Malaysia": {}, "Indonesia": {}, "Philippines": {},
	"Vietnam": {}, "India": {}, "UAE": {}, "Saudi Arabia": {},
}

var euCountries = map[string]struct{}{
	"United Kingdom": {}, "Germany": {}, "France": {}, "Spain": {},
	"Italy": {}, "Netherlands": {}, "Belgium": {}, "Switzerland": {},
	"Portugal": {}, "Sweden": {}, "Norway": {}, "Denmark": {},
	"Finland": {}, "Austria": {}, "Poland": {}, "Greece": {},
	"Ireland": {}, "Czech Republic": {},
}

// RegionGroup maps a country to the coarse Asia/EU/Other grouping.
func RegionGroup(country string) string {
	if _, ok := asianCountries[country]; ok {
		return GroupAsian
	}
	if _, ok := euCountries[country]; ok {
		return GroupEU
	}
	return GroupOtherRegions
}

// Continent maps a country name as it appears in the dataset to a continent
// group. Unknown countries map to ContinentOther.
func Continent(country string) string {
	if c, ok := continentTable[country]; ok {
		return c
	}
	return ContinentOther
}

// continentTable v1. Keyed by the dataset's own country spellings ("EIRE",
// "RSA", "Channel Islands", "European Community").
var continentTable = map[string]string{
	// Europe
	"United Kingdom":         "Europe",
	"EIRE":                   "Europe",
	"Netherlands":            "Europe",
	"Germany":                "Europe",
	"France":                 "Europe",
	"Spain":                  "Europe",
	"Portugal":               "Europe",
	"Belgium":                "Europe",
	"Switzerland":            "Europe",
	"Norway":                 "Europe",
	"Sweden":                 "Europe",
	"Finland":                "Europe",
	"Italy":                  "Europe",
	"Austria":                "Europe",
	"Denmark":                "Europe",
	"Poland":                 "Europe",
	"Greece":                 "Europe",
	"Cyprus":                 "Europe",
	"Channel Islands":        "Europe",
	"Iceland":                "Europe",
	"Malta":                  "Europe",
	"Lithuania":              "Europe",
	"Czech Republic":         "Europe",
	"European Community":     "Europe",
	"Albania":                "Europe",
	"Andorra":                "Europe",
	"Belarus":                "Europe",
	"Bosnia and Herzegovina": "Europe",
	"Bulgaria":               "Europe",
	"Croatia":                "Europe",
	"Estonia":                "Europe",
	"Faroe Islands":          "Europe",
	"Gibraltar":              "Europe",
	"Guernsey":               "Europe",
	"Holy See":               "Europe",
	"Hungary":                "Europe",
	"Ireland":                "Europe",
	"Isle of Man":            "Europe",
	"Jersey":                 "Europe",
	"Latvia":                 "Europe",
	"Liechtenstein":          "Europe",
	"Luxembourg":             "Europe",
	"Monaco":                 "Europe",
	"Montenegro":             "Europe",
	"North Macedonia":        "Europe",
	"Republic of Moldova":    "Europe",
	"Romania":                "Europe",
	"San Marino":             "Europe",
	"Serbia":                 "Europe",
	"Slovakia":               "Europe",
	"Slovenia":               "Europe",
	"Ukraine":                "Europe",
	"Kosovo":                 "Europe",

	// Asia / Middle East
	"Israel":               "Asia",
	"Japan":                "Asia",
	"Singapore":            "Asia",
	"Hong Kong":            "Asia",
	"Thailand":             "Asia",
	"Korea":                "Asia",
	"China":                "Asia",
	"Saudi Arabia":         "Asia",
	"United Arab Emirates": "Asia",
	"Lebanon":              "Asia",
	"Bahrain":              "Asia",
	"Afghanistan":          "Asia",
	"Armenia":              "Asia",
	"Azerbaijan":           "Asia",
	"Bangladesh":           "Asia",
	"Bhutan":               "Asia",
	"Brunei Darussalam":    "Asia",
	"Cambodia":             "Asia",
	"Georgia":              "Asia",
	"India":                "Asia",
	"Indonesia":            "Asia",
	"Iran":                 "Asia",
	"Iraq":                 "Asia",
	"Jordan":               "Asia",
	"Kazakhstan":           "Asia",
	"Kuwait":               "Asia",
	"Kyrgyzstan":           "Asia",
	"Laos":                 "Asia",
	"Macao":                "Asia",
	"Malaysia":             "Asia",
	"Maldives":             "Asia",
	"Mongolia":             "Asia",
	"Myanmar":              "Asia",
	"Nepal":                "Asia",
	"Oman":                 "Asia",
	"Pakistan":             "Asia",
	"Palestine, State of":  "Asia",
	"Philippines":          "Asia",
	"Qatar":                "Asia",
	"Republic of Korea":    "Asia",
	"Sri Lanka":            "Asia",
	"Syrian Arab Republic": "Asia",
	"Tajikistan":           "Asia",
	"Timor-Leste":          "Asia",
	"Turkey":               "Asia",
	"Turkmenistan":         "Asia",
	"Uzbekistan":           "Asia",
	"Viet Nam":             "Asia",
	"Yemen":                "Asia",

	// Oceania
	"Australia":   "Oceania",
	"New Zealand": "Oceania",

	// Americas
	"USA":                              "Americas",
	"Brazil":                           "Americas",
	"Canada":                           "Americas",
	"Belize":                           "Americas",
	"Costa Rica":                       "Americas",
	"El Salvador":                      "Americas",
	"Guatemala":                        "Americas",
	"Honduras":                         "Americas",
	"Mexico":                           "Americas",
	"Nicaragua":                        "Americas",
	"Panama":                           "Americas",
	"Antigua and Barbuda":              "Americas",
	"Bahamas":                          "Americas",
	"Barbados":                         "Americas",
	"Cuba":                             "Americas",
	"Dominica":                         "Americas",
	"Dominican Republic":               "Americas",
	"Grenada":                          "Americas",
	"Haiti":                            "Americas",
	"Jamaica":                          "Americas",
	"Saint Kitts and Nevis":            "Americas",
	"Saint Lucia":                      "Americas",
	"Saint Vincent and the Grenadines": "Americas",
	"Trinidad and Tobago":              "Americas",
	"Argentina":                        "Americas",
	"Bolivia":                          "Americas",
	"Chile":                            "Americas",
	"Colombia":                         "Americas",
	"Ecuador":                          "Americas",
	"Guyana":                           "Americas",
	"Paraguay":                         "Americas",
	"Peru":                             "Americas",
	"Suriname":                         "Americas",
	"Uruguay (Oriental Republic of)":   "Americas",
	"Venezuela (Bolivarian Republic of)": "Americas",

	// Africa
	"Algeria":                          "Africa",
	"Angola":                           "Africa",
	"Benin":                            "Africa",
	"Botswana":                         "Africa",
	"Burkina Faso":                     "Africa",
	"Burundi":                          "Africa",
	"Cabo Verde":                       "Africa",
	"Cameroon":                         "Africa",
	"Central African Republic":         "Africa",
	"Chad":                             "Africa",
	"Comoros":                          "Africa",
	"Congo":                            "Africa",
	"Côte d'Ivoire":                    "Africa",
	"Democratic Republic of the Congo": "Africa",
	"Djibouti":                         "Africa",
	"Egypt":                            "Africa",
	"Equatorial Guinea":                "Africa",
	"Eritrea":                          "Africa",
	"Eswatini":                         "Africa",
	"Ethiopia":                         "Africa",
	"Gabon":                            "Africa",
	"Gambia":                           "Africa",
	"Ghana":                            "Africa",
	"Guinea":                           "Africa",
	"Guinea-Bissau":                    "Africa",
	"Kenya":                            "Africa",
	"Lesotho":                          "Africa",
	"Liberia":                          "Africa",
	"Libya":                            "Africa",
	"Madagascar":                       "Africa",
	"Malawi":                           "Africa",
	"Mali":                             "Africa",
	"Mauritania":                       "Africa",
	"Mauritius":                        "Africa",
	"Morocco":                          "Africa",
	"Mozambique":                       "Africa",
	"Namibia":                          "Africa",
	"Niger":                            "Africa",
	"Nigeria":                          "Africa",
	"Rwanda":                           "Africa",
	"Sao Tome and Principe":            "Africa",
	"Senegal":                          "Africa",
	"Seychelles":                       "Africa",
	"Sierra Leone":                     "Africa",
	"Somalia":                          "Africa",
	"South Africa":                     "Africa",
	"South Sudan":                      "Africa",
	"Sudan":                            "Africa",
	"Tanzania":                         "Africa",
	"Togo":                             "Africa",
	"Tunisia":                          "Africa",
	"Uganda":                           "Africa",
	"Zambia":                           "Africa",
	"Zimbabwe":                         "Africa",
	"RSA":                              "Africa",
}
