// Package catches turns the IWC Total Catches spreadsheet into the
// pre-aggregated JSON document consumed by the site's visualization.
//
// The source dataset is published at
// https://iwc.int/management-and-conservation/whaling/total-catches
// as an Excel file with one row per nation, year and species breakdown.
package catches

// Species is one entry of the fixed whale species catalog: the short
// column code used in the IWC dataset and its display name.
type Species struct {
	Code string
	Name string
}

// SpeciesCatalog maps every species column the IWC dataset may carry.
// A given download usually contains only a subset of these columns.
var SpeciesCatalog = []Species{
	{"TBlue", "Blue Whale"},
	{"PBlue", "Pygmy Blue Whale"},
	{"Fin", "Fin Whale"},
	{"Spm", "Sperm Whale"},
	{"Hbk", "Humpback Whale"},
	{"Sei", "Sei Whale"},
	{"Bryd", "Bryde's Whale"},
	{"Mi:C", "Common Minke"},
	{"Mi:A", "Antarctic Minke"},
	{"Gray", "Gray Whale"},
	{"Bhd", "Bowhead Whale"},
	{"Ri", "Right Whale"},
	{"Unsp", "Unspecified"},
}

// SpeciesNames returns the catalog as a code -> display name mapping.
func SpeciesNames() map[string]string {
	m := make(map[string]string, len(SpeciesCatalog))
	for _, s := range SpeciesCatalog {
		m[s.Code] = s.Name
	}
	return m
}
