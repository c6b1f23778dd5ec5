package catches

// Country pairs a nation name, exactly as spelled in the IWC dataset,
// with the ISO 3166-1 alpha-3 code the map view renders it under.
type Country struct {
	Name string
	Code string
}

// CountryCatalog is hand-curated against the nation names the IWC
// dataset actually uses. Some entries deliberately fold historical
// entities into a modern code; the map view depends on exactly this
// table, so keep it as is.
var CountryCatalog = []Country{
	{"Japan", "JPN"},
	{"USSR", "RUS"}, // shown as Russia on the map
	{"Russia", "RUS"},
	{"Indonesia", "IDN"},
	{"Denmark", "DNK"}, // includes Greenland / Faroe Islands
	{"Iceland", "ISL"},
	{"Norway", "NOR"},
	{"Saint Vincent & the Grenadines", "VCT"},
	{"Korea", "KOR"},
	{"United States", "USA"},
	{"Portugal", "PRT"},
	{"Canada", "CAN"},
}

var countryCodes = func() map[string]string {
	m := make(map[string]string, len(CountryCatalog))
	for _, c := range CountryCatalog {
		m[c.Name] = c.Code
	}
	return m
}()

// CountryNames returns every nation name in the catalog, in catalog order.
func CountryNames() []string {
	names := make([]string, 0, len(CountryCatalog))
	for _, c := range CountryCatalog {
		names = append(names, c.Name)
	}
	return names
}
