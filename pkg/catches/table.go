package catches

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one catch record: whales taken by one nation in one year,
// broken down by species. Counts holds a value for every species
// column present in the source sheet, including zeroes.
type Record struct {
	Year   int
	Nation string
	Code   string // alpha-3 code, empty until AttachCountryCodes
	Total  int
	Counts map[string]int
}

// Table is the in-memory form of the catches spreadsheet.
type Table struct {
	Path    string
	Species []string // catalog codes present in the sheet, catalog order
	Records []Record
}

// Load parses the first sheet of the spreadsheet at path. The first
// row must be a header carrying at least Year, Nation and Total;
// species columns are picked up when present.
func Load(path string) (*Table, error) {
	rows, err := extractRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("spreadsheet '%s' is empty", path)
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, required := range []string{"Year", "Nation", "Total"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("spreadsheet '%s' is missing required column '%s'", path, required)
		}
	}

	t := &Table{Path: path}
	for _, s := range SpeciesCatalog {
		if _, ok := index[s.Code]; ok {
			t.Species = append(t.Species, s.Code)
		}
	}

	for i, row := range rows[1:] {
		yearCell := cell(row, index["Year"])
		nation := cell(row, index["Nation"])

		// Footer and spacer rows carry neither a year nor a nation.
		if yearCell == "" && nation == "" {
			continue
		}

		year, err := parseCount(yearCell)
		if err != nil {
			return nil, fmt.Errorf("row %d of '%s': bad Year: %w", i+2, path, err)
		}
		total, err := parseCount(cell(row, index["Total"]))
		if err != nil {
			return nil, fmt.Errorf("row %d of '%s': bad Total: %w", i+2, path, err)
		}

		r := Record{
			Year:   year,
			Nation: nation,
			Total:  total,
			Counts: make(map[string]int, len(t.Species)),
		}
		for _, code := range t.Species {
			n, err := parseCount(cell(row, index[code]))
			if err != nil {
				return nil, fmt.Errorf("row %d of '%s': bad %s count: %w", i+2, path, code, err)
			}
			r.Counts[code] = n
		}

		t.Records = append(t.Records, r)
	}

	if len(t.Records) == 0 {
		return nil, fmt.Errorf("spreadsheet '%s' contains no catch records", path)
	}

	return t, nil
}

// AttachCountryCodes looks every record's nation up in the country
// catalog. Nations outside the catalog keep an empty code; no record
// is dropped.
func (t *Table) AttachCountryCodes() {
	for i := range t.Records {
		t.Records[i].Code = countryCodes[t.Records[i].Nation]
	}
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseCount reads an integer cell. Blank cells and "-" count as
// zero; cells the sheet library renders as floats are truncated.
func parseCount(s string) (int, error) {
	if s == "" || s == "-" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse '%s' as a number", s)
	}
	return int(f), nil
}
