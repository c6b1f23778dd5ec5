package catches

import "sort"

// TimelineRow is one year of global totals: a "year" key, a "total"
// key, and one key per species column present in the source data
// (zero sums included so the frontend can draw every series).
type TimelineRow map[string]int

// CountryYear is the catch total for one nation in one year. The
// species breakdown omits zero-valued entries; the code is omitted
// for nations outside the country catalog.
type CountryYear struct {
	Year    int            `json:"year"`
	Country string         `json:"country"`
	Code    string         `json:"code,omitempty"`
	Total   int            `json:"total"`
	Species map[string]int `json:"species"`
}

// Years returns every distinct year in the table, ascending.
func Years(t *Table) []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range t.Records {
		if !seen[r.Year] {
			seen[r.Year] = true
			years = append(years, r.Year)
		}
	}
	sort.Ints(years)
	return years
}

// Timeline aggregates the table by year into one row per year,
// ascending. All sums are exact integers.
func Timeline(t *Table) []TimelineRow {
	bySpecies := make(map[int]map[string]int)
	grand := make(map[int]int)

	for _, r := range t.Records {
		sums := bySpecies[r.Year]
		if sums == nil {
			sums = make(map[string]int, len(t.Species))
			bySpecies[r.Year] = sums
		}
		for code, n := range r.Counts {
			sums[code] += n
		}
		grand[r.Year] += r.Total
	}

	years := Years(t)
	rows := make([]TimelineRow, 0, len(years))
	for _, y := range years {
		row := TimelineRow{"year": y}
		for _, code := range t.Species {
			row[code] = bySpecies[y][code]
		}
		row["total"] = grand[y]
		rows = append(rows, row)
	}
	return rows
}

// ByCountryYear aggregates the table by (year, nation), sorted by
// year then nation name. Zero-valued species are stripped from each
// entry's breakdown.
func ByCountryYear(t *Table) []CountryYear {
	type key struct {
		year   int
		nation string
	}

	acc := make(map[key]*CountryYear)
	for _, r := range t.Records {
		k := key{r.Year, r.Nation}
		e := acc[k]
		if e == nil {
			e = &CountryYear{
				Year:    r.Year,
				Country: r.Nation,
				Code:    r.Code,
				Species: make(map[string]int, len(r.Counts)),
			}
			acc[k] = e
		}
		e.Total += r.Total
		for code, n := range r.Counts {
			e.Species[code] += n
		}
	}

	keys := make([]key, 0, len(acc))
	for k := range acc {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].nation < keys[j].nation
	})

	out := make([]CountryYear, 0, len(keys))
	for _, k := range keys {
		e := acc[k]
		for code, n := range e.Species {
			if n == 0 {
				delete(e.Species, code)
			}
		}
		out = append(out, *e)
	}
	return out
}

// NationTotal is a nation's all-time catch total.
type NationTotal struct {
	Nation string
	Total  int
}

// TopNations ranks nations by all-time total, descending. Ties keep
// the order nations first appear in rows, which is deterministic for
// a given input.
func TopNations(rows []CountryYear, n int) []NationTotal {
	totals := make(map[string]*NationTotal)
	var ranked []*NationTotal

	for _, r := range rows {
		e := totals[r.Country]
		if e == nil {
			e = &NationTotal{Nation: r.Country}
			totals[r.Country] = e
			ranked = append(ranked, e)
		}
		e.Total += r.Total
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]NationTotal, n)
	for i := 0; i < n; i++ {
		out[i] = *ranked[i]
	}
	return out
}
