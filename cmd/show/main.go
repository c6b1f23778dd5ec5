package main

import (
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/stillwhaling/whaling-data/pkg/catches"
)

const outputFile = "whaling_data.json"

func main() {
	doc, err := catches.LoadDocument(dataPath())
	if err != nil {
		log.Fatal("No data file found, run the create command in `cmd/create` first: ", err)
	}

	p := message.NewPrinter(language.English)

	years := doc.Metadata.Years
	p.Printf("\nIWC catches %d - %d, %d timeline rows, %d country/year rows\n\n",
		years[0], years[len(years)-1], len(doc.Timeline), len(doc.ByCountryYear))

	spew.Dump(doc.Metadata.Species)

	// All-time totals per species, from the timeline.
	type speciesTotal struct {
		Code  string
		Name  string
		Total int
	}

	var allTime int
	var totals []speciesTotal
	for code, name := range doc.Metadata.Species {
		var sum int
		for _, row := range doc.Timeline {
			sum += row[code]
		}
		totals = append(totals, speciesTotal{Code: code, Name: name, Total: sum})
	}
	for _, row := range doc.Timeline {
		allTime += row["total"]
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Code < totals[j].Code
	})

	p.Printf("\nWhales taken since %d: %d\n\n", years[0], allTime)

	p.Println("By species:")
	for i, s := range totals {
		p.Printf("%02d. %-20s %-8s %10d\n", i+1, s.Name, "("+s.Code+")", s.Total)
	}

	// Peak year.
	peak := doc.Timeline[0]
	for _, row := range doc.Timeline {
		if row["total"] > peak["total"] {
			peak = row
		}
	}
	p.Printf("\nPeak year: %d with %d whales taken\n\n", peak["year"], peak["total"])

	p.Println("Top whaling nations (all time):")
	for i, n := range catches.TopNations(doc.ByCountryYear, 10) {
		p.Printf("%02d. %-32s %10d whales\n", i+1, n.Nation, n.Total)
	}
}

func dataPath() string {
	exe, err := os.Executable()
	if err != nil {
		log.Fatal(err)
	}
	root := filepath.Dir(filepath.Dir(exe))
	return filepath.Join(root, "public", "data", outputFile)
}
