package catches

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report prints the post-write summary: what was read, what was
// written, and the top 10 whaling nations of all time.
func Report(d *Document, outputPath string, recordCount int) {
	years := d.Metadata.Years

	fmt.Printf(`
	Written to : %s
	Records    : %d
	Years      : %d - %d
	Countries  : %d
	Rows       : %d
	`, outputPath, recordCount, years[0], years[len(years)-1],
		len(d.Metadata.Countries), len(d.ByCountryYear))
	fmt.Println("")

	p := message.NewPrinter(language.English)

	p.Println("Top whaling nations (all time):")
	for i, n := range TopNations(d.ByCountryYear, 10) {
		p.Printf("%02d. %-32s %10d whales\n", i+1, n.Nation, n.Total)
	}
}
