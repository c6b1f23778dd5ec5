package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/stillwhaling/whaling-data/pkg/catches"
)

const outputFile = "whaling_data.json"

func main() {
	downloads, err := catches.DownloadsDir()
	if err != nil {
		log.Fatal(err)
	}

	datasetPath, err := catches.FindDataset(downloads)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Loading: %s\n", filepath.Base(datasetPath))

	table, err := catches.Load(datasetPath)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Loaded %d records\n", len(table.Records))

	table.AttachCountryCodes()

	doc := catches.BuildDocument(table)

	out := outputPath()
	if err := doc.Save(out); err != nil {
		log.Fatal(err)
	}

	catches.Report(doc, out, len(table.Records))
}

// outputPath anchors public/data at the parent of the directory the
// binary lives in, matching a binary built into the site repo's bin/.
func outputPath() string {
	exe, err := os.Executable()
	if err != nil {
		log.Fatal(err)
	}
	root := filepath.Dir(filepath.Dir(exe))
	return filepath.Join(root, "public", "data", outputFile)
}
