package catches

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SourceName is the attribution string written into the artifact.
const SourceName = "IWC Total Catches Database"

// Metadata describes the dataset for the frontend: attribution, the
// years and countries it may render, and the species catalog.
type Metadata struct {
	Source    string            `json:"source"`
	URL       string            `json:"url"`
	Years     []int             `json:"years"`
	Countries []string          `json:"countries"`
	Species   map[string]string `json:"species"`
}

// Document is the whole whaling_data.json artifact.
type Document struct {
	Metadata      Metadata      `json:"metadata"`
	Timeline      []TimelineRow `json:"timeline"`
	ByCountryYear []CountryYear `json:"byCountryYear"`
}

// BuildDocument assembles the output document from an enriched table.
// The countries list is the full catalog, not just the nations present
// in this particular download.
func BuildDocument(t *Table) *Document {
	return &Document{
		Metadata: Metadata{
			Source:    SourceName,
			URL:       DatasetURL,
			Years:     Years(t),
			Countries: CountryNames(),
			Species:   SpeciesNames(),
		},
		Timeline:      Timeline(t),
		ByCountryYear: ByCountryYear(t),
	}
}

// Save writes the document as 2-space-indented JSON, creating parent
// directories as needed and replacing any existing file. There is no
// atomic-write guarantee; concurrent runs race on the output file and
// are unsupported.
func (d *Document) Save(path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("could not encode document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create output directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("could not write '%s': %w", path, err)
	}
	return nil
}

// LoadDocument reads a previously written artifact back.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read '%s': %w", path, err)
	}
	d := new(Document)
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("could not parse '%s': %w", path, err)
	}
	return d, nil
}
