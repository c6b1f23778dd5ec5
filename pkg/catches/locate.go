package catches

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DatasetURL is where the operator downloads the source spreadsheet.
const DatasetURL = "https://iwc.int/management-and-conservation/whaling/total-catches"

// ErrDatasetNotFound is returned by FindDataset when no catches
// spreadsheet exists in the search directory.
var ErrDatasetNotFound = errors.New(
	"no IWC catches dataset found.\n" +
		"Download from: " + DatasetURL)

// DownloadsDir returns the user's default downloads directory, where
// FindDataset expects the spreadsheet to land.
func DownloadsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not resolve home directory: %w", err)
	}
	return filepath.Join(home, "Downloads"), nil
}

// FindDataset returns the most recently modified spreadsheet in dir
// whose name contains "catches" or "Catches". Both the current .xlsx
// exports and the older .xls ones match.
func FindDataset(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("could not read directory '%s': %w", dir, err)
	}

	var newest string
	var newestMod time.Time

	for _, e := range entries {
		if e.IsDir() || !isDatasetFile(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return "", fmt.Errorf("could not stat '%s': %w", e.Name(), err)
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest = e.Name()
			newestMod = info.ModTime()
		}
	}

	if newest == "" {
		return "", fmt.Errorf("%w\nSearched: %s", ErrDatasetNotFound, dir)
	}
	return filepath.Join(dir, newest), nil
}

func isDatasetFile(name string) bool {
	ext := filepath.Ext(name)
	if ext != ".xlsx" && ext != ".xls" {
		return false
	}
	return strings.Contains(name, "catches") || strings.Contains(name, "Catches")
}
