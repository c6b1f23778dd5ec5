package catches

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/anrid/xls"
	"github.com/xuri/excelize/v2"
)

// extractRows reads the first sheet of a spreadsheet file into raw
// string cells, dispatching on the file extension.
func extractRows(path string) ([][]string, error) {
	if strings.HasSuffix(path, ".xls") {
		return extractRowsXLS(path)
	}
	return extractRowsXLSX(path)
}

func extractRowsXLSX(path string) ([][]string, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read XLSX file '%s': %w", path, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file '%s' contains no sheets", path)
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("could not get rows for sheet '%s': %w", sheets[0], err)
	}
	return rows, nil
}

func extractRowsXLS(path string) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read XLS file '%s': %w", path, err)
	}

	wb, err := xls.OpenReader(bytes.NewReader(raw), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("could not parse XLS file '%s': %w", path, err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("XLS file '%s' contains no sheets", path)
	}

	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		var cols []string
		for j := 0; j <= row.LastCol(); j++ {
			cols = append(cols, row.Col(j))
		}
		rows = append(rows, cols)
	}
	return rows, nil
}
