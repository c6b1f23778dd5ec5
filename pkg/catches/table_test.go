package catches

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook synthesizes an .xlsx fixture with the given rows on
// the first sheet.
func writeWorkbook(t *testing.T, dir string, rows ...[]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(dir, "catches.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadBasic(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(),
		[]any{"Year", "Nation", "TBlue", "Fin", "Total"},
		[]any{1985, "Japan", 2, 0, 5},
		[]any{1985, "Norway", 0, 3, 5},
	)

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"TBlue", "Fin"}, table.Species)
	require.Len(t, table.Records, 2)

	assert.Equal(t, Record{
		Year:   1985,
		Nation: "Japan",
		Total:  5,
		Counts: map[string]int{"TBlue": 2, "Fin": 0},
	}, table.Records[0])
	assert.Equal(t, Record{
		Year:   1985,
		Nation: "Norway",
		Total:  5,
		Counts: map[string]int{"TBlue": 0, "Fin": 3},
	}, table.Records[1])
}

func TestLoadSpeciesColumnsAreCatalogFiltered(t *testing.T) {
	// Header order differs from catalog order, and an unknown column
	// is mixed in; the table keeps catalog order and drops the rest.
	path := writeWorkbook(t, t.TempDir(),
		[]any{"Year", "Nation", "Sei", "Bogus", "Fin", "Total"},
		[]any{1970, "Iceland", 4, 9, 1, 5},
	)

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Fin", "Sei"}, table.Species)
	assert.Equal(t, map[string]int{"Fin": 1, "Sei": 4}, table.Records[0].Counts)
}

func TestLoadBlankCellsCountAsZero(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(),
		[]any{"Year", "Nation", "Spm", "Total"},
		[]any{1960, "Portugal", nil, 7},
		[]any{1961, "Portugal", "-", 3},
	)

	table, err := Load(path)
	require.NoError(t, err)
	require.Len(t, table.Records, 2)
	assert.Equal(t, 0, table.Records[0].Counts["Spm"])
	assert.Equal(t, 0, table.Records[1].Counts["Spm"])
}

func TestLoadSkipsFooterRows(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(),
		[]any{"Year", "Nation", "Total"},
		[]any{2000, "Norway", 10},
		[]any{nil, nil, nil},
		[]any{2001, "Norway", 12},
	)

	table, err := Load(path)
	require.NoError(t, err)
	require.Len(t, table.Records, 2)
	assert.Equal(t, 2000, table.Records[0].Year)
	assert.Equal(t, 2001, table.Records[1].Year)
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	for _, missing := range []string{"Year", "Nation", "Total"} {
		header := []any{}
		for _, col := range []string{"Year", "Nation", "Total"} {
			if col != missing {
				header = append(header, col)
			}
		}
		path := writeWorkbook(t, t.TempDir(), header, []any{1, 2})

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), missing)
	}
}

func TestLoadRejectsNonNumericCount(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(),
		[]any{"Year", "Nation", "Total"},
		[]any{1999, "Japan", "many"},
	)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Total")
}

func TestLoadEmptySheet(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(),
		[]any{"Year", "Nation", "Total"},
	)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadUnreadableFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
}

func TestAttachCountryCodes(t *testing.T) {
	table := &Table{Records: []Record{
		{Year: 1985, Nation: "Japan"},
		{Year: 1970, Nation: "USSR"},
		{Year: 1985, Nation: "Atlantis"},
	}}

	table.AttachCountryCodes()

	assert.Equal(t, "JPN", table.Records[0].Code)
	assert.Equal(t, "RUS", table.Records[1].Code, "USSR folds into the Russia code")
	assert.Equal(t, "", table.Records[2].Code, "unknown nations keep an empty code")
	assert.Len(t, table.Records, 3, "no record is dropped")
}
