package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/insightdelivered/statement-normalizer/internal/tabular"
)

// preferredSheets are worksheet names that usually hold the statement rows,
// checked before falling back to the first sheet.
var preferredSheets = []string{
	"transactions", "movimentos", "extrato", "statement", "sheet1",
}

// LoadWorkbook reads a spreadsheet statement into a raw table. The first
// row of the selected sheet is treated as the header row.
func LoadWorkbook(path string) (tabular.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return tabular.RawTable{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := pickSheet(f)
	if sheet == "" {
		return tabular.RawTable{}, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return tabular.RawTable{}, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return tabular.RawTable{}, errors.New("sheet has no rows")
	}

	return tabular.RawTable{Headers: rows[0], Rows: rows[1:]}, nil
}

// pickSheet prefers statement-named sheets over positional choice.
func pickSheet(f *excelize.File) string {
	sheets := f.GetSheetList()
	for _, want := range preferredSheets {
		for _, s := range sheets {
			if strings.EqualFold(s, want) {
				return s
			}
		}
	}
	if len(sheets) > 0 {
		return sheets[0]
	}
	return ""
}
