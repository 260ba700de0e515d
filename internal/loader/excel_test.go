package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	path := filepath.Join(t.TempDir(), "statement.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadWorkbook(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"Data", "Descrição", "Valor"},
		{"01/03/2024", "Compra supermercado", "-45,67"},
		{"02/03/2024", "Transferência recebida", "100,00"},
	})

	raw, err := LoadWorkbook(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Data", "Descrição", "Valor"}, raw.Headers)
	require.Len(t, raw.Rows, 2)
	assert.Equal(t, "Compra supermercado", raw.Rows[0][1])
}

func TestLoadWorkbookPrefersStatementSheet(t *testing.T) {
	path := writeWorkbook(t, "Movimentos", [][]interface{}{
		{"Data", "Detalhe", "Montante"},
		{"01/03/2024", "Compra", "-10,00"},
	})

	raw, err := LoadWorkbook(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Data", "Detalhe", "Montante"}, raw.Headers)
}

func TestLoadWorkbookMissingFile(t *testing.T) {
	_, err := LoadWorkbook(filepath.Join(t.TempDir(), "absent.xlsx"))
	require.Error(t, err)
}
