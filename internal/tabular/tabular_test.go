package tabular

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightdelivered/statement-normalizer/internal/models"
)

func TestStandardize(t *testing.T) {
	raw := RawTable{
		Headers: []string{"Data Mov.", "Descrição", "Valor"},
		Rows: [][]string{
			{"2024-03-02", "Transferência recebida", "100,00"},
			{"2024-03-01", "Compra supermercado", "-45,67"},
		},
	}

	table, err := Standardize(raw)
	require.NoError(t, err)
	require.Len(t, table, 2)

	// Sorted ascending by date.
	assert.Equal(t, "Compra supermercado", table[0].Description)
	assert.Equal(t, "-45.67", table[0].Amount.StringFixed(2))
	assert.Equal(t, models.TypeDebit, table[0].Type)

	assert.Equal(t, "Transferência recebida", table[1].Description)
	assert.Equal(t, "100.00", table[1].Amount.StringFixed(2))
	assert.Equal(t, models.TypeCredit, table[1].Type)
}

func TestColumnResolutionIsCaseAndOrderIndependent(t *testing.T) {
	portuguese := RawTable{
		Headers: []string{"Descrição", "Data", "Valor"},
		Rows:    [][]string{{"Compra loja", "2024-03-01", "-10,00"}},
	}
	english := RawTable{
		Headers: []string{"date", "amount", "description"},
		Rows:    [][]string{{"2024-03-01", "-10,00", "Compra loja"}},
	}

	a, err := Standardize(portuguese)
	require.NoError(t, err)
	b, err := Standardize(english)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestFirstMatchingColumnWins(t *testing.T) {
	raw := RawTable{
		Headers: []string{"Dia", "Data Mov.", "Detalhe", "Valor"},
		Rows:    [][]string{{"05/03/2024", "01/03/2024", "Compra", "-10,00"}},
	}

	table, err := Standardize(raw)
	require.NoError(t, err)
	require.Len(t, table, 1)

	// Both "Dia" and "Data Mov." match a date synonym; the leftmost
	// column wins.
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), table[0].Date)
}

func TestMissingColumns(t *testing.T) {
	raw := RawTable{
		Headers: []string{"Data", "Valor"},
		Rows:    [][]string{{"2024-03-01", "-10,00"}},
	}

	_, err := Standardize(raw)
	require.ErrorIs(t, err, models.ErrMissingColumns)
}

func TestRowWithoutResolvableAmountIsDropped(t *testing.T) {
	raw := RawTable{
		Headers: []string{"Data", "Descrição", "Valor"},
		Rows: [][]string{
			{"2024-03-01", "Compra", "n/a"},
			{"2024-03-02", "Depósito", "50,00"},
			{"2024-03-03", "Vazio", ""},
		},
	}

	table, err := Standardize(raw)
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, "Depósito", table[0].Description)
}

func TestUnparseableDateBecomesUnparsedMarker(t *testing.T) {
	raw := RawTable{
		Headers: []string{"Data", "Descrição", "Valor"},
		Rows: [][]string{
			{"não é data", "Compra A", "-10,00"},
			{"02/03/2024", "Compra B", "-20,00"},
		},
	}

	table, err := Standardize(raw)
	require.NoError(t, err)
	require.Len(t, table, 2)

	// Unparsed dates sort last and keep the raw cell text.
	assert.Equal(t, "Compra B", table[0].Description)
	assert.False(t, table[1].HasDate())
	assert.Equal(t, "não é data", table[1].RawDate)
}

func TestTypeDerivedFromSignOnly(t *testing.T) {
	// Keyword-bearing descriptions must not influence tabular rows; only
	// the amount sign decides.
	raw := RawTable{
		Headers: []string{"Data", "Descrição", "Valor"},
		Rows: [][]string{
			{"2024-03-01", "PAGAMENTO recebido", "80,00"},
			{"2024-03-02", "DEPÓSITO estornado", "-80,00"},
			{"2024-03-03", "Sem movimento", "0,00"},
		},
	}

	table, err := Standardize(raw)
	require.NoError(t, err)
	require.Len(t, table, 3)
	assert.Equal(t, models.TypeCredit, table[0].Type)
	assert.Equal(t, models.TypeDebit, table[1].Type)
	// Zero is not positive, so it lands on the debit side of the split.
	assert.Equal(t, models.TypeDebit, table[2].Type)
}

func TestPermissiveDateLayouts(t *testing.T) {
	tests := []struct {
		cell string
		want time.Time
	}{
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"01/03/2024", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"01.03.2024", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2024/03/01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			got, ok := parseCellDate(tt.cell)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
