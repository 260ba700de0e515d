package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewAppliesSignInvariant(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		typ    TxnType
		want   string
	}{
		{"debit stays negative", "-45.67", TypeDebit, "-45.67"},
		{"debit forced negative", "45.67", TypeDebit, "-45.67"},
		{"credit stays positive", "100.00", TypeCredit, "100.00"},
		{"credit forced positive", "-100.00", TypeCredit, "100.00"},
		{"unknown keeps sign", "-15.50", TypeUnknown, "-15.50"},
		{"zero debit", "0", TypeDebit, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := New("", "x", dec(tt.amount), tt.typ)
			assert.Equal(t, tt.want, txn.Amount.StringFixed(2))
			assert.Equal(t, tt.typ, txn.Type)
		})
	}
}

func TestTableSort(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
	}

	table := Table{
		{Description: "unparsed-1", RawDate: "??"},
		{Description: "third", Date: day(9)},
		{Description: "first", Date: day(1)},
		{Description: "unparsed-2", RawDate: "??"},
		{Description: "second", Date: day(5)},
	}
	table.Sort()

	var order []string
	for _, txn := range table {
		order = append(order, txn.Description)
	}
	// Ascending by date, unparsed rows last, stable among themselves.
	assert.Equal(t, []string{"first", "second", "third", "unparsed-1", "unparsed-2"}, order)
}

func TestTableSortIsStableWithinDate(t *testing.T) {
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	table := Table{
		{Description: "a", Date: d},
		{Description: "b", Date: d},
		{Description: "c", Date: d},
	}
	table.Sort()

	assert.Equal(t, "a", table[0].Description)
	assert.Equal(t, "b", table[1].Description)
	assert.Equal(t, "c", table[2].Description)
}
