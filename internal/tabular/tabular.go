// Package tabular standardizes arbitrary-column statement tables onto the
// canonical transaction schema.
package tabular

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/statement-normalizer/internal/models"
)

// RawTable is an as-loaded table: a header row plus data rows, with no
// schema assumptions.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// fieldSynonyms maps each canonical field to the lowercase tokens accepted
// as a column-name match, in priority order. Matching is case-insensitive
// substring; the first column left-to-right that matches any token is
// selected for the field.
var fieldSynonyms = map[string][]string{
	"date":        {"date", "data", "dia"},
	"amount":      {"amount", "valor", "montante", "quantia"},
	"description": {"desc", "texto", "detalhe"},
}

// dateLayouts are tried in order when parsing tabular dates. Tabular
// sources carry no fixed convention, so parsing is deliberately permissive.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"01-02-2006",
	"2006/01/02",
	"02.01.2006",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
}

// Standardize maps a raw table onto the canonical schema and returns the
// sorted transaction table. It fails with ErrMissingColumns when any of
// the three canonical fields has no matching column.
//
// The type of each row is derived purely from the sign of its amount; the
// indicator lexicon is not consulted here: tabular sources already carry a
// reliable signed amount.
func Standardize(raw RawTable) (models.Table, error) {
	dateCol := resolveColumn(raw.Headers, "date")
	amountCol := resolveColumn(raw.Headers, "amount")
	descCol := resolveColumn(raw.Headers, "description")
	if dateCol < 0 || amountCol < 0 || descCol < 0 {
		return nil, fmt.Errorf("%w in %v", models.ErrMissingColumns, raw.Headers)
	}

	table := make(models.Table, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		amount, err := parseCellAmount(cell(row, amountCol))
		if err != nil {
			// No resolvable amount: the row is not a transaction.
			continue
		}

		typ := models.TypeDebit
		if amount.IsPositive() {
			typ = models.TypeCredit
		}

		rawDate := cell(row, dateCol)
		txn := models.New(rawDate, cell(row, descCol), amount, typ)
		if d, ok := parseCellDate(rawDate); ok {
			txn.Date = d
		}
		table = append(table, txn)
	}

	table.Sort()
	return table, nil
}

// resolveColumn returns the index of the first column whose name contains
// any synonym for the field, or -1 when none matches.
func resolveColumn(headers []string, field string) int {
	for i, header := range headers {
		name := strings.ToLower(strings.TrimSpace(header))
		for _, syn := range fieldSynonyms[field] {
			if strings.Contains(name, syn) {
				return i
			}
		}
	}
	return -1
}

// parseCellAmount coerces a tabular amount cell to a decimal. Tabular
// amounts use a dot-decimal convention with only the decimal comma
// rewritten, unlike the text path's full European normalization.
func parseCellAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(s)
}

// parseCellDate tries each permissive layout in order. A cell no layout
// accepts yields the unparsed marker, never an error.
func parseCellDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
