package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// TxnType classifies a transaction as money out, money in, or unclassified.
type TxnType string

const (
	TypeDebit   TxnType = "DEBIT"
	TypeCredit  TxnType = "CREDIT"
	TypeUnknown TxnType = "UNKNOWN"
)

// Transaction represents a single normalized statement movement.
//
// Date carries the parsed calendar date; the zero value is the explicit
// "unparsed" marker and never an error. RawDate keeps the matched date
// substring so unparsed entries remain inspectable. The sign of Amount is
// the canonical debit/credit signal.
type Transaction struct {
	Date        time.Time       `json:"date"`
	RawDate     string          `json:"rawDate,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TxnType         `json:"type"`
	SourceFile  string          `json:"sourceFile,omitempty"` // batch context only
}

// New builds a transaction with the sign invariant applied at creation:
// DEBIT amounts are forced non-positive, CREDIT amounts non-negative.
// UNKNOWN keeps the sign exactly as extracted.
func New(rawDate, description string, amount decimal.Decimal, typ TxnType) Transaction {
	switch typ {
	case TypeDebit:
		if amount.IsPositive() {
			amount = amount.Neg()
		}
	case TypeCredit:
		amount = amount.Abs()
	}
	return Transaction{
		RawDate:     rawDate,
		Description: description,
		Amount:      amount,
		Type:        typ,
	}
}

// HasDate reports whether the date was successfully parsed.
func (t Transaction) HasDate() bool {
	return !t.Date.IsZero()
}

// Table is the canonical ordered transaction collection. It is rebuilt on
// every processing run and has no lifecycle beyond that run.
type Table []Transaction

// Sort orders the table ascending by date, with all unparsed-date rows
// after all parsed ones. The sort is stable, so rows keep their original
// extraction order as the secondary order.
func (t Table) Sort() {
	sort.SliceStable(t, func(i, j int) bool {
		a, b := t[i], t[j]
		if !a.HasDate() {
			return false
		}
		if !b.HasDate() {
			return true
		}
		return a.Date.Before(b.Date)
	})
}
