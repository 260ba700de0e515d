// Package textparse converts a flattened statement text stream into
// normalized transactions. It works strictly line by line: no table or
// multi-column layout reconstruction is attempted.
package textparse

import (
	"strings"
	"time"

	"github.com/insightdelivered/statement-normalizer/internal/lexicon"
	"github.com/insightdelivered/statement-normalizer/internal/models"
	"github.com/insightdelivered/statement-normalizer/internal/patterns"
)

// StatementDateLayout is the fixed day/month/year layout record dates are
// finalized against. Date strings that do not conform stay unparsed.
const StatementDateLayout = "02/01/2006"

// carriedDate is the single-slot date memory of the line scanner: a
// dateless line inherits the most recent date seen above it. The slot is
// reset at the start of each document.
type carriedDate struct {
	value string
	set   bool
}

func (c *carriedDate) carry(v string) {
	c.value = v
	c.set = true
}

func (c *carriedDate) current() (string, bool) {
	return c.value, c.set
}

// Parser turns loosely structured statement text into a transaction table.
type Parser struct {
	keywords lexicon.Keywords
}

// New returns a parser classifying against the given indicator keywords.
func New(keywords lexicon.Keywords) *Parser {
	return &Parser{keywords: keywords}
}

// Parse processes the text one line at a time and returns the table sorted
// ascending by date with unparsed dates last. Identical input always
// produces an identical table.
//
// Per line: detect a date (catalog precedence, first occurrence) or inherit
// the carried one — a line with neither is not a transaction and is
// skipped. Then detect an amount the same way; no parseable amount also
// skips the line. The description is the line with every date and amount
// match stripped, and the indicator lexicon classifies it, forcing the
// amount sign to agree with the classification.
func (p *Parser) Parse(text string) models.Table {
	var table models.Table
	var carried carriedDate

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		date := patterns.FirstDate(line)
		if date != "" {
			carried.carry(date)
		} else {
			var ok bool
			if date, ok = carried.current(); !ok {
				continue
			}
		}

		amount, _, ok := patterns.FirstAmount(line)
		if !ok {
			continue
		}

		desc := patterns.StripAll(line)
		typ := p.keywords.Classify(desc)
		table = append(table, models.New(date, desc, amount, typ))
	}

	finalizeDates(table)
	table.Sort()
	return table
}

// finalizeDates parses each record's raw date string against the fixed
// statement layout. Nonconforming strings leave the zero-value unparsed
// marker in place rather than failing.
func finalizeDates(table models.Table) {
	for i := range table {
		if t, err := time.Parse(StatementDateLayout, table[i].RawDate); err == nil {
			table[i].Date = t
		}
	}
}
