// Package patterns holds the ordered date and amount pattern catalogs used
// by the text parser. Precedence is positional: the first pattern in a list
// that yields a usable match wins and lower-precedence patterns are not
// tried. Keeping the lists explicit makes the precedence testable on its
// own, without running the whole parser.
package patterns

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// DatePatterns in precedence order: DD/MM/YYYY, DD-MM-YYYY, YYYY-MM-DD.
var DatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{2}/\d{2}/\d{4}`),
	regexp.MustCompile(`\d{2}-\d{2}-\d{4}`),
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
}

// AmountPatterns in precedence order: plain decimal, currency-prefixed
// decimal, thousands-grouped European decimal.
var AmountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`-?\d+[.,]\d{2}`),
	regexp.MustCompile(`-?€\s*\d+[.,]\d{2}`),
	regexp.MustCompile(`-?\d{1,3}(?:\.\d{3})*,\d{2}`),
}

var spaceRun = regexp.MustCompile(`\s+`)

// FirstDate returns the first date substring found in the line, honoring
// catalog precedence, or "" when no pattern matches.
func FirstDate(line string) string {
	for _, p := range DatePatterns {
		if m := p.FindString(line); m != "" {
			return m
		}
	}
	return ""
}

// FirstAmount scans the amount catalog in precedence order and returns the
// first matched substring that normalizes to a valid decimal, along with
// the normalized value.
func FirstAmount(line string) (decimal.Decimal, string, bool) {
	for _, p := range AmountPatterns {
		for _, m := range p.FindAllString(line, -1) {
			if d, err := NormalizeAmount(m); err == nil {
				return d, m, true
			}
		}
	}
	return decimal.Zero, "", false
}

// NormalizeAmount converts a European-formatted amount string to a decimal:
// currency symbols and spaces are stripped, the thousands-separator dot is
// removed and the decimal comma becomes a decimal point. "1.234,56" parses
// to 1234.56 and "€ 45,00" to 45.00. The comma-decimal convention is the
// canonical one for text-derived amounts.
func NormalizeAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "") // non-breaking space
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(s)
}

// StripAll removes every substring matching any catalog pattern, in any
// precedence position, then collapses runs of whitespace and trims. The
// text parser uses it to derive the description from the raw line.
func StripAll(line string) string {
	for _, p := range DatePatterns {
		line = p.ReplaceAllString(line, "")
	}
	for _, p := range AmountPatterns {
		line = p.ReplaceAllString(line, "")
	}
	return CollapseSpaces(line)
}

// CollapseSpaces squeezes whitespace runs into single spaces and trims.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}
