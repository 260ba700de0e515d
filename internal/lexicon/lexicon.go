// Package lexicon provides the locale-keyed indicator keyword sets used to
// classify free-text transactions as debits or credits. The sets are data,
// not control flow: adding a locale means adding entries, not touching the
// parser.
package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/insightdelivered/statement-normalizer/internal/models"
)

// Keywords holds the indicator sets for one locale. Matching is
// case-insensitive substring; order within a set does not matter.
type Keywords struct {
	Debit  []string `json:"debit"`
	Credit []string `json:"credit"`
}

// Lexicon maps a locale code to its indicator keywords.
type Lexicon map[string]Keywords

// DefaultLocale is used when a requested locale has no entry.
const DefaultLocale = "pt"

// Default returns the built-in lexicon.
func Default() Lexicon {
	return Lexicon{
		"pt": {
			Debit:  []string{"DB", "DÉBITO", "DEBITO", "PAGAMENTO", "COMPRA", "LEVANTAMENTO"},
			Credit: []string{"CR", "CRÉDITO", "CREDITO", "DEPÓSITO", "DEPOSITO", "TRANSFERÊNCIA RECEBIDA"},
		},
		"en": {
			Debit:  []string{"CARD PAYMENT", "DIRECT DEBIT", "WITHDRAWAL", "STANDING ORDER", "PURCHASE", "FEE", "CHARGE"},
			Credit: []string{"DEPOSIT", "REFUND", "INTEREST PAID", "TRANSFER RECEIVED", "SALARY"},
		},
	}
}

// Load reads a JSON lexicon file and merges its locales over the built-in
// defaults, so a config file only needs to carry the locales it changes.
func Load(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon %q: %w", path, err)
	}
	var overrides Lexicon
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing lexicon %q: %w", path, err)
	}
	lex := Default()
	for locale, kw := range overrides {
		lex[locale] = kw
	}
	return lex, nil
}

// ForLocale returns the keywords for a locale, falling back to the default
// locale for unknown codes.
func (l Lexicon) ForLocale(locale string) Keywords {
	if kw, ok := l[locale]; ok {
		return kw
	}
	return l[DefaultLocale]
}

// Classify reports the transaction type indicated by a description. Debit
// keywords are checked before credit keywords: a description matching both
// sets classifies as DEBIT. The tie-break is fixed, not incidental.
func (k Keywords) Classify(description string) models.TxnType {
	upper := strings.ToUpper(description)
	for _, kw := range k.Debit {
		if strings.Contains(upper, strings.ToUpper(kw)) {
			return models.TypeDebit
		}
	}
	for _, kw := range k.Credit {
		if strings.Contains(upper, strings.ToUpper(kw)) {
			return models.TypeCredit
		}
	}
	return models.TypeUnknown
}
