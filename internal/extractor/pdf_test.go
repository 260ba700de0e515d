package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadable(t *testing.T) {
	statement := strings.Repeat("15/03/2024 COMPRA SUPERMERCADO 45,67\n", 3)
	garbage := strings.Repeat("Þþ«»Ððæ¶", 20)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"whitespace only", "   \n\t  ", false},
		{"too short", "15/03/2024 COMPRA 45,67", false},
		{"statement text", statement, true},
		{"euro amounts", strings.Repeat("16/03/2024 DEPOSITO € 100,00\n", 3), true},
		{"font-encoding garbage", garbage, false},
		{"garbage outweighs text", statement[:40] + garbage, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readable(tt.text))
		})
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	_, err := PDFTextLayer{}.ExtractText("does-not-exist.pdf")
	assert.Error(t, err)
}
