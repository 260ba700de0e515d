// Package loader reads delimited-text and spreadsheet statement files into
// raw tables for standardization.
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/insightdelivered/statement-normalizer/internal/models"
	"github.com/insightdelivered/statement-normalizer/internal/tabular"
)

// csvEncodings are the candidate character encodings for delimited-text
// files, tried in order. The first candidate under which the file both
// decodes and parses into rows wins; earlier failed attempts are discarded
// silently. A nil encoding means validated UTF-8.
var csvEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"utf-8", nil},
	{"iso-8859-1", charmap.ISO8859_1},
	{"windows-1252", charmap.Windows1252},
}

// LoadCSV reads a delimited-text statement into a raw table. When every
// encoding candidate fails it returns ErrUnrecodableFile.
func LoadCSV(path string) (tabular.RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tabular.RawTable{}, err
	}

	var lastErr error
	for _, candidate := range csvEncodings {
		text, err := decodeWith(data, candidate.enc)
		if err != nil {
			lastErr = err
			continue
		}
		raw, err := parseDelimited(text)
		if err != nil {
			lastErr = fmt.Errorf("as %s: %w", candidate.name, err)
			continue
		}
		return raw, nil
	}

	return tabular.RawTable{}, fmt.Errorf("%w: %v", models.ErrUnrecodableFile, lastErr)
}

// decodeWith decodes the payload under the given encoding, failing when the
// bytes are not representable in it. charmap decoders substitute U+FFFD for
// unmapped bytes instead of erroring, so the replacement rune is treated as
// a decoding failure.
func decodeWith(data []byte, enc encoding.Encoding) (string, error) {
	if enc == nil {
		if !utf8.Valid(data) {
			return "", errors.New("invalid UTF-8 byte sequence")
		}
		return string(data), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", errors.New("unmapped byte in payload")
	}
	return string(out), nil
}

// parseDelimited parses decoded text into a raw table. The delimiter is
// sniffed from the header line since European bank exports commonly use
// semicolons.
func parseDelimited(text string) (tabular.RawTable, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = detectDelimiter(text)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return tabular.RawTable{}, err
	}
	if len(records) == 0 {
		return tabular.RawTable{}, errors.New("file has no rows")
	}

	return tabular.RawTable{Headers: records[0], Rows: records[1:]}, nil
}

// detectDelimiter picks the most frequent candidate separator in the first
// line, defaulting to a comma.
func detectDelimiter(text string) rune {
	header := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		header = text[:i]
	}

	delimiter := ','
	best := strings.Count(header, ",")
	for _, candidate := range []rune{';', '\t'} {
		if n := strings.Count(header, string(candidate)); n > best {
			best = n
			delimiter = candidate
		}
	}
	return delimiter
}
