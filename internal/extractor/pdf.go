package extractor

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// PDFTextLayer extracts the embedded text layer of a PDF. It tries the
// structured library first and falls back to the external pdftotext
// command (poppler-utils) for files the library cannot decode. Image-only
// PDFs legitimately yield no text here; that is the OCR fallback's job,
// not an error condition to paper over.
type PDFTextLayer struct{}

// ExtractText returns the document's flattened text, pages joined by
// newlines. Unreadable output is discarded rather than returned: garbage
// from identity-encoded fonts would otherwise poison the line parser.
func (PDFTextLayer) ExtractText(path string) (string, error) {
	text, libErr := extractWithLibrary(path)
	if libErr == nil && readable(text) {
		return text, nil
	}

	text, popplerErr := extractWithPdftotext(path)
	if popplerErr == nil && readable(text) {
		return text, nil
	}

	if libErr != nil {
		return "", fmt.Errorf("text layer extraction failed: %v", libErr)
	}
	return "", nil
}

// extractWithLibrary pulls text with ledongthuc/pdf, preferring row-ordered
// extraction and falling back to whole-document plain text. The library
// panics on some malformed files, hence the recover.
func extractWithLibrary(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library panicked: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if r.NumPage() == 0 {
		return "", fmt.Errorf("document has no pages")
	}

	if text := extractByRow(r); readable(text) {
		return text, nil
	}

	reader, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func extractByRow(r *pdf.Reader) string {
	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return strings.Join(pages, "\n")
}

// extractWithPdftotext shells out to poppler-utils for PDFs the Go library
// cannot handle.
func extractWithPdftotext(path string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not available: %v", err)
	}
	out, err := exec.Command("pdftotext", "-layout", path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %v", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// readable reports whether extracted text is long enough and mostly made of
// plain readable characters. Strict ASCII plus currency marks is
// intentional: unicode.IsLetter also accepts the accented garbage produced
// by custom font encodings.
func readable(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= 50 {
		return false
	}

	total, ok := 0, 0
	for _, r := range trimmed {
		total++
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			ok++
		case unicode.IsSpace(r):
			ok++
		case strings.ContainsRune(`.,-/:;()'"€£$%&@#!?+=*`, r):
			ok++
		}
	}
	return float64(ok)/float64(total) > 0.6
}
