package extractor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// TesseractOCR recognizes text in image-based statements by rasterizing
// pages with pdftoppm and running tesseract over each page image.
// Requires poppler-utils and tesseract-ocr on PATH.
type TesseractOCR struct{}

// ExtractOCR converts the document's pages to images and OCRs them one by
// one, returning the recognized text concatenated in page order. Pages
// that fail recognition are skipped; only a fully empty result is an
// error, since there is no further fallback after OCR.
func (TesseractOCR) ExtractOCR(path, lang string) (string, error) {
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		return "", fmt.Errorf("pdftoppm not available (install poppler-utils): %v", err)
	}
	if _, err := exec.LookPath("tesseract"); err != nil {
		return "", fmt.Errorf("tesseract not available (install tesseract-ocr): %v", err)
	}
	if lang == "" {
		lang = "por"
	}

	tmpDir, err := os.MkdirTemp("", "statement-ocr-*")
	if err != nil {
		return "", fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	// 300 DPI gives tesseract enough resolution for statement body text.
	prefix := filepath.Join(tmpDir, "page")
	if out, err := exec.Command("pdftoppm", "-r", "300", "-png", path, prefix).CombinedOutput(); err != nil {
		return "", fmt.Errorf("pdftoppm failed: %v (%s)", err, strings.TrimSpace(string(out)))
	}

	images, err := pageImages(tmpDir)
	if err != nil {
		return "", err
	}
	if len(images) == 0 {
		return "", fmt.Errorf("pdftoppm produced no page images")
	}

	var pages []string
	for _, img := range images {
		outBase := strings.TrimSuffix(img, ".png")
		// PSM 4: single column of variable-size text, the usual statement shape.
		if _, err := exec.Command("tesseract", img, outBase, "-l", lang, "--psm", "4").CombinedOutput(); err != nil {
			continue
		}
		data, err := os.ReadFile(outBase + ".txt")
		if err != nil {
			continue
		}
		if text := strings.TrimSpace(string(data)); text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return "", fmt.Errorf("OCR produced no text from %d page images", len(images))
	}
	return strings.Join(pages, "\n"), nil
}

// pageImages lists the rasterized page files in page order. pdftoppm
// zero-pads page numbers, so a lexical sort is a page-order sort.
func pageImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading temp dir: %w", err)
	}
	var images []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".png") {
			images = append(images, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(images)
	return images, nil
}
