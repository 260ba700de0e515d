// Package processor routes statement files to the right parser and drives
// whole-directory batches.
//
// The two entry points deliberately carry different error contracts:
// ProcessStatement surfaces every failure to its caller, while
// ProcessDirectory absorbs per-file failures into log entries and empty
// contributions, failing only when no target directory is available.
package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/insightdelivered/statement-normalizer/internal/extractor"
	"github.com/insightdelivered/statement-normalizer/internal/lexicon"
	"github.com/insightdelivered/statement-normalizer/internal/loader"
	"github.com/insightdelivered/statement-normalizer/internal/logger"
	"github.com/insightdelivered/statement-normalizer/internal/models"
	"github.com/insightdelivered/statement-normalizer/internal/tabular"
	"github.com/insightdelivered/statement-normalizer/internal/textparse"
)

// supportedExtensions is the dispatchable statement format set. Suffix
// matching is case-insensitive.
var supportedExtensions = map[string]bool{
	".pdf":  true,
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

// Config holds the processor's collaborators and defaults. Zero-value
// fields fall back to the built-in implementations.
type Config struct {
	InputDir string // default directory for ProcessDirectory("")
	Locale   string // indicator lexicon locale, default "pt"
	OCRLang  string // language hint for the OCR collaborator, default "por"

	Lexicon lexicon.Lexicon
	Text    extractor.TextExtractor
	OCR     extractor.OCRExtractor
	Logger  *zerolog.Logger
}

// Processor dispatches single statements and aggregates directories.
// Processing is fully synchronous: files, extraction calls and parses run
// strictly in sequence. A hung extraction collaborator therefore blocks
// the whole batch — a known limitation of an offline batch tool, there is
// no cancellation model.
type Processor struct {
	inputDir string
	locale   string
	ocrLang  string

	lex  lexicon.Lexicon
	text extractor.TextExtractor
	ocr  extractor.OCRExtractor
	log  zerolog.Logger
}

// New builds a processor, filling unset config fields with defaults.
func New(cfg Config) *Processor {
	p := &Processor{
		inputDir: cfg.InputDir,
		locale:   cfg.Locale,
		ocrLang:  cfg.OCRLang,
		lex:      cfg.Lexicon,
		text:     cfg.Text,
		ocr:      cfg.OCR,
	}
	if p.locale == "" {
		p.locale = lexicon.DefaultLocale
	}
	if p.ocrLang == "" {
		p.ocrLang = "por"
	}
	if p.lex == nil {
		p.lex = lexicon.Default()
	}
	if p.text == nil {
		p.text = extractor.PDFTextLayer{}
	}
	if p.ocr == nil {
		p.ocr = extractor.TesseractOCR{}
	}
	if cfg.Logger != nil {
		p.log = *cfg.Logger
	} else {
		p.log = logger.New()
	}
	return p
}

// ProcessStatement parses one statement file into a canonical table. This
// is the strict single-document contract: every failure is returned. The
// only side effect is reading the input.
func (p *Processor) ProcessStatement(path string) (models.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", models.ErrNotFound, path)
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return p.processDocument(path)
	case ".csv":
		raw, err := loader.LoadCSV(path)
		if err != nil {
			return nil, err
		}
		return tabular.Standardize(raw)
	case ".xlsx", ".xls":
		raw, err := loader.LoadWorkbook(path)
		if err != nil {
			return nil, err
		}
		return tabular.Standardize(raw)
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// processDocument obtains a flattened text stream and runs the text parser
// over it. The embedded text layer is tried first; OCR is the fallback
// when the layer is missing or empty. Both failing is fatal for the
// document, since no further fallback exists.
func (p *Processor) processDocument(path string) (models.Table, error) {
	text, err := p.text.ExtractText(path)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			p.log.Warn().Err(err).Str("file", path).Msg("text layer unavailable, trying OCR")
		}
		text, err = p.ocr.ExtractOCR(path, p.ocrLang)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrExtractionFailed, err)
		}
	}

	parser := textparse.New(p.lex.ForLocale(p.locale))
	return parser.Parse(text), nil
}

// ProcessDirectory parses every supported statement in the directory
// (non-recursive, directory-listing order) and merges the results into one
// table re-sorted by date. Per-file failures of any kind are logged and
// contribute nothing; an empty parse also contributes nothing. Successful
// rows are stamped with their source file name. A directory yielding no
// contributions returns an empty table, not an error.
//
// When dir is empty the configured default directory is used; with neither
// available the call fails with ErrNoDirectory.
func (p *Processor) ProcessDirectory(dir string) (models.Table, error) {
	if dir == "" {
		dir = p.inputDir
	}
	if dir == "" {
		return nil, models.ErrNoDirectory
	}

	merged := models.Table{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		p.log.Error().Err(err).Str("dir", dir).Msg("could not list directory")
		return merged, nil
	}

	for _, entry := range entries {
		if entry.IsDir() || !supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		table, err := p.ProcessStatement(path)
		if err != nil {
			p.log.Error().Err(err).Str("file", entry.Name()).Msg("statement skipped")
			continue
		}
		if len(table) == 0 {
			continue
		}

		for i := range table {
			table[i].SourceFile = entry.Name()
		}
		merged = append(merged, table...)
	}

	merged.Sort()
	return merged, nil
}
