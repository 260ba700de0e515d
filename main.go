package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/insightdelivered/statement-normalizer/internal/api"
	"github.com/insightdelivered/statement-normalizer/internal/lexicon"
	"github.com/insightdelivered/statement-normalizer/internal/logger"
	"github.com/insightdelivered/statement-normalizer/internal/models"
	"github.com/insightdelivered/statement-normalizer/internal/processor"
	"github.com/insightdelivered/statement-normalizer/internal/writer"
)

const version = "1.0.0"

func main() {
	dirFlag := flag.String("dir", "", "Directory of statements to process as a batch")
	outputFlag := flag.String("output", "", "Output CSV path (defaults to stdout)")
	localeFlag := flag.String("locale", "pt", "Indicator lexicon locale for text statements")
	ocrLangFlag := flag.String("ocr-lang", "por", "Language hint passed to the OCR engine")
	lexiconFlag := flag.String("lexicon", "", "JSON file overriding the built-in indicator lexicon")
	serveFlag := flag.String("serve", "", "Start the HTTP API on this address instead of converting (e.g. :8080)")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Bank Statement Normalizer

Extracts and normalizes transactions from bank statements in PDF, CSV
and Excel formats into one canonical table.

Usage:
  statement-normalizer [flags] <statement.pdf> [statement2.csv ...]
  statement-normalizer --dir=statements/

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Normalize one statement to stdout
  statement-normalizer statement.pdf

  # Batch a directory, tolerating broken files, into one CSV
  statement-normalizer --dir=statements/ --output=transactions.csv

  # Portuguese OCR with a custom keyword lexicon
  statement-normalizer --lexicon=keywords.json --ocr-lang=por scan.pdf
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("statement-normalizer v%s\n", version)
		return
	}

	log := logger.New()

	lex := lexicon.Default()
	if *lexiconFlag != "" {
		var err error
		if lex, err = lexicon.Load(*lexiconFlag); err != nil {
			log.Fatal().Err(err).Msg("could not load lexicon")
		}
	}

	proc := processor.New(processor.Config{
		InputDir: *dirFlag,
		Locale:   *localeFlag,
		OCRLang:  *ocrLangFlag,
		Lexicon:  lex,
		Logger:   &log,
	})

	if *serveFlag != "" {
		app := fiber.New()
		h := &api.Handler{Proc: proc, Log: log}
		h.Register(app)
		log.Info().Str("addr", *serveFlag).Msg("serving HTTP API")
		if err := app.Listen(*serveFlag); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
		return
	}

	if *dirFlag == "" && flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Directory batches are tolerant; explicit file arguments are strict.
	var table models.Table
	if *dirFlag != "" {
		var err error
		table, err = proc.ProcessDirectory(*dirFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("batch failed")
		}
	} else {
		for _, path := range flag.Args() {
			part, err := proc.ProcessStatement(path)
			if err != nil {
				log.Fatal().Err(err).Str("file", path).Msg("processing failed")
			}
			for i := range part {
				part[i].SourceFile = filepath.Base(path)
			}
			table = append(table, part...)
		}
		table.Sort()
	}

	if *outputFlag == "" {
		if err := writer.Write(os.Stdout, table); err != nil {
			log.Fatal().Err(err).Msg("could not write output")
		}
		return
	}
	if err := writer.WriteFile(*outputFlag, table); err != nil {
		log.Fatal().Err(err).Msg("could not write output")
	}
	log.Info().Int("transactions", len(table)).Str("output", *outputFlag).Msg("done")
}
