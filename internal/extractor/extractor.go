// Package extractor obtains flattened text streams from document-format
// statements. The processor depends only on the two collaborator
// interfaces; the implementations here shell out to the PDF text layer and
// to OCR tooling.
package extractor

// TextExtractor pulls the embedded text layer out of a document. An error
// or an empty result tells the caller to fall back to OCR.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// OCRExtractor rasterizes a document and recognizes text page by page,
// returning the page texts concatenated in page order. lang is a language
// hint for the recognizer (e.g. "por", "eng").
type OCRExtractor interface {
	ExtractOCR(path, lang string) (string, error)
}
