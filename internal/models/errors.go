package models

import "errors"

// Error taxonomy for statement processing. The single-document API surfaces
// every one of these to its caller; the directory API absorbs all of them
// per file and only ever fails with ErrNoDirectory.
var (
	// ErrNotFound means the input path does not exist.
	ErrNotFound = errors.New("statement file not found")

	// ErrUnsupportedFormat means the file extension is outside the
	// supported set (.pdf, .csv, .xlsx, .xls).
	ErrUnsupportedFormat = errors.New("unsupported statement format")

	// ErrExtractionFailed means both the text-layer and OCR collaborators
	// failed to produce usable text for a document input.
	ErrExtractionFailed = errors.New("no usable text extracted from document")

	// ErrUnrecodableFile means every candidate character encoding failed
	// for a delimited-text input.
	ErrUnrecodableFile = errors.New("could not read file with any known encoding")

	// ErrMissingColumns means the tabular standardizer could not resolve
	// one or more of the canonical date/amount/description columns.
	ErrMissingColumns = errors.New("could not identify required columns")

	// ErrNoDirectory means the batch entry point was invoked without a
	// target directory and no default was configured.
	ErrNoDirectory = errors.New("no directory specified")
)
