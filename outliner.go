// Package outliner provides a fluent API for extracting the title and
// heading outline from PDF files.
//
// Basic usage:
//
//	result, warnings, err := outliner.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", outliner.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := outliner.Open("report.pdf").
//	    ClipMargin(0.05).
//	    TitleBand(0.5).
//	    Outline()
//
// For advanced use cases, the lower-level pdfdoc and layout packages are
// also available.
package outliner

import (
	"github.com/tsawler/outliner/model"
)

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The file is read lazily, when a terminal operation such as Outline() runs.
//
// Example:
//
//	result, warnings, err := outliner.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor from an already-built model.Document.
// This is useful when spans come from a source other than a PDF file, such
// as a structured-text dump decoded by the stext package.
//
// Example:
//
//	doc, err := stext.ReadFile("dump.json")
//	if err != nil {
//	    // handle error
//	}
//	result, _, err := outliner.FromDocument(doc).Outline()
func FromDocument(doc *model.Document) *Extractor {
	return &Extractor{
		document: doc,
		loaded:   true,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := outliner.Must(outliner.Open("document.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustOutline is a helper that wraps a call to Outline() and panics if the
// error is non-nil. It discards warnings and returns just the value.
// It is intended for use in scripts or tests where error handling would be
// cumbersome.
//
// Example:
//
//	result := outliner.MustOutline(outliner.Open("document.pdf").Outline())
func MustOutline[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
