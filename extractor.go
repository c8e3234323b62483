package outliner

import (
	"fmt"
	"strings"

	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/pdfdoc"
)

// Warning describes a non-fatal problem encountered while reading a
// document. Extraction continues past warnings; results may be partial.
type Warning = pdfdoc.Warning

// FormatWarnings joins warnings into a single human-readable string,
// one warning per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}

// Extractor provides a fluent interface for extracting titles and outlines
// from PDF documents. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string

	// Parsed document, populated lazily from filename unless the
	// Extractor was built with FromDocument.
	document *model.Document
	loaded   bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during loading
	warnings []Warning
}

// clone creates a copy of the Extractor with a copy of its options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		document: e.document,
		loaded:   e.loaded,
		options:  e.options.clone(),
		err:      e.err,
		warnings: append([]Warning(nil), e.warnings...),
	}
}

// ensureDocument loads the source file if it has not been loaded yet.
func (e *Extractor) ensureDocument() error {
	if e.loaded {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	doc, warnings, err := pdfdoc.Load(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.document = doc
	e.warnings = append(e.warnings, warnings...)
	e.loaded = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	e.document = nil
	e.loaded = false
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// ClipMargin sets the fraction of the page height excluded from the top and
// bottom of every page before heading classification. Lines whose bounding
// box crosses the margin are skipped. The default is 0.10.
//
// Example:
//
//	result, _, err := outliner.Open("doc.pdf").ClipMargin(0.05).Outline()
func (e *Extractor) ClipMargin(ratio float64) *Extractor {
	newExt := e.clone()
	if ratio < 0 || ratio >= 0.5 {
		newExt.err = fmt.Errorf("clip margin %v out of range [0, 0.5)", ratio)
		return newExt
	}
	newExt.options.clipMargin = ratio
	return newExt
}

// TitleBand sets the fraction of the first page's height searched for the
// title. Blocks ending below the band are not title candidates. The default
// is 0.70.
//
// Example:
//
//	result, _, err := outliner.Open("doc.pdf").TitleBand(0.5).Outline()
func (e *Extractor) TitleBand(ratio float64) *Extractor {
	newExt := e.clone()
	if ratio <= 0 || ratio > 1 {
		newExt.err = fmt.Errorf("title band %v out of range (0, 1]", ratio)
		return newExt
	}
	newExt.options.titleBand = ratio
	return newExt
}

// MaxRankedSizes sets how many font size tiers above the body size map to
// heading levels, from largest down. Values outside 1-3 fall back to the
// default of 3.
//
// Example:
//
//	result, _, err := outliner.Open("doc.pdf").MaxRankedSizes(2).Outline()
func (e *Extractor) MaxRankedSizes(n int) *Extractor {
	newExt := e.clone()
	newExt.options.maxRankedSizes = n
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Outline extracts the document title and heading outline.
// This is a terminal operation that releases the parsed document.
//
// Returns the result, any warnings encountered while reading the file, and
// an error if the file could not be read at all. Warnings indicate non-fatal
// issues (e.g., a page whose content could not be decoded) where extraction
// succeeded but results may be incomplete.
//
// Example:
//
//	result, warnings, err := outliner.Open("document.pdf").Outline()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", outliner.FormatWarnings(warnings))
//	}
func (e *Extractor) Outline() (model.Result, []Warning, error) {
	if e.err != nil {
		return model.Result{}, nil, e.err
	}

	if err := e.ensureDocument(); err != nil {
		return model.Result{}, nil, err
	}
	defer e.Close()

	result := layout.Build(e.document, e.options.config())
	return result, e.warnings, nil
}

// Title extracts just the document title.
// This is a terminal operation that releases the parsed document.
//
// Example:
//
//	title, warnings, err := outliner.Open("document.pdf").Title()
func (e *Extractor) Title() (string, []Warning, error) {
	result, warnings, err := e.Outline()
	if err != nil {
		return "", warnings, err
	}
	return result.Title, warnings, nil
}

// PageCount returns the total number of pages in the document.
// Note: This does NOT release the document, allowing further operations.
//
// Example:
//
//	ext := outliner.Open("document.pdf")
//	defer ext.Close()
//	count, err := ext.PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	if err := e.ensureDocument(); err != nil {
		return 0, err
	}

	return e.document.PageCount(), nil
}
