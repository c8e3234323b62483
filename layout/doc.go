// Package layout turns a document's page-level text geometry into a
// structured outline: a title plus an ordered list of headings with nesting
// level and page number.
//
// The analysis is purely heuristic and font-metric driven. A
// [SizeProfile] derives the dominant body font size and up to three ranked
// heading sizes from the whole document; [DetectTitle] picks the
// largest-font text on the upper part of page one; the [Classifier] decides,
// line by line, whether a line is a heading and at what level, using
// numbering prefixes, font-size rank, and boldness; [Build] orchestrates the
// pieces and assembles the final [model.Result].
//
// Everything here is deterministic and single-threaded per document: given
// identical span data, the result is identical across runs. De-duplication
// of emitted text is global to one document's run, so a heading repeated
// verbatim later in the document (a running section header, or a legitimately
// repeated subsection title) is emitted only once.
package layout
