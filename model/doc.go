// Package model provides the intermediate representation (IR) for document
// text geometry and for extracted outlines.
//
// This package defines the user-facing data structures that span sources
// produce and that the layout analysis consumes, making them the primary API
// for feeding and reading the outline pipeline.
//
// # Document Structure
//
// The [Document] type represents a complete document as an ordered list of
// pages:
//
//	doc := model.NewDocument()
//	doc.AddPage(page)
//
// Each [Page] carries its dimensions and an ordered list of [Block] values.
// Blocks contain [Line] values, and lines contain [Span] values, mirroring
// the block/line/span hierarchy that structured text extraction produces.
//
// # Geometry
//
// The [Rect] type is a bounding box in page coordinates with the origin at
// the top-left corner and Y growing downward, matching the coordinate space
// reported by structured text sources. All vertical band calculations (title
// band, header/footer margins) read directly off Rect edges.
//
// # Outline
//
// The [Result] type is the output contract: a document title plus an ordered
// list of [OutlineEntry] values, each with a [Level] (H1-H4), normalized
// text, and a 1-based page number. Result serializes to the stable JSON
// shape downstream consumers rely on.
package model
