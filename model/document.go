package model

import "strings"

// Span is a run of text sharing one font face and size within a line.
// Spans are immutable once built; span sources create them and the layout
// analysis only reads them.
type Span struct {
	Text string  // Raw text content
	Size float64 // Font size in points, unrounded
	Font string  // Font descriptor as reported by the source (name plus style markers)
	BBox Rect    // Bounding box in page coordinates
}

// Line is an ordered sequence of spans in left-to-right reading order.
type Line struct {
	Spans []Span
	BBox  Rect
}

// Text returns the line's full text: span texts joined with single spaces,
// trimmed at both ends.
func (l Line) Text() string {
	parts := make([]string, len(l.Spans))
	for i, s := range l.Spans {
		parts[i] = s.Text
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Rep returns the line's representative span, the first one, which supplies
// the font size and weight used when classifying the whole line.
func (l Line) Rep() (Span, bool) {
	if len(l.Spans) == 0 {
		return Span{}, false
	}
	return l.Spans[0], true
}

// Block is an ordered sequence of lines, typically one visual paragraph or
// text column fragment as reported by the span source.
type Block struct {
	Lines []Line
	BBox  Rect
}

// Page represents a single page: its dimensions and its blocks in reading
// order.
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points
	Height float64 // Page height in points
	Blocks []Block // Ordered list of text blocks
}

// NewPage creates a new page with the given dimensions.
func NewPage(width, height float64) *Page {
	return &Page{
		Width:  width,
		Height: height,
		Blocks: make([]Block, 0),
	}
}

// AddBlock appends a block to the page.
func (p *Page) AddBlock(b Block) {
	p.Blocks = append(p.Blocks, b)
}

// SpanCount returns the number of spans on the page.
func (p *Page) SpanCount() int {
	n := 0
	for _, b := range p.Blocks {
		for _, l := range b.Lines {
			n += len(l.Spans)
		}
	}
	return n
}

// Document represents a complete document as an ordered sequence of pages.
type Document struct {
	Pages []*Page
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document and assigns its 1-based number.
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed), or nil if out of range.
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}
