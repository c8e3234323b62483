// Package pdfdoc adapts a PDF text backend into the outliner document
// model.
//
// The backend (github.com/ledongthuc/pdf) reports text as positioned runs
// with font name and size. This package converts those runs into the
// block/line/span hierarchy the layout analysis consumes: runs are grouped
// into rows by baseline, rows into spans by font changes, and rows into
// blocks by vertical gaps, all in top-left-origin page coordinates.
package pdfdoc

import (
	"fmt"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
)

// Warning describes a non-fatal problem encountered while reading a page.
// Extraction continued; the affected page may be missing text.
type Warning struct {
	Page    int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("page %d: %s", w.Page, w.Message)
}

// Letter-size fallback when a page carries no usable MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// wordGapFactor is the fraction of the font size a horizontal gap between
// runs must exceed before a space is inserted between them.
const wordGapFactor = 0.3

// blockGapFactor is the multiple of the font size a vertical gap between
// rows must exceed to start a new block.
const blockGapFactor = 1.8

// Load reads the PDF at path and converts its text geometry into a
// model.Document. Pages that fail to extract are kept (empty) so page
// numbering stays 1-based and stable, and are reported as warnings.
func Load(path string) (*model.Document, []Warning, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	doc := model.NewDocument()
	var warnings []Warning

	total := reader.NumPage()
	for n := 1; n <= total; n++ {
		page, warn := loadPage(reader, n)
		if warn != nil {
			warnings = append(warnings, *warn)
		}
		doc.AddPage(page)
	}

	return doc, warnings, nil
}

// loadPage extracts one page. The backend panics on some malformed content
// streams, so extraction is fenced with a recover; the page comes back
// empty with a warning in that case.
func loadPage(reader *pdflib.Reader, n int) (page *model.Page, warn *Warning) {
	page = model.NewPage(defaultPageWidth, defaultPageHeight)

	defer func() {
		if r := recover(); r != nil {
			warn = &Warning{Page: n, Message: fmt.Sprintf("content extraction failed: %v", r)}
		}
	}()

	p := reader.Page(n)
	if p.V.IsNull() {
		return page, &Warning{Page: n, Message: "page object missing"}
	}

	if w, h, ok := mediaBox(p); ok {
		page.Width = w
		page.Height = h
	}

	rows, err := p.GetTextByRow()
	if err != nil {
		return page, &Warning{Page: n, Message: fmt.Sprintf("text extraction failed: %v", err)}
	}

	lines := buildLines(rows, page.Height)
	for _, block := range buildBlocks(lines) {
		page.AddBlock(block)
	}
	return page, nil
}

// mediaBox resolves a page's MediaBox, walking up the page tree for
// inherited values.
func mediaBox(p pdflib.Page) (width, height float64, ok bool) {
	node := p.V
	box := node.Key("MediaBox")
	for box.IsNull() {
		node = node.Key("Parent")
		if node.IsNull() {
			return 0, 0, false
		}
		box = node.Key("MediaBox")
	}
	if box.Len() != 4 {
		return 0, 0, false
	}

	x0 := box.Index(0).Float64()
	y0 := box.Index(1).Float64()
	x1 := box.Index(2).Float64()
	y1 := box.Index(3).Float64()
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, false
	}
	return x1 - x0, y1 - y0, true
}

// buildLines converts backend rows into model lines. Row baselines arrive
// in PDF bottom-up coordinates; everything is flipped to top-origin here.
func buildLines(rows pdflib.Rows, pageHeight float64) []model.Line {
	var lines []model.Line
	for _, row := range rows {
		if row == nil || len(row.Content) == 0 {
			continue
		}

		runs := append([]pdflib.Text(nil), row.Content...)
		sort.SliceStable(runs, func(i, j int) bool { return runs[i].X < runs[j].X })

		line := model.Line{Spans: groupSpans(runs, pageHeight)}
		if len(line.Spans) == 0 {
			continue
		}

		line.BBox = line.Spans[0].BBox
		for _, s := range line.Spans[1:] {
			line.BBox = line.BBox.Union(s.BBox)
		}
		lines = append(lines, line)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].BBox.Y0 != lines[j].BBox.Y0 {
			return lines[i].BBox.Y0 < lines[j].BBox.Y0
		}
		return lines[i].BBox.X0 < lines[j].BBox.X0
	})
	return lines
}

// groupSpans splits a row's runs into spans wherever the font face or size
// changes, inserting spaces across word-sized horizontal gaps.
func groupSpans(runs []pdflib.Text, pageHeight float64) []model.Span {
	var spans []model.Span

	var sb strings.Builder
	var cur pdflib.Text
	started := false
	x0, x1 := 0.0, 0.0
	flush := func() {
		if !started {
			return
		}
		text := layout.NormalizeText(sb.String())
		if strings.TrimSpace(text) != "" {
			top := pageHeight - cur.Y - cur.FontSize
			spans = append(spans, model.Span{
				Text: text,
				Size: cur.FontSize,
				Font: cur.Font,
				BBox: model.NewRect(x0, top, x1, pageHeight-cur.Y),
			})
		}
		sb.Reset()
		started = false
	}

	for _, run := range runs {
		if run.S == "" {
			continue
		}
		if started && (run.Font != cur.Font || run.FontSize != cur.FontSize) {
			flush()
		}
		if !started {
			cur = run
			x0 = run.X
			x1 = run.X + run.W
			started = true
			sb.WriteString(run.S)
			continue
		}
		if gap := run.X - x1; gap > wordGapFactor*cur.FontSize {
			sb.WriteByte(' ')
		}
		sb.WriteString(run.S)
		if end := run.X + run.W; end > x1 {
			x1 = end
		}
	}
	flush()

	return spans
}

// buildBlocks groups consecutive lines into blocks, breaking on vertical
// gaps wide relative to the font size.
func buildBlocks(lines []model.Line) []model.Block {
	var blocks []model.Block
	var cur *model.Block

	for _, line := range lines {
		if cur != nil {
			prev := cur.Lines[len(cur.Lines)-1]
			size := prev.BBox.Height()
			if size <= 0 {
				size = 12
			}
			if line.BBox.Y0-prev.BBox.Y1 > blockGapFactor*size {
				blocks = append(blocks, *cur)
				cur = nil
			}
		}
		if cur == nil {
			cur = &model.Block{BBox: line.BBox}
		} else {
			cur.BBox = cur.BBox.Union(line.BBox)
		}
		cur.Lines = append(cur.Lines, line)
	}
	if cur != nil {
		blocks = append(blocks, *cur)
	}
	return blocks
}
