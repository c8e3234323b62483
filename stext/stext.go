// Package stext decodes structured-text JSON dumps into the outliner
// document model.
//
// The accepted format mirrors the block/line/span dictionaries produced by
// structured text extractors (MuPDF and friends): a list of pages, each
// with dimensions and nested blocks, lines, and spans, every element
// carrying a bounding box as [x0, y0, x1, y1] in top-left-origin page
// coordinates. It is useful for offline fixtures and for callers that run
// the rasterizer elsewhere and ship its output as JSON.
package stext

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
)

type stextDocument struct {
	Pages []stextPage `json:"pages"`
}

type stextPage struct {
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Blocks []stextBlock `json:"blocks"`
}

type stextBlock struct {
	BBox  [4]float64  `json:"bbox"`
	Lines []stextLine `json:"lines"`
}

type stextLine struct {
	BBox  [4]float64  `json:"bbox"`
	Spans []stextSpan `json:"spans"`
}

type stextSpan struct {
	Text string     `json:"text"`
	Size float64    `json:"size"`
	Font string     `json:"font"`
	BBox [4]float64 `json:"bbox"`
}

// Decode reads a structured-text JSON dump and converts it into a
// model.Document. Span text is NFC-normalized on the way in.
func Decode(r io.Reader) (*model.Document, error) {
	var src stextDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&src); err != nil {
		return nil, fmt.Errorf("decoding structured text: %w", err)
	}

	doc := model.NewDocument()
	for _, sp := range src.Pages {
		page := model.NewPage(sp.Width, sp.Height)
		for _, sb := range sp.Blocks {
			block := model.Block{BBox: toRect(sb.BBox)}
			for _, sl := range sb.Lines {
				line := model.Line{BBox: toRect(sl.BBox)}
				for _, ss := range sl.Spans {
					line.Spans = append(line.Spans, model.Span{
						Text: layout.NormalizeText(ss.Text),
						Size: ss.Size,
						Font: ss.Font,
						BBox: toRect(ss.BBox),
					})
				}
				block.Lines = append(block.Lines, line)
			}
			page.AddBlock(block)
		}
		doc.AddPage(page)
	}
	return doc, nil
}

// ReadFile decodes a structured-text JSON dump from a file.
func ReadFile(path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening structured text file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func toRect(b [4]float64) model.Rect {
	return model.NewRect(b[0], b[1], b[2], b[3])
}
