package stext

import (
	"strings"
	"testing"

	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
)

const sampleDump = `{
  "pages": [
    {
      "width": 612,
      "height": 792,
      "blocks": [
        {
          "bbox": [72, 120, 540, 148],
          "lines": [
            {
              "bbox": [72, 120, 540, 148],
              "spans": [
                {"text": "Field Manual", "size": 28, "font": "Helvetica-Bold", "bbox": [72, 120, 540, 148]}
              ]
            }
          ]
        },
        {
          "bbox": [72, 300, 540, 312],
          "lines": [
            {
              "bbox": [72, 300, 540, 312],
              "spans": [
                {"text": "introductory body text", "size": 12, "font": "Helvetica", "bbox": [72, 300, 540, 312]},
                {"text": "continues here", "size": 12, "font": "Helvetica", "bbox": [72, 316, 540, 328]}
              ]
            }
          ]
        }
      ]
    },
    {
      "width": 612,
      "height": 792,
      "blocks": [
        {
          "bbox": [72, 120, 540, 138],
          "lines": [
            {
              "bbox": [72, 120, 540, 138],
              "spans": [
                {"text": "1. Safety", "size": 18, "font": "Helvetica-Bold", "bbox": [72, 120, 540, 138]}
              ]
            }
          ]
        },
        {
          "bbox": [72, 200, 540, 212],
          "lines": [
            {
              "bbox": [72, 200, 540, 212],
              "spans": [
                {"text": "wear protective equipment", "size": 12, "font": "Helvetica", "bbox": [72, 200, 540, 212]}
              ]
            }
          ]
        }
      ]
    }
  ]
}`

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if doc.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", doc.PageCount())
	}

	p1 := doc.GetPage(1)
	if p1.Width != 612 || p1.Height != 792 {
		t.Errorf("page 1 dims = %vx%v, want 612x792", p1.Width, p1.Height)
	}
	if len(p1.Blocks) != 2 {
		t.Fatalf("page 1 blocks = %d, want 2", len(p1.Blocks))
	}

	span := p1.Blocks[0].Lines[0].Spans[0]
	if span.Text != "Field Manual" || span.Size != 28 || span.Font != "Helvetica-Bold" {
		t.Errorf("title span = %+v", span)
	}
	if span.BBox != model.NewRect(72, 120, 540, 148) {
		t.Errorf("title span bbox = %+v", span.BBox)
	}

	if got := p1.Blocks[1].Lines[0].Text(); got != "introductory body text continues here" {
		t.Errorf("body line text = %q", got)
	}

	if doc.GetPage(2).Number != 2 {
		t.Errorf("page numbering broken: %d", doc.GetPage(2).Number)
	}
}

func TestDecodeFeedsPipeline(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	res := layout.BuildOutline(doc)
	if res.Title != "Field Manual" {
		t.Errorf("title = %q, want %q", res.Title, "Field Manual")
	}
	if len(res.Outline) != 1 {
		t.Fatalf("outline = %+v, want one entry", res.Outline)
	}
	e := res.Outline[0]
	if e.Text != "Safety" || e.Page != 2 || e.Level != model.LevelH3 {
		t.Errorf("entry = %+v, want H3 Safety on page 2", e)
	}
}

func TestDecodeNormalizesText(t *testing.T) {
	dump := `{"pages":[{"width":612,"height":792,"blocks":[{"bbox":[0,0,100,10],
		"lines":[{"bbox":[0,0,100,10],"spans":[
		{"text":"Résumé","size":12,"font":"Helvetica","bbox":[0,0,100,10]}]}]}]}]}`

	doc, err := Decode(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	got := doc.GetPage(1).Blocks[0].Lines[0].Spans[0].Text
	if got != "Résumé" {
		t.Errorf("span text = %q, want composed form", got)
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	if _, err := Decode(strings.NewReader("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile("no-such-file.json"); err == nil {
		t.Error("expected error for missing file")
	}
}
