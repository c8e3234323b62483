package layout

import (
	"github.com/tsawler/outliner/model"
)

// EmptyDocumentTitle is the title reported for documents with no pages.
const EmptyDocumentTitle = "Empty Document"

// Config holds the tunable band ratios for outline extraction. The zero
// value is not useful; start from DefaultConfig.
type Config struct {
	// ClipMargin is the fraction of page height excluded at both the top
	// and the bottom of every page before heading classification, so
	// repeating headers and footers are never examined.
	ClipMargin float64

	// TitleBand is the fraction of page height, measured from the top,
	// within which title candidates are collected on page one.
	TitleBand float64

	// MaxRankedSizes caps how many distinct heading sizes above body size
	// are ranked and mapped to levels.
	MaxRankedSizes int
}

// DefaultConfig returns the standard band ratios: a 10% top/bottom clip
// margin, a 70% title band, and three ranked heading sizes.
func DefaultConfig() Config {
	return Config{
		ClipMargin:     0.10,
		TitleBand:      0.70,
		MaxRankedSizes: 3,
	}
}

// BuildOutline extracts a document's outline with DefaultConfig.
func BuildOutline(doc *model.Document) model.Result {
	return Build(doc, DefaultConfig())
}

// Build extracts a document's title and outline.
//
// A document with no pages short-circuits to {EmptyDocumentTitle, []}. A
// document with pages but no spans returns the detected title with an
// empty outline. Otherwise every line inside each page's clip band is
// classified in reading order and accepted headings are accumulated in
// encounter order, de-duplicated document-wide against the title and
// against each other.
func Build(doc *model.Document, cfg Config) model.Result {
	if doc == nil || doc.PageCount() == 0 {
		return model.NewResult(EmptyDocumentTitle)
	}

	title := DetectTitle(doc.GetPage(1), cfg.TitleBand)
	result := model.NewResult(title)

	profile := ProfileSizes(doc, cfg.MaxRankedSizes)
	if profile.Empty() {
		return result
	}

	seen := NewSeen(title)
	classifier := NewClassifier(profile)

	for _, page := range doc.Pages {
		band := model.NewRect(
			0,
			page.Height*cfg.ClipMargin,
			page.Width,
			page.Height*(1-cfg.ClipMargin),
		)

		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				if !band.ContainsRect(line.BBox) {
					continue
				}

				level, text, ok := classifier.Classify(line, seen)
				if !ok {
					continue
				}

				result.Outline = append(result.Outline, model.OutlineEntry{
					Level: level,
					Text:  text,
					Page:  page.Number,
				})
				seen.Add(line.Text())
			}
		}
	}

	return result
}
