package layout

import (
	"math"
	"strings"

	"github.com/tsawler/outliner/model"
)

// UntitledDocument is the title used when page one yields no candidates.
const UntitledDocument = "Untitled Document"

// titleSizeTolerance absorbs sub-pixel and kerning variance between spans
// that were set at the same nominal size.
const titleSizeTolerance = 1.0

// DetectTitle extracts the document title from page one by collecting the
// spans set at the page's maximum font size.
//
// The maximum is tracked unrounded across every span on the page. Candidate
// spans must sit in a block whose bottom edge lies within the top band of
// the page (band is a height ratio, 0.7 by default) and be within
// titleSizeTolerance of the maximum. Candidates keep first-seen order,
// exact duplicates are dropped, and the survivors are joined with single
// spaces and whitespace-collapsed. No candidates at all yields
// UntitledDocument.
func DetectTitle(page *model.Page, band float64) string {
	if page == nil {
		return UntitledDocument
	}

	maxSize := 0.0
	for _, block := range page.Blocks {
		for _, line := range block.Lines {
			for _, span := range line.Spans {
				if span.Size > maxSize {
					maxSize = span.Size
				}
			}
		}
	}

	limit := page.Height * band
	var candidates []string
	for _, block := range page.Blocks {
		if block.BBox.Bottom() >= limit {
			continue
		}
		for _, line := range block.Lines {
			for _, span := range line.Spans {
				if math.Abs(span.Size-maxSize) < titleSizeTolerance {
					candidates = append(candidates, strings.TrimSpace(span.Text))
				}
			}
		}
	}

	if len(candidates) == 0 {
		return UntitledDocument
	}

	// Drop exact duplicates, first occurrence wins.
	seen := make(map[string]struct{}, len(candidates))
	unique := candidates[:0]
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}

	return CollapseSpace(strings.Join(unique, " "))
}
