package layout

import (
	"testing"

	"github.com/tsawler/outliner/model"
)

// makeLine builds a single-span line for classifier tests.
func makeLine(text string, size float64, font string) model.Line {
	bbox := model.NewRect(72, 200, 540, 200+size)
	return model.Line{
		Spans: []model.Span{{Text: text, Size: size, Font: font, BBox: bbox}},
		BBox:  bbox,
	}
}

// testProfile builds a profile with body size 12 and ranked sizes 24, 18,
// 14 (H1, H2, H3).
func testProfile(t *testing.T) *SizeProfile {
	t.Helper()
	doc := sizeDoc(12, 12, 12, 12, 14, 18, 24)
	p := ProfileSizes(doc, 3)
	if p.BodySize != 12 || len(p.RankedSizes) != 3 {
		t.Fatalf("unexpected profile: body=%d ranked=%v", p.BodySize, p.RankedSizes)
	}
	return p
}

func TestClassifyRankedSizes(t *testing.T) {
	c := NewClassifier(testProfile(t))

	tests := []struct {
		text  string
		size  float64
		level model.Level
	}{
		{"Introduction", 24, model.LevelH1},
		{"Background Material", 18, model.LevelH2},
		{"Minor Remarks", 14, model.LevelH3},
	}

	for _, tt := range tests {
		level, text, ok := c.Classify(makeLine(tt.text, tt.size, "Helvetica-Bold"), NewSeen())
		if !ok {
			t.Errorf("Classify(%q) rejected, want %v", tt.text, tt.level)
			continue
		}
		if level != tt.level || text != tt.text {
			t.Errorf("Classify(%q) = (%v, %q), want (%v, %q)", tt.text, level, text, tt.level, tt.text)
		}
	}
}

func TestClassifyRequiresBold(t *testing.T) {
	c := NewClassifier(testProfile(t))

	if _, _, ok := c.Classify(makeLine("Introduction", 24, "Helvetica"), NewSeen()); ok {
		t.Error("non-bold ranked-size line should not classify")
	}
	if _, _, ok := c.Classify(makeLine("1.2 Details", 14, "Helvetica"), NewSeen()); ok {
		t.Error("non-bold numbered line should not classify via numbering alone")
	}
}

func TestClassifyNumberedDepth(t *testing.T) {
	c := NewClassifier(testProfile(t))

	tests := []struct {
		text  string
		level model.Level
	}{
		{"1. Overview", model.LevelH3},     // one '.' in the line
		{"1.1 Details", model.LevelH3},     // one '.'
		{"1.2.3 Deep", model.LevelH4},      // two '.'
		{"2 Introduction", model.LevelH2},  // zero '.'
		{"Chapter 3 Results", model.LevelH2},
		{"Appendix A - Tables", model.LevelH2},
		// Dots anywhere in the line count, not just the prefix.
		{"1.2 See fig. 3.4 for details", model.LevelH4}, // three '.' clamps to H4
	}

	for _, tt := range tests {
		// 12pt matches body size: the numbered check ignores font size.
		level, _, ok := c.Classify(makeLine(tt.text, 12, "Helvetica-Bold"), NewSeen())
		if !ok {
			t.Errorf("Classify(%q) rejected, want %v", tt.text, tt.level)
			continue
		}
		if level != tt.level {
			t.Errorf("Classify(%q) = %v, want %v", tt.text, level, tt.level)
		}
	}
}

func TestClassifyNumberedBeatsRankedSize(t *testing.T) {
	c := NewClassifier(testProfile(t))

	// 24pt is ranked H1, but the numbered check runs first: one '.' in the
	// line gives H3.
	level, text, ok := c.Classify(makeLine("1. Overview", 24, "Helvetica-Bold"), NewSeen())
	if !ok {
		t.Fatal("expected heading")
	}
	if level != model.LevelH3 {
		t.Errorf("level = %v, want H3 (numbered check wins)", level)
	}
	if text != "Overview" {
		t.Errorf("text = %q, want %q", text, "Overview")
	}
}

func TestClassifyFallback(t *testing.T) {
	c := NewClassifier(testProfile(t))

	// 16pt is above body size but not one of the ranked sizes.
	level, _, ok := c.Classify(makeLine("Key Findings", 16, "Helvetica-Bold"), NewSeen())
	if !ok {
		t.Fatal("expected fallback heading")
	}
	if level != model.LevelH3 {
		t.Errorf("level = %v, want H3", level)
	}

	// Ten or more words is body text even when large and bold.
	long := "one two three four five six seven eight nine ten"
	if _, _, ok := c.Classify(makeLine(long, 16, "Helvetica-Bold"), NewSeen()); ok {
		t.Error("long bold line should not classify via fallback")
	}

	// At or below body size the fallback never fires.
	if _, _, ok := c.Classify(makeLine("Key Findings", 12, "Helvetica-Bold"), NewSeen()); ok {
		t.Error("body-size bold line should not classify")
	}
}

func TestClassifyRejectsShortText(t *testing.T) {
	c := NewClassifier(testProfile(t))

	for _, text := range []string{"", "  ", "ab", "№1"} {
		if _, _, ok := c.Classify(makeLine(text, 24, "Helvetica-Bold"), NewSeen()); ok {
			t.Errorf("Classify(%q) accepted, want rejection for short text", text)
		}
	}
}

func TestClassifyRejectsSeenText(t *testing.T) {
	c := NewClassifier(testProfile(t))
	seen := NewSeen("Introduction")

	if _, _, ok := c.Classify(makeLine("INTRODUCTION", 24, "Helvetica-Bold"), seen); ok {
		t.Error("case-insensitive duplicate should be rejected")
	}

	// Classify never mutates the state it is handed.
	if len(seen) != 1 {
		t.Errorf("seen grew to %d entries during classification", len(seen))
	}

	level, _, ok := c.Classify(makeLine("Fresh Heading", 24, "Helvetica-Bold"), seen)
	if !ok || level != model.LevelH1 {
		t.Errorf("unseen line = (%v, %v), want (H1, true)", level, ok)
	}
}

func TestClassifyUsesFirstSpan(t *testing.T) {
	c := NewClassifier(testProfile(t))

	// The representative size and weight come from the first span only.
	line := model.Line{Spans: []model.Span{
		{Text: "Mixed", Size: 24, Font: "Helvetica-Bold"},
		{Text: "weights here", Size: 12, Font: "Helvetica"},
	}}

	level, text, ok := c.Classify(line, NewSeen())
	if !ok || level != model.LevelH1 {
		t.Fatalf("Classify = (%v, %v), want H1", level, ok)
	}
	if text != "Mixed weights here" {
		t.Errorf("text = %q, want joined span text", text)
	}
}

func TestSeen(t *testing.T) {
	seen := NewSeen("Title Text")

	if !seen.Has("title text") || !seen.Has("TITLE TEXT") {
		t.Error("Has should match case-insensitively")
	}
	if seen.Has("other") {
		t.Error("Has reported unknown text")
	}

	seen.Add("Heading One")
	if !seen.Has("heading one") {
		t.Error("Add should record the lowercase form")
	}
}
