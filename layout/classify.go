package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
)

// Seen is the de-duplication state threaded through classification: the
// lowercase texts already emitted as the title or as headings during one
// document's run. It is owned by the pipeline, never by the classifier,
// which keeps per-line decisions pure and independently testable.
type Seen map[string]struct{}

// NewSeen creates de-duplication state seeded with the given texts,
// lowercased.
func NewSeen(texts ...string) Seen {
	s := make(Seen, len(texts))
	for _, t := range texts {
		s.Add(t)
	}
	return s
}

// Has reports whether a lowercase form of the text was already emitted.
func (s Seen) Has(text string) bool {
	_, ok := s[strings.ToLower(text)]
	return ok
}

// Add records the lowercase form of an emitted text.
func (s Seen) Add(text string) {
	s[strings.ToLower(text)] = struct{}{}
}

// minHeadingRunes rejects fragments too short to be a meaningful heading.
const minHeadingRunes = 3

// fallbackMaxWords bounds the short-line fallback check: large bold lines
// with this many whitespace-separated words or more are body text, not
// headings.
const fallbackMaxWords = 10

// Classifier decides whether a single line is a heading and at what level,
// given the document's size profile. A Classifier holds no mutable state;
// the same instance serves every line of a document.
type Classifier struct {
	profile *SizeProfile
}

// NewClassifier creates a classifier over a document's size profile.
func NewClassifier(profile *SizeProfile) *Classifier {
	return &Classifier{profile: profile}
}

// Classify decides whether line is a heading. On acceptance it returns the
// level and the cleaned heading text (numbering prefix stripped, trimmed).
// seen is consulted but never modified; the caller records the line after
// emitting the entry.
//
// The checks run in fixed order and the first hit wins:
//
//  1. Numbered: the line starts with a numbering prefix and is bold. The
//     level is H{count+2} clamped to H2..H4, where count is the number of
//     '.' characters in the entire line text. Sentence punctuation and
//     decimal numbers therefore deepen the level; that coarseness is part
//     of the contract.
//  2. Ranked size: the line's rounded size is one of the profile's ranked
//     heading sizes and the line is bold.
//  3. Fallback: the line is bold, larger than body text, and under
//     fallbackMaxWords words long; such lines are classified H3.
func (c *Classifier) Classify(line model.Line, seen Seen) (model.Level, string, bool) {
	text := line.Text()
	if text == "" || utf8.RuneCountInString(text) < minHeadingRunes || seen.Has(text) {
		return model.LevelUnknown, "", false
	}

	rep, ok := line.Rep()
	if !ok {
		return model.LevelUnknown, "", false
	}
	size := RoundSize(rep.Size)
	bold := IsBoldFont(rep.Font)

	level := model.LevelUnknown

	if RecognizeNumbering(text).Matched() && bold {
		level = numberedLevel(text)
	}

	if level == model.LevelUnknown && bold {
		if mapped, ranked := c.profile.LevelFor(size); ranked {
			level = mapped
		} else if size > c.profile.BodySize && len(strings.Fields(text)) < fallbackMaxWords {
			level = model.LevelH3
		}
	}

	if level == model.LevelUnknown {
		return model.LevelUnknown, "", false
	}
	return level, StripNumbering(text), true
}

// numberedLevel derives the level of a numbered heading from the total
// count of '.' characters in the full line text, clamped to H2..H4.
func numberedLevel(text string) model.Level {
	depth := strings.Count(text, ".") + 2
	if depth < 2 {
		depth = 2
	}
	if depth > 4 {
		depth = 4
	}
	return model.Level(depth)
}
