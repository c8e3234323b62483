package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NumberingKind identifies which family of heading-numbering prefix matched
// at the start of a line.
type NumberingKind int

const (
	// NumberingNone means the line does not start with a recognized prefix.
	NumberingNone NumberingKind = iota
	// NumberingDotted is a dotted numeric sequence: "1", "1.2", "1.2.3".
	NumberingDotted
	// NumberingChapter is the word "Chapter" followed by a number.
	NumberingChapter
	// NumberingAppendix is the word "Appendix" followed by a word character.
	NumberingAppendix
)

// String returns a readable name for the numbering kind.
func (k NumberingKind) String() string {
	switch k {
	case NumberingDotted:
		return "dotted"
	case NumberingChapter:
		return "chapter"
	case NumberingAppendix:
		return "appendix"
	default:
		return "none"
	}
}

// Numbering is the tagged outcome of matching a line's start against the
// heading-numbering prefixes.
type Numbering struct {
	Kind NumberingKind
	// End is the byte offset just past the matched marker. The separator
	// that follows the marker is not included.
	End int
}

// Matched reports whether any numbering prefix matched.
func (n Numbering) Matched() bool {
	return n.Kind != NumberingNone
}

// IsBoldFont reports whether a font descriptor indicates a visually bold
// face. Sources encode weight as a substring of the font name
// ("Helvetica-Bold", "TimesNewRoman,BoldItalic"), so this is a
// case-insensitive substring test.
func IsBoldFont(font string) bool {
	return strings.Contains(strings.ToLower(font), "bold")
}

// RecognizeNumbering matches the start of a line against the numbering
// prefixes used for heading classification. The marker must be followed by
// a period, whitespace, or hyphen; a bare number at the end of a line does
// not count. A dotted sequence whose tail is not followed by a separator
// still matches on a shorter dotted prefix, with the next '.' acting as the
// separator: "1.2x" matches with marker "1".
func RecognizeNumbering(s string) Numbering {
	i := skipSpace(s)

	if end, lastDot, ok := dottedMarker(s, i); ok {
		if separatorAt(s, end) {
			return Numbering{Kind: NumberingDotted, End: end}
		}
		if lastDot >= 0 {
			return Numbering{Kind: NumberingDotted, End: lastDot}
		}
		return Numbering{}
	}

	if end, ok := chapterMarker(s, i); ok && separatorAt(s, end) {
		return Numbering{Kind: NumberingChapter, End: end}
	}

	if end, ok := appendixMarker(s, i); ok && separatorAt(s, end) {
		return Numbering{Kind: NumberingAppendix, End: end}
	}

	return Numbering{}
}

// matchMarker matches the longest numbering marker at the start of s
// without requiring a trailing separator. It is the matching mode used when
// stripping prefixes from accepted heading text.
func matchMarker(s string) (kind NumberingKind, start, end int, ok bool) {
	i := skipSpace(s)

	if e, _, matched := dottedMarker(s, i); matched {
		return NumberingDotted, i, e, true
	}
	if e, matched := chapterMarker(s, i); matched {
		return NumberingChapter, i, e, true
	}
	if e, matched := appendixMarker(s, i); matched {
		return NumberingAppendix, i, e, true
	}
	return NumberingNone, i, i, false
}

// dottedMarker scans a dotted numeric sequence ("12", "1.2.3") starting at
// i. lastDot is the offset of the final '.' consumed inside the marker, or
// -1 when the marker is a plain number; it is where the marker can shrink
// to when the character after the full marker fails the separator test.
func dottedMarker(s string, i int) (end, lastDot int, ok bool) {
	j := scanDigits(s, i)
	if j == i {
		return 0, -1, false
	}

	lastDot = -1
	for j < len(s) && s[j] == '.' {
		k := scanDigits(s, j+1)
		if k == j+1 {
			break
		}
		lastDot = j
		j = k
	}
	return j, lastDot, true
}

// chapterMarker matches "Chapter", exactly one whitespace character, and a
// number.
func chapterMarker(s string, i int) (end int, ok bool) {
	const word = "Chapter"
	if !strings.HasPrefix(s[i:], word) {
		return 0, false
	}
	j, ok := oneSpace(s, i+len(word))
	if !ok {
		return 0, false
	}
	k := scanDigits(s, j)
	if k == j {
		return 0, false
	}
	return k, true
}

// appendixMarker matches "Appendix", exactly one whitespace character, and
// a single word character.
func appendixMarker(s string, i int) (end int, ok bool) {
	const word = "Appendix"
	if !strings.HasPrefix(s[i:], word) {
		return 0, false
	}
	j, ok := oneSpace(s, i+len(word))
	if !ok {
		return 0, false
	}
	if j >= len(s) {
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(s[j:])
	if !isWordRune(r) {
		return 0, false
	}
	return j + w, true
}

// separatorAt reports whether the rune at byte offset i is a valid
// post-marker separator: '.', '-', or whitespace.
func separatorAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isSeparatorRune(r)
}

func isSeparatorRune(r rune) bool {
	return r == '.' || r == '-' || unicode.IsSpace(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// oneSpace consumes exactly one whitespace rune at byte offset i.
func oneSpace(s string, i int) (int, bool) {
	if i >= len(s) {
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(s[i:])
	if !unicode.IsSpace(r) {
		return 0, false
	}
	return i + w, true
}

// skipSpace returns the byte offset of the first non-whitespace rune.
func skipSpace(s string) int {
	i := 0
	for i < len(s) {
		r, w := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += w
	}
	return i
}

// scanDigits returns the byte offset after the run of decimal digits
// starting at i.
func scanDigits(s string, i int) int {
	for i < len(s) {
		r, w := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsDigit(r) {
			break
		}
		i += w
	}
	return i
}
