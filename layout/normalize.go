package layout

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// StripNumbering removes a leading numbering marker, plus the run of
// periods, hyphens, and whitespace that follows it, from a line of text.
// Text without a recognized marker is returned trimmed but otherwise
// unchanged. Used only when producing the final heading text; it never
// affects classification, which works on the raw line.
func StripNumbering(s string) string {
	_, _, end, ok := matchMarker(s)
	if !ok {
		return strings.TrimSpace(s)
	}

	for end < len(s) && separatorAt(s, end) {
		_, w := utf8.DecodeRuneInString(s[end:])
		end += w
	}
	return strings.TrimSpace(s[end:])
}

// CollapseSpace collapses every whitespace run to a single space and trims
// the ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeText applies NFC normalization so that span text arriving in
// decomposed form compares and de-duplicates consistently. Span sources
// call this at ingestion.
func NormalizeText(s string) string {
	return norm.NFC.String(s)
}
