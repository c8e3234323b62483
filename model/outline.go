package model

import (
	"encoding/json"
	"fmt"
)

// Level represents the nesting level of an outline entry (H1-H4).
type Level int

const (
	LevelUnknown Level = iota
	LevelH1            // H1 - top-level heading
	LevelH2            // H2 - major section
	LevelH3            // H3 - subsection
	LevelH4            // H4 - deepest recognized level
)

// String returns the string representation of the level ("H1".."H4").
func (l Level) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	case LevelH4:
		return "H4"
	default:
		return "unknown"
	}
}

// LevelForRank maps a zero-based font-size rank to a level: rank 0 is H1,
// rank 1 is H2, rank 2 is H3. Ranks beyond the mapped range return
// LevelUnknown.
func LevelForRank(rank int) Level {
	switch rank {
	case 0:
		return LevelH1
	case 1:
		return LevelH2
	case 2:
		return LevelH3
	default:
		return LevelUnknown
	}
}

// MarshalJSON serializes the level as its string form, e.g. "H2".
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON parses a level from its string form.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "H1":
		*l = LevelH1
	case "H2":
		*l = LevelH2
	case "H3":
		*l = LevelH3
	case "H4":
		*l = LevelH4
	default:
		return fmt.Errorf("invalid outline level %q", s)
	}
	return nil
}

// OutlineEntry is one heading in the extracted outline. Entries are created
// once and never modified.
type OutlineEntry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Result is the output of processing one document: a title plus headings in
// document order (page ascending, then in-page encounter order).
type Result struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}

// NewResult creates a Result with the given title and an empty, non-nil
// outline so the JSON form is always an array.
func NewResult(title string) Result {
	return Result{
		Title:   title,
		Outline: make([]OutlineEntry, 0),
	}
}
