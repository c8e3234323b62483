package layout

import (
	"math"
	"sort"

	"github.com/tsawler/outliner/model"
)

// SizeProfile holds the document-wide font size statistics that drive
// heading classification: the dominant body size and the ranked heading
// sizes above it.
type SizeProfile struct {
	// counts is the frequency table of rounded font sizes.
	counts map[int]int

	// firstSeen records the order in which each rounded size was first
	// encountered, to keep tie-breaks deterministic.
	firstSeen map[int]int

	// BodySize is the most frequent rounded font size, assumed to be
	// ordinary paragraph text. Among equally frequent sizes the one seen
	// first in document order wins.
	BodySize int

	// RankedSizes are the distinct rounded sizes greater than BodySize,
	// sorted descending, truncated to at most MaxRanks entries. Rank 0
	// maps to H1, rank 1 to H2, rank 2 to H3.
	RankedSizes []int
}

// RoundSize rounds a font size to the integer bucket used throughout the
// analysis.
func RoundSize(size float64) int {
	return int(math.Round(size))
}

// ProfileSizes scans every span in the document and builds its size
// profile. maxRanks bounds the number of ranked heading sizes; values
// outside 1..3 are clamped to 3, matching the H1..H3 rank mapping.
func ProfileSizes(doc *model.Document, maxRanks int) *SizeProfile {
	if maxRanks < 1 || maxRanks > 3 {
		maxRanks = 3
	}

	p := &SizeProfile{
		counts:    make(map[int]int),
		firstSeen: make(map[int]int),
	}

	seq := 0
	for _, page := range doc.Pages {
		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				for _, span := range line.Spans {
					size := RoundSize(span.Size)
					if _, ok := p.counts[size]; !ok {
						p.firstSeen[size] = seq
					}
					p.counts[size]++
					seq++
				}
			}
		}
	}

	if len(p.counts) == 0 {
		return p
	}

	p.BodySize = p.mostFrequent()

	for size := range p.counts {
		if size > p.BodySize {
			p.RankedSizes = append(p.RankedSizes, size)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(p.RankedSizes)))
	if len(p.RankedSizes) > maxRanks {
		p.RankedSizes = p.RankedSizes[:maxRanks]
	}

	return p
}

// mostFrequent returns the rounded size with the highest count, breaking
// ties by earliest first occurrence.
func (p *SizeProfile) mostFrequent() int {
	best := 0
	bestCount := -1
	bestSeen := 0
	for size, count := range p.counts {
		seen := p.firstSeen[size]
		if count > bestCount || (count == bestCount && seen < bestSeen) {
			best = size
			bestCount = count
			bestSeen = seen
		}
	}
	return best
}

// Empty reports whether the document contained no spans at all.
func (p *SizeProfile) Empty() bool {
	return p == nil || len(p.counts) == 0
}

// Count returns the number of spans observed at a rounded size.
func (p *SizeProfile) Count(size int) int {
	if p == nil {
		return 0
	}
	return p.counts[size]
}

// LevelFor maps a rounded font size to its heading level, if the size is
// one of the ranked heading sizes.
func (p *SizeProfile) LevelFor(size int) (model.Level, bool) {
	if p == nil {
		return model.LevelUnknown, false
	}
	for rank, s := range p.RankedSizes {
		if s == size {
			return model.LevelForRank(rank), true
		}
	}
	return model.LevelUnknown, false
}
