package translator

// Package translator performs six-frame protein translation and the frame +1
// codon usage tally. Translation never fails: unknown triplets become 'X'
// and trailing bases that do not fill a codon are dropped.

import (
	"sort"
	"strings"

	"genviz/internal/codon"
	"genviz/internal/strand"
)

// TopCodons is the maximum number of entries returned by CodonUsage.
const TopCodons = 10

// Labels are the reading frame labels in output order.
var Labels = [...]string{"+1", "+2", "+3", "-1", "-2", "-3"}

// Frame is the protein translation of one reading frame.
type Frame struct {
	Label   string `json:"label"`
	Protein string `json:"protein"`
}

// CodonCount is how often a codon occurs in frame +1.
type CodonCount struct {
	Codon string `json:"codon"`
	Count int    `json:"count"`
}

// Translate reads non-overlapping codons of seq starting at offset. A
// negative offset, or one that leaves fewer than three bases, yields "".
func Translate(seq string, offset int) string {
	if offset < 0 || len(seq)-offset < 3 {
		return ""
	}
	var b strings.Builder
	b.Grow((len(seq) - offset) / 3)
	for i := offset; i+3 <= len(seq); i += 3 {
		b.WriteByte(codon.Translate(seq[i : i+3]))
	}
	return b.String()
}

// SixFrame translates offsets 0, 1 and 2 of seq and of its reverse
// complement, labelled +1,+2,+3,-1,-2,-3.
func SixFrame(seq string) []Frame {
	rc := strand.ReverseComplement(seq)
	frames := make([]Frame, 0, len(Labels))
	for i, label := range Labels {
		src := seq
		if i >= 3 {
			src = rc
		}
		frames = append(frames, Frame{Label: label, Protein: Translate(src, i%3)})
	}
	return frames
}

// CodonUsage tallies the non-overlapping triplets of frame +1 only; the other
// five frames are not counted. Entries are sorted by count, ties keep the
// order of first appearance, and at most TopCodons entries are returned.
func CodonUsage(seq string) []CodonCount {
	index := map[string]int{}
	counts := []CodonCount{}
	for i := 0; i+3 <= len(seq); i += 3 {
		c := seq[i : i+3]
		if j, ok := index[c]; ok {
			counts[j].Count++
			continue
		}
		index[c] = len(counts)
		counts = append(counts, CodonCount{Codon: c, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if len(counts) > TopCodons {
		counts = counts[:TopCodons]
	}
	return counts
}
