// Package viewer splits a sequence into fixed-width display rows.
package viewer

import "fmt"

// DefaultWidth is the number of bases per row.
const DefaultWidth = 60

// Line is one display row.
type Line struct {
	Offset int
	Text   string
}

// Label is the zero-padded six digit offset shown before the row.
func (l Line) Label() string { return fmt.Sprintf("%06d", l.Offset) }

// Lines cuts seq into rows of width bases; the last row may be shorter.
// width <= 0 means DefaultWidth.
func Lines(seq string, width int) []Line {
	if width <= 0 {
		width = DefaultWidth
	}
	lines := make([]Line, 0, (len(seq)+width-1)/width)
	for off := 0; off < len(seq); off += width {
		end := off + width
		if end > len(seq) {
			end = len(seq)
		}
		lines = append(lines, Line{Offset: off, Text: seq[off:end]})
	}
	return lines
}

// Class groups bases for colouring.
type Class int

const (
	Other Class = iota
	Adenine
	Thymine
	Guanine
	Cytosine
)

// BaseClass classifies b.
func BaseClass(b byte) Class {
	switch b {
	case 'A':
		return Adenine
	case 'T':
		return Thymine
	case 'G':
		return Guanine
	case 'C':
		return Cytosine
	}
	return Other
}
