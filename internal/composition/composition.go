// Package composition counts bases and computes GC content.
package composition

import "math"

// Bases lists the composition buckets in output order. N collects every
// byte that is not A, T, G or C.
var Bases = [...]string{"A", "T", "G", "C", "N"}

// Entry is the count for one base bucket.
type Entry struct {
	Base  string `json:"base"`
	Count int    `json:"count"`
}

func bucket(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'T':
		return 1
	case 'G':
		return 2
	case 'C':
		return 3
	}
	return 4
}

// Count returns five entries ordered A,T,G,C,N whose counts sum to len(seq).
func Count(seq string) []Entry {
	var counts [len(Bases)]int
	for i := 0; i < len(seq); i++ {
		counts[bucket(seq[i])]++
	}
	out := make([]Entry, len(Bases))
	for i, b := range Bases {
		out[i] = Entry{Base: b, Count: counts[i]}
	}
	return out
}

// GCPercent returns (G+C)/len*100 rounded to two decimals. An empty
// sequence has a GC content of 0.
func GCPercent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == 'G' || seq[i] == 'C' {
			gc++
		}
	}
	return Round2(float64(gc) / float64(len(seq)) * 100)
}

// Percent returns count as a share of total in percent, rounded to two
// decimals; 0 when total is 0.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round2(float64(count) / float64(total) * 100)
}

// Round2 rounds x to two decimal places, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
