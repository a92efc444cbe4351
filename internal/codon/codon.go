// Package codon holds the standard genetic code used for translation.
package codon

const (
	// Stop is emitted for TAA, TAG and TGA.
	Stop = '*'
	// Unknown is emitted for any triplet missing from the table.
	Unknown = 'X'
)

// standard maps the 64 DNA codons to one-letter amino-acid codes.
// It is never written after package initialisation.
var standard = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": Stop, "TAG": Stop,
	"TGT": 'C', "TGC": 'C', "TGA": Stop, "TGG": 'W',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// Lookup returns the amino acid for an upper-case codon.
func Lookup(codon string) (byte, bool) {
	aa, ok := standard[codon]
	return aa, ok
}

// Translate is Lookup with Unknown for misses.
func Translate(codon string) byte {
	if aa, ok := standard[codon]; ok {
		return aa
	}
	return Unknown
}

// IsStop reports whether codon is one of the three stop codons.
func IsStop(codon string) bool {
	aa, ok := standard[codon]
	return ok && aa == Stop
}

// Len is the number of codons in the table.
func Len() int { return len(standard) }
