// Package strand computes reverse complements of nucleotide sequences.
package strand

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['G'] = 'C'
	complement['C'] = 'G'
	complement['N'] = 'N'
}

// Complement returns the base-paired counterpart of b. Bytes outside
// {A,T,G,C,N} are returned unchanged.
func Complement(b byte) byte { return complement[b] }

// ReverseComplement reverses seq and complements every base.
func ReverseComplement(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return string(out)
}
