package byteutils

// ValidDNA reports whether every byte of s is one of the nucleotide codes
// A, T, G or C in either case. The empty sequence is valid.
func ValidDNA(s []byte) bool {
	for i := 0; i < len(s); i++ {
		if !isNucleotide(s[i]) {
			return false
		}
	}
	return true
}

// GCContent returns the percentage of bytes in s that are G or C in either
// case, in the range [0, 100]. The empty sequence has a GC content of 0.
//
// The sequence is not validated; bytes outside the nucleotide alphabet
// count toward the length but never toward the GC total.
func GCContent(s []byte) float64 {
	if len(s) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(s); i++ {
		if isGC(s[i]) {
			gc++
		}
	}
	return float64(gc) / float64(len(s)) * 100
}
