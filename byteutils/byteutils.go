// Package byteutils is the []byte counterpart of the stringutils package.
// Every function has the same name and semantics as its string version
// and never mutates its arguments.
package byteutils

import (
	"unicode/utf8"

	"github.com/tharu-jwd/stringutils/internal/tables"
)

func isAlnum(c byte) bool      { return tables.Alnum[c] }
func isNucleotide(c byte) bool { return tables.Nucleotide[c] }
func isGC(c byte) bool         { return tables.GC[c] }

func foldByte(c byte) byte { return tables.Lower[c] }

func isASCII(s []byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Reverse returns a new slice with the code points of s in reverse order.
// Invalid UTF-8 sequences are reversed byte-wise.
func Reverse(s []byte) []byte {
	b := make([]byte, len(s))
	if len(s) <= 1 {
		copy(b, s)
		return b
	}
	if isASCII(s) {
		for i, j := 0, len(s)-1; i < len(s); i, j = i+1, j-1 {
			b[i] = s[j]
		}
		return b
	}
	j := len(b)
	for i := 0; i < len(s); {
		_, n := utf8.DecodeRune(s[i:])
		j -= n
		copy(b[j:], s[i:i+n])
		i += n
	}
	return b
}

// CountByte returns the number of bytes in s equal to c.
// The comparison is case sensitive.
func CountByte(s []byte, c byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			n++
		}
	}
	return n
}

// CountRune returns the number of code points in s equal to r.
// The comparison is case sensitive.
func CountRune(s []byte, r rune) int {
	if r < utf8.RuneSelf {
		return CountByte(s, byte(r))
	}
	n := 0
	for i := 0; i < len(s); {
		rr, size := utf8.DecodeRune(s[i:])
		if rr == r {
			n++
		}
		i += size
	}
	return n
}

// Counts returns the number of occurrences of every byte present in s.
func Counts(s []byte) map[byte]int {
	counts := make(map[byte]int)
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}
	return counts
}

// RemoveDuplicates returns a new slice containing only the first
// occurrence of each byte of s, preserving the original order of first
// occurrences.
func RemoveDuplicates(s []byte) []byte {
	var seen [256]bool
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !seen[c] {
			seen[c] = true
			b = append(b, c)
		}
	}
	return b
}

// IsPalindrome reports whether s reads the same forwards and backwards
// after removing every byte that is not an ASCII letter or digit and
// folding letters to lower case. The empty slice is a palindrome.
func IsPalindrome(s []byte) bool {
	i, j := 0, len(s)-1
	for i < j {
		for i < j && !isAlnum(s[i]) {
			i++
		}
		for i < j && !isAlnum(s[j]) {
			j--
		}
		if foldByte(s[i]) != foldByte(s[j]) {
			return false
		}
		i++
		j--
	}
	return true
}
