package stringutils

import "unicode/utf8"

// Reverse returns s with its code points in reverse order. Invalid UTF-8
// sequences are treated as runs of individual bytes and are reversed
// byte-wise, so Reverse(Reverse(s)) == s for all inputs.
func Reverse(s string) string {
	if len(s) <= 1 {
		return s
	}
	if isASCII(s) {
		b := []byte(s)
		for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
		return string(b)
	}
	b := make([]byte, len(s))
	j := len(b)
	for i := 0; i < len(s); {
		_, n := utf8.DecodeRuneInString(s[i:])
		j -= n
		copy(b[j:], s[i:i+n])
		i += n
	}
	return string(b)
}

// CountByte returns the number of bytes in s equal to c.
// The comparison is case sensitive.
func CountByte(s string, c byte) int {
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
func CountRune(s string, r rune) int {
	if r < utf8.RuneSelf {
		return CountByte(s, byte(r))
	}
	n := 0
	for _, rr := range s {
		if rr == r {
			n++
		}
	}
	return n
}

// Counts returns the number of occurrences of every byte present in s.
// Bytes absent from s have no entry in the returned map.
func Counts(s string) map[byte]int {
	counts := make(map[byte]int)
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}
	return counts
}

// RemoveDuplicates returns s with only the first occurrence of each byte
// retained, preserving the original order of first occurrences.
func RemoveDuplicates(s string) string {
	var seen [256]bool
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !seen[c] {
			seen[c] = true
			b = append(b, c)
		}
	}
	if len(b) == len(s) {
		return s
	}
	return string(b)
}

// IsPalindrome reports whether s reads the same forwards and backwards
// after removing every byte that is not an ASCII letter or digit and
// folding letters to lower case. The empty string is a palindrome.
func IsPalindrome(s string) bool {
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
