package byteutils

// longestPrefixSuffix returns the KMP failure table for pattern: table[i]
// is the length of the longest proper prefix of pattern that is also a
// suffix of pattern[:i+1].
func longestPrefixSuffix(pattern []byte) []int {
	table := make([]int, len(pattern))
	j := 0
	for i := 1; i < len(pattern); i++ {
		for j > 0 && pattern[i] != pattern[j] {
			j = table[j-1]
		}
		if pattern[i] == pattern[j] {
			j++
		}
		table[i] = j
	}
	return table
}

// IndexAll returns the offset of every occurrence of pattern in s, in
// ascending order. Occurrences may overlap. If pattern or s is empty, or
// pattern is longer than s, IndexAll returns nil.
//
// The search is a single pass over s using the Knuth-Morris-Pratt
// algorithm: O(len(s)+len(pattern)) time and O(len(pattern)) space.
func IndexAll(s, pattern []byte) []int {
	if len(pattern) == 0 || len(s) == 0 || len(pattern) > len(s) {
		return nil
	}
	table := longestPrefixSuffix(pattern)
	var matches []int
	j := 0
	for i := 0; i < len(s); i++ {
		for j > 0 && s[i] != pattern[j] {
			j = table[j-1]
		}
		if s[i] == pattern[j] {
			j++
		}
		if j == len(pattern) {
			matches = append(matches, i-len(pattern)+1)
			// Falling back through the table instead of resetting j
			// to zero is what allows overlapping matches.
			j = table[j-1]
		}
	}
	return matches
}
