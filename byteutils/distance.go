package byteutils

import "bytes"

// LCS returns a longest common subsequence of s and t: a longest slice
// whose bytes appear in order, not necessarily contiguously, in both.
//
// When multiple subsequences of maximal length exist the result is
// deterministic: the backtrack prefers dropping a byte of s over dropping
// a byte of t.
func LCS(s, t []byte) []byte {
	m, n := len(s), len(t)
	if m == 0 || n == 0 {
		return nil
	}
	dp := makeTable(m+1, n+1)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			switch {
			case s[i-1] == t[j-1]:
				dp[i][j] = dp[i-1][j-1] + 1
			case dp[i-1][j] >= dp[i][j-1]:
				dp[i][j] = dp[i-1][j]
			default:
				dp[i][j] = dp[i][j-1]
			}
		}
	}
	b := make([]byte, dp[m][n])
	k := len(b)
	for i, j := m, n; i > 0 && j > 0; {
		switch {
		case s[i-1] == t[j-1]:
			k--
			b[k] = s[i-1]
			i--
			j--
		case dp[i-1][j] >= dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	return b
}

// EditDistance returns the Levenshtein distance between s and t: the
// minimum number of single-byte insertions, deletions and substitutions
// required to transform s into t.
func EditDistance(s, t []byte) int {
	if bytes.Equal(s, t) {
		return 0
	}
	// Only two rows of the distance table are live at any point.
	prev := make([]int, len(t)+1)
	curr := make([]int, len(t)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(s); i++ {
		curr[0] = i
		for j := 1; j <= len(t); j++ {
			cost := 1
			if s[i-1] == t[j-1] {
				cost = 0
			}
			d := prev[j-1] + cost
			if x := prev[j] + 1; x < d {
				d = x
			}
			if x := curr[j-1] + 1; x < d {
				d = x
			}
			curr[j] = d
		}
		prev, curr = curr, prev
	}
	return prev[len(t)]
}

// makeTable allocates a rows-by-cols table backed by a single slice.
func makeTable(rows, cols int) [][]int {
	cells := make([]int, rows*cols)
	dp := make([][]int, rows)
	for i := range dp {
		dp[i], cells = cells[:cols:cols], cells[cols:]
	}
	return dp
}
