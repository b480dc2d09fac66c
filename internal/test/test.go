// Package test holds the test corpora, reference implementations, and
// randomized-test harness shared by the stringutils and byteutils
// packages. The runners accept function values so that both the string
// and the []byte implementations can be driven through the same tables.
package test

import (
	"math/rand"
	"testing"

	"golang.org/x/exp/slices"
)

// A StringFunc transforms a string. ByteStringFunc adapts the []byte
// version of the same transformation.
type StringFunc func(string) string

func ByteStringFunc(fn func([]byte) []byte) StringFunc {
	return func(s string) string { return string(fn([]byte(s))) }
}

type IndexAllFunc func(s, pattern string) []int

func ByteIndexAllFunc(fn func(s, pattern []byte) []int) IndexAllFunc {
	return func(s, pattern string) []int { return fn([]byte(s), []byte(pattern)) }
}

type PredicateFunc func(string) bool

func BytePredicateFunc(fn func([]byte) bool) PredicateFunc {
	return func(s string) bool { return fn([]byte(s)) }
}

type RatioFunc func(string) float64

func ByteRatioFunc(fn func([]byte) float64) RatioFunc {
	return func(s string) float64 { return fn([]byte(s)) }
}

type CountFunc func(string, byte) int

func ByteCountFunc(fn func([]byte, byte) int) CountFunc {
	return func(s string, c byte) int { return fn([]byte(s), c) }
}

type PairFunc func(s, t string) string

func BytePairFunc(fn func(s, t []byte) []byte) PairFunc {
	return func(s, t string) string { return string(fn([]byte(s), []byte(t))) }
}

type DistanceFunc func(s, t string) int

func ByteDistanceFunc(fn func(s, t []byte) int) DistanceFunc {
	return func(s, t string) int { return fn([]byte(s), []byte(t)) }
}

type reverseTest struct {
	in, out string
}

var reverseTests = []reverseTest{
	{"", ""},
	{"a", "a"},
	{"ab", "ba"},
	{"abc", "cba"},
	{"hello", "olleh"},
	{"Hello, World!", "!dlroW ,olleH"},
	{"12345", "54321"},
	{"racecar", "racecar"},
	{"héllo", "olléh"},
	{"日本語", "語本日"},
	{"αβδ", "δβα"},
	{"aé日b", "b日éa"},
}

// Reverse drives fn through the shared reversal corpus and checks the
// involution property on random inputs.
func Reverse(t *testing.T, fn StringFunc) {
	for _, test := range reverseTests {
		if got := fn(test.in); got != test.out {
			t.Errorf("Reverse(%q) = %q; want: %q", test.in, got, test.out)
		}
		if got := fn(fn(test.in)); got != test.in {
			t.Errorf("Reverse(Reverse(%q)) = %q; want: %q", test.in, got, test.in)
		}
	}
	RunRandomTest(t, func(t testing.TB, rr *rand.Rand) {
		s := RandString(rr, rr.Intn(64))
		if got := fn(fn(s)); got != s {
			t.Errorf("Reverse(Reverse(%q)) = %q; want: %q", s, got, s)
		}
	})
}

type indexAllTest struct {
	s, pattern string
	out        []int
}

var indexAllTests = []indexAllTest{
	{"", "", nil},
	{"", "a", nil},
	{"a", "", nil},
	{"a", "ab", nil},
	{"abc", "abcd", nil},
	{"a", "a", []int{0}},
	{"abc", "abc", []int{0}},
	{"aaa", "aa", []int{0, 1}},
	{"aaaa", "aa", []int{0, 1, 2}},
	{"abcabcabc", "abc", []int{0, 3, 6}},
	{"hello world", "o", []int{4, 7}},
	{"hello world", "z", nil},
	{"mississippi", "issi", []int{1, 4}},
	{"mississippi", "ss", []int{2, 5}},
	{"abracadabra", "abra", []int{0, 7}},
	{"aabaabaaa", "aab", []int{0, 3}},
	{"ABCABC", "abc", nil}, // case sensitive
	{"ababab", "abab", []int{0, 2}},
	// Offsets are byte offsets, not rune offsets.
	{"αβγαβγ", "αβ", []int{0, 6}},
	{"日本語日本語", "日本", []int{0, 9}},
}

// IndexAll drives fn through the shared pattern-search corpus and
// cross-checks it against the quadratic reference on random inputs.
func IndexAll(t *testing.T, fn IndexAllFunc) {
	for _, test := range indexAllTests {
		if got := fn(test.s, test.pattern); !slices.Equal(got, test.out) {
			t.Errorf("IndexAll(%q, %q) = %v; want: %v", test.s, test.pattern, got, test.out)
		}
	}
	RunRandomTest(t, func(t testing.TB, rr *rand.Rand) {
		// Small alphabets make overlapping and near-miss matches likely.
		s := RandAlpha(rr, rr.Intn(80)+1, 2+rr.Intn(3))
		pattern := RandAlpha(rr, rr.Intn(6)+1, 2+rr.Intn(3))
		want := IndexAllReference(s, pattern)
		if got := fn(s, pattern); !slices.Equal(got, want) {
			t.Errorf("IndexAll(%q, %q) = %v; want: %v", s, pattern, got, want)
		}
	})
}

// IndexAllReference is a slow, but obviously correct version of IndexAll.
func IndexAllReference(s, pattern string) []int {
	if len(pattern) == 0 || len(s) == 0 || len(pattern) > len(s) {
		return nil
	}
	var matches []int
	for i := 0; i+len(pattern) <= len(s); i++ {
		if s[i:i+len(pattern)] == pattern {
			matches = append(matches, i)
		}
	}
	return matches
}

type dnaTest struct {
	s   string
	out bool
}

var dnaTests = []dnaTest{
	{"", true},
	{"A", true},
	{"ATGC", true},
	{"atgc", true},
	{"AtGc", true},
	{"TTTT", true},
	{"GGGGCCCC", true},
	{"ATGCATGCATGC", true},
	{"ATGCX", false},
	{"ATGC1", false},
	{"ATGC ", false},
	{"ATG-C", false},
	{"atgcu", false}, // RNA uracil is not DNA
	{"XYZ", false},
	{"ATGC\n", false},
	{"ATGĊ", false},
}

func ValidDNA(t *testing.T, fn PredicateFunc) {
	for _, test := range dnaTests {
		if got := fn(test.s); got != test.out {
			t.Errorf("ValidDNA(%q) = %t; want: %t", test.s, got, test.out)
		}
	}
}

type gcTest struct {
	s   string
	out float64
}

// All expected percentages here are exactly representable.
var gcTests = []gcTest{
	{"", 0},
	{"GCGC", 100},
	{"ATGC", 50},
	{"ATAT", 0},
	{"GGCC", 100},
	{"gcgc", 100},
	{"AtGc", 50},
	{"G", 100},
	{"A", 0},
	{"GGGCCCAT", 75},
	{"GATT", 25},
	// Unvalidated input only dilutes the percentage.
	{"GCXX", 50},
}

func GCContent(t *testing.T, fn RatioFunc) {
	for _, test := range gcTests {
		if got := fn(test.s); got != test.out {
			t.Errorf("GCContent(%q) = %v; want: %v", test.s, got, test.out)
		}
	}
}

type dedupTest struct {
	in, out string
}

var dedupTests = []dedupTest{
	{"", ""},
	{"a", "a"},
	{"abc", "abc"},
	{"aabbcc", "abc"},
	{"abcabc", "abc"},
	{"aaaa", "a"},
	{"banana", "ban"},
	{"mississippi", "misp"},
	{"aAbB", "aAbB"}, // case sensitive
	{"  a b ", " ab"},
}

func RemoveDuplicates(t *testing.T, fn StringFunc) {
	for _, test := range dedupTests {
		if got := fn(test.in); got != test.out {
			t.Errorf("RemoveDuplicates(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

type palindromeTest struct {
	s   string
	out bool
}

var palindromeTests = []palindromeTest{
	{"", true},
	{"a", true},
	{",.!", true}, // nothing left after stripping
	{"racecar", true},
	{"RaceCar", true},
	{"A man, a plan, a canal: Panama", true},
	{"No 'x' in Nixon", true},
	{"Was it a car or a cat I saw?", true},
	{"12321", true},
	{"1 2 3 2 1", true},
	{"hello", false},
	{"ab", false},
	{"abca", false},
	{"0P", false},
	{"almostomla", false},
}

func IsPalindrome(t *testing.T, fn PredicateFunc) {
	for _, test := range palindromeTests {
		if got := fn(test.s); got != test.out {
			t.Errorf("IsPalindrome(%q) = %t; want: %t", test.s, got, test.out)
		}
	}
}

type countTest struct {
	s   string
	c   byte
	out int
}

var countTests = []countTest{
	{"", 'a', 0},
	{"hello", 'l', 2},
	{"hello world", 'l', 3},
	{"hello world", 'z', 0},
	{"aaa", 'a', 3},
	{"Mississippi", 's', 4},
	{"Mississippi", 'S', 0}, // case sensitive
	{"a b c", ' ', 2},
}

func CountByte(t *testing.T, fn CountFunc) {
	for _, test := range countTests {
		if got := fn(test.s, test.c); got != test.out {
			t.Errorf("CountByte(%q, %q) = %d; want: %d", test.s, test.c, got, test.out)
		}
	}
}

type lcsTest struct {
	s, t, out string
}

// Expected values follow the fixed backtrack tie-break: when neither
// neighbor cell dominates, a byte of the first argument is dropped first.
var lcsTests = []lcsTest{
	{"", "", ""},
	{"", "abc", ""},
	{"abc", "", ""},
	{"abc", "abc", "abc"},
	{"abc", "def", ""},
	{"abcdef", "acf", "acf"},
	{"AGGTAB", "GXTXAYB", "GTAB"},
	{"ABCBDAB", "BDCAB", "BCAB"},
	{"ACGTACGT", "TACG", "TACG"},
}

func LCS(t *testing.T, fn PairFunc) {
	for _, test := range lcsTests {
		if got := fn(test.s, test.t); got != test.out {
			t.Errorf("LCS(%q, %q) = %q; want: %q", test.s, test.t, got, test.out)
		}
	}
	RunRandomTest(t, func(t testing.TB, rr *rand.Rand) {
		s := RandAlpha(rr, rr.Intn(24), 3)
		u := RandAlpha(rr, rr.Intn(24), 3)
		got := fn(s, u)
		if !IsSubsequence(got, s) || !IsSubsequence(got, u) {
			t.Errorf("LCS(%q, %q) = %q: not a common subsequence", s, u, got)
		}
		if want := LCSLength(s, u); len(got) != want {
			t.Errorf("LCS(%q, %q) = %q (len %d); want len %d", s, u, got, len(got), want)
		}
	})
}

// IsSubsequence reports whether sub is a subsequence of s.
func IsSubsequence(sub, s string) bool {
	i := 0
	for j := 0; i < len(sub) && j < len(s); j++ {
		if sub[i] == s[j] {
			i++
		}
	}
	return i == len(sub)
}

// LCSLength returns the length of a longest common subsequence of s and t.
func LCSLength(s, t string) int {
	prev := make([]int, len(t)+1)
	curr := make([]int, len(t)+1)
	for i := 1; i <= len(s); i++ {
		for j := 1; j <= len(t); j++ {
			switch {
			case s[i-1] == t[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(t)]
}

type distanceTest struct {
	s, t string
	out  int
}

var distanceTests = []distanceTest{
	{"", "", 0},
	{"", "abc", 3},
	{"abc", "", 3},
	{"abc", "abc", 0},
	{"a", "b", 1},
	{"ab", "ba", 2},
	{"kitten", "sitting", 3},
	{"flaw", "lawn", 2},
	{"intention", "execution", 5},
	{"saturday", "sunday", 3},
	{"gumbo", "gambol", 2},
	{"GATTACA", "GCATGCU", 4},
}

func EditDistance(t *testing.T, fn DistanceFunc) {
	for _, test := range distanceTests {
		if got := fn(test.s, test.t); got != test.out {
			t.Errorf("EditDistance(%q, %q) = %d; want: %d", test.s, test.t, got, test.out)
		}
	}
	RunRandomTest(t, func(t testing.TB, rr *rand.Rand) {
		s := RandAlpha(rr, rr.Intn(24), 4)
		u := RandAlpha(rr, rr.Intn(24), 4)
		d := fn(s, u)
		if dr := fn(u, s); dr != d {
			t.Errorf("EditDistance(%q, %q) = %d but EditDistance(%q, %q) = %d", s, u, d, u, s, dr)
		}
		lo := len(s) - len(u)
		if lo < 0 {
			lo = -lo
		}
		hi := len(s)
		if len(u) > hi {
			hi = len(u)
		}
		if d < lo || d > hi {
			t.Errorf("EditDistance(%q, %q) = %d; want value in [%d, %d]", s, u, d, lo, hi)
		}
		if (d == 0) != (s == u) {
			t.Errorf("EditDistance(%q, %q) = %d; want 0 iff equal", s, u, d)
		}
	})
}
