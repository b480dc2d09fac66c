package stringutils

import (
	"strings"
	"testing"

	"golang.org/x/exp/slices"

	"github.com/tharu-jwd/stringutils/internal/test"
)

func TestIndexAll(t *testing.T) {
	test.IndexAll(t, IndexAll)
}

func TestLongestPrefixSuffix(t *testing.T) {
	tests := []struct {
		pattern string
		out     []int
	}{
		{"", []int{}},
		{"a", []int{0}},
		{"aa", []int{0, 1}},
		{"aaaa", []int{0, 1, 2, 3}},
		{"ab", []int{0, 0}},
		{"abcabd", []int{0, 0, 0, 1, 2, 0}},
		{"aabaaab", []int{0, 1, 0, 1, 2, 2, 3}},
		{"abacabab", []int{0, 0, 1, 0, 1, 2, 3, 2}},
	}
	for _, tt := range tests {
		got := longestPrefixSuffix(tt.pattern)
		if len(got) != len(tt.out) {
			t.Errorf("longestPrefixSuffix(%q) = %v; want: %v", tt.pattern, got, tt.out)
			continue
		}
		for i := range got {
			if got[i] != tt.out[i] {
				t.Errorf("longestPrefixSuffix(%q) = %v; want: %v", tt.pattern, got, tt.out)
				break
			}
		}
	}
}

// Periodic patterns exercise the failure-table fallback on every match.
func TestIndexAllPeriodic(t *testing.T) {
	s := strings.Repeat("ab", 100) // len 200
	want := make([]int, 0, 99)
	for i := 0; i+4 <= len(s); i += 2 {
		want = append(want, i)
	}
	if got := IndexAll(s, "abab"); !slices.Equal(got, want) {
		t.Errorf("IndexAll(ab*100, \"abab\") = %v; want: %v", got, want)
	}

	s = strings.Repeat("a", 50)
	got := IndexAll(s, strings.Repeat("a", 10))
	if len(got) != 41 || got[0] != 0 || got[40] != 40 {
		t.Errorf("IndexAll(a*50, a*10) = %v; want 41 ascending offsets", got)
	}
}

func BenchmarkIndexAll(b *testing.B) {
	text := strings.Repeat("abcbcabcab", 1<<10)
	pattern := "abcab"
	if n := len(IndexAll(text, pattern)); n == 0 {
		b.Fatal("no matches")
	}
	b.Run("Sparse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink += len(IndexAll(text, pattern))
		}
	})
	b.Run("Torture", func(b *testing.B) {
		s := strings.Repeat("a", 1<<12)
		p := strings.Repeat("a", 64)
		for i := 0; i < b.N; i++ {
			benchSink += len(IndexAll(s, p))
		}
	})
}
