package stringutils

import (
	"strings"
	"testing"

	"github.com/tharu-jwd/stringutils/internal/test"
)

func TestReverse(t *testing.T) {
	test.Reverse(t, Reverse)
}

func TestReverseInvalidUTF8(t *testing.T) {
	// Invalid sequences must round-trip even though they carry no runes.
	tests := []string{
		"\xff",
		"a\xffb",
		"\xe2\x98", // truncated rune
		"ab\xe2\x98cd",
		"\xff\xfe\xfd",
	}
	for _, s := range tests {
		if got := Reverse(Reverse(s)); got != s {
			t.Errorf("Reverse(Reverse(%q)) = %q; want: %q", s, got, s)
		}
	}
}

func TestCountByte(t *testing.T) {
	test.CountByte(t, CountByte)
}

func TestCountRune(t *testing.T) {
	tests := []struct {
		s   string
		r   rune
		out int
	}{
		{"", 'a', 0},
		{"hello", 'l', 2},
		{"héllo", 'é', 1},
		{"日本語日本", '日', 2},
		{"αβδα", 'α', 2},
		{"αβδα", 'Α', 0}, // case sensitive
	}
	for _, tt := range tests {
		if got := CountRune(tt.s, tt.r); got != tt.out {
			t.Errorf("CountRune(%q, %q) = %d; want: %d", tt.s, tt.r, got, tt.out)
		}
	}
}

func TestCounts(t *testing.T) {
	got := Counts("hello")
	want := map[byte]int{'h': 1, 'e': 1, 'l': 2, 'o': 1}
	if len(got) != len(want) {
		t.Fatalf("Counts(%q) = %v; want: %v", "hello", got, want)
	}
	for c, n := range want {
		if got[c] != n {
			t.Errorf("Counts(%q)[%q] = %d; want: %d", "hello", c, got[c], n)
		}
	}
	if n := len(Counts("")); n != 0 {
		t.Errorf("Counts(\"\") has %d entries; want: 0", n)
	}
}

func TestRemoveDuplicates(t *testing.T) {
	test.RemoveDuplicates(t, RemoveDuplicates)
}

func TestIsPalindrome(t *testing.T) {
	test.IsPalindrome(t, IsPalindrome)
}

func TestIsASCII(t *testing.T) {
	tests := []struct {
		s   string
		out bool
	}{
		{"", true},
		{"abc123", true},
		{"héllo", false},
		{"\x7f", true},
		{"\x80", false},
	}
	for _, tt := range tests {
		if got := isASCII(tt.s); got != tt.out {
			t.Errorf("isASCII(%q) = %t; want: %t", tt.s, got, tt.out)
		}
	}
}

var benchSink int

func BenchmarkReverse(b *testing.B) {
	b.Run("ASCII", func(b *testing.B) {
		s := strings.Repeat("abcdefgh", 16)
		for i := 0; i < b.N; i++ {
			benchSink += len(Reverse(s))
		}
	})
	b.Run("Unicode", func(b *testing.B) {
		s := strings.Repeat("日本語ab", 16)
		for i := 0; i < b.N; i++ {
			benchSink += len(Reverse(s))
		}
	})
}

func BenchmarkCountByte(b *testing.B) {
	s := strings.Repeat("mississippi ", 32)
	if n := CountByte(s, 's'); n != 4*32 {
		b.Fatalf("CountByte = %d; want: %d", n, 4*32)
	}
	for i := 0; i < b.N; i++ {
		benchSink += CountByte(s, 's')
	}
}

func BenchmarkIsPalindrome(b *testing.B) {
	s := strings.Repeat("abc", 100) + "x" + strings.Repeat("cba", 100)
	if !IsPalindrome(s) {
		b.Fatal("IsPalindrome = false; want: true")
	}
	for i := 0; i < b.N; i++ {
		if !IsPalindrome(s) {
			b.Fatal("wrong result")
		}
	}
}
