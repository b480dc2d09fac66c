package tables

import (
	"strings"
	"testing"
)

func TestLower(t *testing.T) {
	for c := 0; c < 256; c++ {
		want := byte(c)
		if 'A' <= c && c <= 'Z' {
			want = byte(c) + 'a' - 'A'
		}
		if Lower[c] != want {
			t.Errorf("Lower[%q] = %q; want: %q", byte(c), Lower[c], want)
		}
	}
}

func TestAlnum(t *testing.T) {
	for c := 0; c < 256; c++ {
		want := '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
		if Alnum[c] != want {
			t.Errorf("Alnum[%q] = %t; want: %t", byte(c), Alnum[c], want)
		}
	}
}

func TestNucleotide(t *testing.T) {
	for c := 0; c < 256; c++ {
		want := strings.IndexByte("ACGTacgt", byte(c)) != -1
		if Nucleotide[c] != want {
			t.Errorf("Nucleotide[%q] = %t; want: %t", byte(c), Nucleotide[c], want)
		}
		if GC[c] && !Nucleotide[c] {
			t.Errorf("GC[%q] is set but Nucleotide[%q] is not", byte(c), byte(c))
		}
	}
}

func TestGC(t *testing.T) {
	for c := 0; c < 256; c++ {
		want := strings.IndexByte("CGcg", byte(c)) != -1
		if GC[c] != want {
			t.Errorf("GC[%q] = %t; want: %t", byte(c), GC[c], want)
		}
	}
}
