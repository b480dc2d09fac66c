package test

import (
	crand "crypto/rand"
	"flag"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

var exhaustive = flag.Bool("exhaustive", false, "run more random-test iterations (slow)")

// Categories sampled for random Unicode input. Control and unassigned
// code points are excluded.
var unicodeCategories = rangetable.Merge(
	unicode.Letter,
	unicode.Mark,
	unicode.Number,
	unicode.Punct,
	unicode.Space,
	unicode.Symbol,
)

var nonASCIIRunes = generateNonASCIIRunes()

func generateNonASCIIRunes() []rune {
	n := 0
	rangetable.Visit(unicodeCategories, func(rune) { n++ })
	runes := make([]rune, 0, n)
	rangetable.Visit(unicodeCategories, func(r rune) {
		if r >= utf8.RuneSelf && r != utf8.RuneError && utf8.ValidRune(r) {
			runes = append(runes, r)
		}
	})
	return runes
}

// RandASCII returns a random printable ASCII byte.
func RandASCII(rr *rand.Rand) byte {
	return byte(rr.Intn('~'-' '+1)) + ' '
}

// RandRune returns a random printable rune, ASCII half of the time.
func RandRune(rr *rand.Rand) rune {
	if rr.Float64() < 0.5 {
		return rune(RandASCII(rr))
	}
	return nonASCIIRunes[rr.Intn(len(nonASCIIRunes))]
}

// RandString returns a random valid UTF-8 string of n runes.
func RandString(rr *rand.Rand, n int) string {
	rs := make([]rune, n)
	for i := range rs {
		rs[i] = RandRune(rr)
	}
	return string(rs)
}

// RandAlpha returns a random string of n bytes drawn from the first k
// lower-case letters. Small alphabets produce repetitive inputs, which
// is what the search and DP tests want.
func RandAlpha(rr *rand.Rand, n, k int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a' + byte(rr.Intn(k))
	}
	return string(b)
}

// RandDNA returns a random mixed-case nucleotide sequence of n bytes.
func RandDNA(rr *rand.Rand, n int) string {
	const bases = "ACGTacgt"
	b := make([]byte, n)
	for i := range b {
		b[i] = bases[rr.Intn(len(bases))]
	}
	return string(b)
}

func cryptoRandInt(t testing.TB) int64 {
	bi, err := crand.Int(crand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		t.Fatal(err)
	}
	return bi.Int64()
}

// RunRandomTest runs fn repeatedly with a fixed seed, a time-based seed,
// and a crypto seed. The seed is the subtest name, so any failure can be
// replayed with -run.
func RunRandomTest(t *testing.T, fn func(t testing.TB, rr *rand.Rand)) {
	n := 2_000
	if testing.Short() {
		n = 100
	}
	if *exhaustive {
		if testing.Short() {
			t.Fatal(`cannot combine "-short" and "-exhaustive" flags`)
		}
		n = 100_000
	}
	seeds := []int64{
		1,
		time.Now().UnixNano(),
		cryptoRandInt(t),
	}
	for _, seed := range seeds {
		seed := seed
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			t.Parallel()
			rr := rand.New(rand.NewSource(seed))
			for i := 0; i < n; i++ {
				fn(t, rr)
			}
		})
	}
}
