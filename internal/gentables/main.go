// Command gentables generates the ASCII classification tables in
// internal/tables and, with -check, exhaustively cross-checks the
// Knuth-Morris-Pratt searcher against a naive reference over every
// short binary-alphabet text/pattern pair.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/slices"
	"golang.org/x/term"

	"github.com/tharu-jwd/stringutils"
)

const fileName = "tables.go"

const header = `// Code generated by gentables. DO NOT EDIT.

// Package tables holds the ASCII classification tables shared by the
// stringutils and byteutils packages.
package tables

`

type boolTable struct {
	name    string
	doc     string
	include func(byte) bool
}

var boolTables = []boolTable{
	{
		name:    "Alnum",
		doc:     "Alnum reports whether a byte is an ASCII letter or digit.",
		include: isAlnum,
	},
	{
		name: "Nucleotide",
		doc: "Nucleotide reports whether a byte is one of the nucleotide codes\n" +
			"A, C, G or T in either case.",
		include: func(c byte) bool {
			return bytes.IndexByte([]byte("ACGTacgt"), c) != -1
		},
	},
	{
		name: "GC",
		doc:  "GC is the subset of Nucleotide containing guanine and cytosine.",
		include: func(c byte) bool {
			return bytes.IndexByte([]byte("CGcg"), c) != -1
		},
	},
}

func isAlnum(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func quoteByte(c byte) string {
	switch c {
	case '\'', '\\':
		return `'\` + string(c) + `'`
	}
	if ' ' <= c && c <= '~' {
		return "'" + string(c) + "'"
	}
	return fmt.Sprintf("%d", c)
}

func writeLower(w *bytes.Buffer) {
	fmt.Fprintln(w, "// Lower maps each byte to its ASCII lower-case equivalent. Bytes outside")
	fmt.Fprintln(w, "// the range 'A'..'Z' map to themselves.")
	fmt.Fprintln(w, "var Lower = [256]byte{")
	for c := 0; c < 256; c++ {
		v := byte(c)
		if 'A' <= c && c <= 'Z' {
			v = byte(c) + 'a' - 'A'
		}
		fmt.Fprintf(w, "%s,", quoteByte(v))
		if c%16 == 15 {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
}

func writeBoolTable(w *bytes.Buffer, tab boolTable) {
	var set []int
	for c := 0; c < 256; c++ {
		if tab.include(byte(c)) {
			set = append(set, c)
		}
	}
	slices.Sort(set)
	fmt.Fprintf(w, "// %s\n", strings.ReplaceAll(tab.doc, "\n", "\n// "))
	fmt.Fprintf(w, "var %s = [256]bool{\n", tab.name)
	for _, c := range set {
		fmt.Fprintf(w, "%s: true,\n", quoteByte(byte(c)))
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
}

func generateSource() ([]byte, error) {
	var w bytes.Buffer
	w.WriteString(header)
	writeLower(&w)
	for _, tab := range boolTables {
		writeBoolTable(&w, tab)
	}
	src, err := format.Source(w.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

func generate(dir string, dryRun bool) error {
	src, err := generateSource()
	if err != nil {
		return err
	}
	if dryRun {
		_, err := os.Stdout.Write(src)
		return err
	}
	return os.WriteFile(filepath.Join(dir, fileName), src, 0o644)
}

// indexAllReference is the quadratic reference the searcher is checked
// against.
func indexAllReference(s, pattern string) []int {
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

// binaryStrings calls fn with every string over {a, b} of length 1..max.
func binaryStrings(max int, fn func(string)) {
	b := make([]byte, max)
	for n := 1; n <= max; n++ {
		for bits := 0; bits < 1<<n; bits++ {
			for i := 0; i < n; i++ {
				if bits&(1<<i) != 0 {
					b[i] = 'b'
				} else {
					b[i] = 'a'
				}
			}
			fn(string(b[:n]))
		}
	}
}

func check(maxText, maxPattern int) error {
	var patterns []string
	binaryStrings(maxPattern, func(p string) {
		patterns = append(patterns, p)
	})

	texts := int64(1)<<(maxText+1) - 2
	var bar *progressbar.ProgressBar
	if term.IsTerminal(int(os.Stdout.Fd())) {
		bar = progressbar.Default(texts)
	} else {
		bar = progressbar.DefaultSilent(texts)
	}

	var failures int
	binaryStrings(maxText, func(s string) {
		for _, p := range patterns {
			want := indexAllReference(s, p)
			if got := stringutils.IndexAll(s, p); !slices.Equal(got, want) {
				log.Printf("IndexAll(%q, %q) = %v; want: %v", s, p, got, want)
				failures++
			}
		}
		bar.Add(1)
	})
	if failures != 0 {
		return fmt.Errorf("check failed for %d text/pattern pairs", failures)
	}
	fmt.Printf("checked %d texts against %d patterns\n", texts, len(patterns))
	return nil
}

func main() {
	log.SetPrefix("gentables: ")
	log.SetFlags(log.Lshortfile)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [OPTION]...\n",
			filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	outputDir := flag.String("dir", "internal/tables",
		"write the generated table file to this directory")
	dryRun := flag.Bool("dry-run", false,
		"print the generated source to stdout instead of writing it")
	runCheck := flag.Bool("check", false,
		"exhaustively cross-check the pattern searcher before generating")
	maxText := flag.Int("check-text-len", 12,
		"maximum text length used by -check")
	maxPattern := flag.Int("check-pattern-len", 5,
		"maximum pattern length used by -check")
	flag.Parse()

	if *runCheck {
		if err := check(*maxText, *maxPattern); err != nil {
			log.Fatal(err)
		}
	}
	if err := generate(*outputDir, *dryRun); err != nil {
		log.Fatal(err)
	}
}
