package stringutils

import (
	"unicode/utf8"

	"github.com/tharu-jwd/stringutils/internal/tables"
)

func isAlnum(c byte) bool      { return tables.Alnum[c] }
func isNucleotide(c byte) bool { return tables.Nucleotide[c] }
func isGC(c byte) bool         { return tables.GC[c] }

func foldByte(c byte) byte { return tables.Lower[c] }

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
