package stringutils_test

import (
	"fmt"

	"github.com/tharu-jwd/stringutils"
)

func ExampleReverse() {
	fmt.Println(stringutils.Reverse("hello"))
	fmt.Println(stringutils.Reverse(""))
	fmt.Println(stringutils.Reverse("日本語"))
	// Output:
	// olleh
	//
	// 語本日
}

func ExampleCountByte() {
	fmt.Println(stringutils.CountByte("hello world", 'l'))
	fmt.Println(stringutils.CountByte("hello world", 'L'))
	// Output:
	// 3
	// 0
}

func ExampleIndexAll() {
	fmt.Println(stringutils.IndexAll("abcabcabc", "abc"))
	fmt.Println(stringutils.IndexAll("aaa", "aa"))
	fmt.Println(stringutils.IndexAll("aaa", ""))
	// Output:
	// [0 3 6]
	// [0 1]
	// []
}

func ExampleValidDNA() {
	fmt.Println(stringutils.ValidDNA("ATGC"))
	fmt.Println(stringutils.ValidDNA("atgc"))
	fmt.Println(stringutils.ValidDNA("ATGCX"))
	fmt.Println(stringutils.ValidDNA(""))
	// Output:
	// true
	// true
	// false
	// true
}

func ExampleGCContent() {
	fmt.Println(stringutils.GCContent("GCGC"))
	fmt.Println(stringutils.GCContent("ATGC"))
	fmt.Println(stringutils.GCContent(""))
	// Output:
	// 100
	// 50
	// 0
}

func ExampleRemoveDuplicates() {
	fmt.Println(stringutils.RemoveDuplicates("aabbcc"))
	fmt.Println(stringutils.RemoveDuplicates("banana"))
	// Output:
	// abc
	// ban
}

func ExampleIsPalindrome() {
	fmt.Println(stringutils.IsPalindrome("A man, a plan, a canal: Panama"))
	fmt.Println(stringutils.IsPalindrome("hello"))
	// Output:
	// true
	// false
}

func ExampleLCS() {
	fmt.Println(stringutils.LCS("AGGTAB", "GXTXAYB"))
	// Output:
	// GTAB
}

func ExampleEditDistance() {
	fmt.Println(stringutils.EditDistance("kitten", "sitting"))
	fmt.Println(stringutils.EditDistance("same", "same"))
	// Output:
	// 3
	// 0
}
