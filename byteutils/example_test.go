package byteutils_test

import (
	"fmt"

	"github.com/tharu-jwd/stringutils/byteutils"
)

func ExampleIndexAll() {
	fmt.Println(byteutils.IndexAll([]byte("abcabcabc"), []byte("abc")))
	fmt.Println(byteutils.IndexAll([]byte("aaa"), []byte("aa")))
	// Output:
	// [0 3 6]
	// [0 1]
}

func ExampleReverse() {
	fmt.Printf("%s\n", byteutils.Reverse([]byte("hello")))
	// Output:
	// olleh
}

func ExampleGCContent() {
	fmt.Println(byteutils.GCContent([]byte("ATGC")))
	// Output:
	// 50
}

func ExampleLCS() {
	fmt.Printf("%s\n", byteutils.LCS([]byte("AGGTAB"), []byte("GXTXAYB")))
	// Output:
	// GTAB
}
