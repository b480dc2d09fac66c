// Copyright 2026 tharu-jwd. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package stringutils implements a small set of deterministic text
// algorithms: string reversal, character counting, substring search using
// the Knuth-Morris-Pratt algorithm, DNA sequence validation, GC content,
// and a few classic helpers (duplicate removal, palindrome detection,
// longest common subsequence, and Levenshtein edit distance).
//
// Except for Reverse and CountRune, which are UTF-8 aware, all functions
// operate on bytes: offsets returned by IndexAll are byte offsets and the
// seen-set used by RemoveDuplicates is keyed by byte. The byteutils
// sub-package provides the same API for byte slices.
//
// Every function is a pure transformation of its inputs. There is no
// package-level mutable state, so concurrent use is safe.
package stringutils
