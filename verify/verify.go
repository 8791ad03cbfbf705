// Copyright © 2023-2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package verify implements the ground-truth Hamming distance check: is
// query within k mismatches of text starting at pos.
package verify

import "github.com/shenwei356/kmismatch/verify/simd"

// Verify reports whether query is within k mismatches of text[pos:pos+len(query)].
// Out-of-bounds pos or a query that would run past the end of text is not
// an error: it simply cannot match, so Verify returns false.
func Verify(text, query []byte, pos, k int) bool {
	if pos < 0 || pos+len(query) > len(text) {
		return false
	}
	if k > len(query) {
		return false
	}
	return simd.CountMismatches(text[pos:pos+len(query)], query, k) <= k
}

// Count returns the exact number of byte-wise mismatches between query
// and text[pos:pos+len(query)], with no bound on how high it may climb.
// Returns -1 if the window is out of bounds.
func Count(text, query []byte, pos int) int {
	if pos < 0 || pos+len(query) > len(text) {
		return -1
	}
	return simd.CountMismatches(text[pos:pos+len(query)], query, len(query))
}
