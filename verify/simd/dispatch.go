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

// Package simd provides the accelerated mismatch-counting path used by
// the verifier: an 8-byte word-at-a-time XOR + popcount, the portable
// analogue of the 32-byte AVX2 chunk compare, gated by a runtime
// capability probe cached once at process start.
package simd

type mismatchImpl struct {
	function  func(a, b []byte, limit int) int
	name      string
	available bool
}

// CountMismatches returns the number of differing bytes between a and b
// (which must be the same length), short-circuiting and returning a
// value > limit as soon as the running count exceeds limit. The fastest
// available implementation is selected once at package init and cached.
var CountMismatches = func() func(a, b []byte, limit int) int {
	for _, f := range mismatchFuncs {
		if f.available {
			return f.function
		}
	}
	panic("no implementation available")
}()

// fastPathName names the selected implementation, for diagnostics.
var fastPathName = func() string {
	for _, f := range mismatchFuncs {
		if f.available {
			return f.name
		}
	}
	return "none"
}()

// HasFastPath reports whether a non-generic (word-wise) implementation
// was selected.
func HasFastPath() bool {
	return fastPathName != "generic"
}
