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

package simd

import "math/bits"

// countMismatchesWord processes 8 bytes per step: XOR the two words
// into a single uint64, then popcount the bytes that differ by treating
// each non-zero byte lane as one mismatch. This is the portable
// machine-word analogue of the spec's 32-byte AVX2 chunk compare +
// movemask + popcount: a lane-wise "any bit differs" reduction instead
// of a literal SIMD mask register. Remaining <8 bytes fall back to a
// byte-wise tail, with the same short-circuit on limit.
func countMismatchesWord(a, b []byte, limit int) int {
	n := 0
	i := 0
	for ; i+8 <= len(a); i += 8 {
		wa := le64(a[i:])
		wb := le64(b[i:])
		x := wa ^ wb
		if x != 0 {
			n += laneMismatches(x)
			if n > limit {
				return n
			}
		}
	}
	for ; i < len(a); i++ {
		if a[i] != b[i] {
			n++
			if n > limit {
				return n
			}
		}
	}
	return n
}

// laneMismatches counts how many of the 8 byte lanes of x are non-zero.
func laneMismatches(x uint64) int {
	// OR together all bits of each byte lane into its lowest bit, then
	// mask and popcount the 8 lowest bits, one per lane.
	x |= x >> 4
	x |= x >> 2
	x |= x >> 1
	x &= 0x0101010101010101
	return bits.OnesCount64(x)
}

func le64(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}
