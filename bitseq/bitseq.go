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

// Package bitseq implements the packed binary sequence primitive shared by
// the form and combination algebra: an unsigned machine word whose bit 0
// is always set, read MSB-first: logical position i (counting from the
// left) is bit Size()-1-i of the word.
package bitseq

import (
	"errors"
	"math/bits"
	"strings"
)

// ErrZero means the underlying integer is zero, which has no bit-length
// and no LSB, so it cannot represent a sequence.
var ErrZero = errors.New("bitseq: value must be non-zero")

// ErrLSBNotSet means bit 0 of the value is not set, violating the
// "sequence begins with 1" invariant.
var ErrLSBNotSet = errors.New("bitseq: bit 0 must be set")

// Seq is a packed binary sequence: a non-zero uint64 whose bit 0 is set.
// Its size is implicit, the position of its highest set bit plus one.
type Seq uint64

// New validates and wraps v as a Seq.
func New(v uint64) (Seq, error) {
	if v == 0 {
		return 0, ErrZero
	}
	if v&1 == 0 {
		return 0, ErrLSBNotSet
	}
	return Seq(v), nil
}

// Size returns the position of the highest set bit plus one.
func (s Seq) Size() int {
	return bits.Len64(uint64(s))
}

// PopCount returns the number of 1-bits.
func (s Seq) PopCount() int {
	return bits.OnesCount64(uint64(s))
}

// Bit returns the bit at logical position i (0 = leftmost), where i
// ranges over [0, Size()). Position i of the logical sequence is bit
// Size()-1-i of the underlying integer.
func (s Seq) Bit(i int) int {
	n := s.Size()
	return int(uint64(s)>>(n-1-i)) & 1
}

// Uint64 returns the underlying integer.
func (s Seq) Uint64() uint64 {
	return uint64(s)
}

// Compare gives a strong total order over Seq values, by numeric value
// of the underlying integer: -1, 0 or 1 as s is less than, equal to, or
// greater than other.
func (s Seq) Compare(other Seq) int {
	switch {
	case s < other:
		return -1
	case s > other:
		return 1
	default:
		return 0
	}
}

// Positions calls yield once for every set-bit logical position, from
// left (0) to right (Size()-1), stopping early if yield returns false.
func (s Seq) Positions(yield func(i int) bool) {
	n := s.Size()
	for i := 0; i < n; i++ {
		if s.Bit(i) == 1 {
			if !yield(i) {
				return
			}
		}
	}
}

// String renders the sequence MSB-to-LSB as '0'/'1' ASCII, i.e. logical
// position 0 (leftmost) first.
func (s Seq) String() string {
	n := s.Size()
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		if s.Bit(i) == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Parse reconstructs a Seq from its String() form: bits MSB-first,
// '0'/'1' only. An empty string or any other byte is an error.
func Parse(s string) (Seq, error) {
	if len(s) == 0 {
		return 0, errors.New("bitseq: empty string")
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		v <<= 1
		switch s[i] {
		case '1':
			v |= 1
		case '0':
			// leave bit clear
		default:
			return 0, errors.New("bitseq: invalid character, expected '0' or '1'")
		}
	}
	return New(v)
}
