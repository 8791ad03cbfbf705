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

// Package combination implements the fixed-length mismatch-placement
// patterns that a Minimum Covering Set must collectively contain.
package combination

import (
	"errors"

	"github.com/shenwei356/kmismatch/bitseq"
	"github.com/shenwei356/kmismatch/form"
)

// wordBits is the width of the machine word backing bitseq.Seq.
const wordBits = 64

// Combination is a BitSeq of fixed length L whose highest bit (logical
// position 0, the leftmost) is 1 and which has exactly k zero bits: one
// possible placement of k mismatches inside a window of length L
// (1 = match, 0 = mismatch). Its lowest bit may be 0.
type Combination struct {
	bitseq.Seq
}

// New wraps v as a Combination. v must be non-zero; unlike bitseq.New,
// New accepts a v whose bit 0 is clear.
func New(v uint64) (Combination, error) {
	if v == 0 {
		return Combination{}, bitseq.ErrZero
	}
	return Combination{bitseq.Seq(v)}, nil
}

// Contains reports whether f's 1-positions form a subset of c's
// 1-positions under some left-shift of f that keeps it inside c's
// window: f <<= d is tested for every 0 <= d <= L-size(f), per
// spec.md §4.3. Operationally, for each shift d, (c | ~(f<<d)) == ^0.
func (c Combination) Contains(f form.Form) bool {
	formInt := f.Uint64()
	combInt := c.Uint64()

	for {
		// MSB of the word type reached: this is the final shift to try.
		if formInt&(uint64(1)<<(wordBits-1)) != 0 {
			return combInt|^formInt == ^uint64(0)
		}
		if combInt|^formInt == ^uint64(0) {
			return true
		}
		formInt <<= 1
	}
}

// GenerateAll returns all combinations of the given length with exactly
// mismatchK zero bits (the first bit is fixed to 1): C(length-1,
// mismatchK) of them.
func GenerateAll(length, mismatchK int) ([]Combination, error) {
	if length < 1 {
		return nil, errors.New("combination: length must be >= 1")
	}
	if mismatchK < 0 || mismatchK >= length {
		return nil, errors.New("combination: mismatchK out of range")
	}
	ones := length - mismatchK
	zeros := mismatchK

	var combos []Combination

	type frame struct {
		remainOnes, remainZeros int
		cur                     uint64
	}
	stack := []frame{{ones - 1, zeros, 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.remainOnes == 0 && top.remainZeros == 0 {
			c, err := New(top.cur)
			if err != nil {
				return nil, err
			}
			combos = append(combos, c)
			continue
		}
		if top.remainZeros > 0 {
			stack = append(stack, frame{top.remainOnes, top.remainZeros - 1, top.cur << 1})
		}
		if top.remainOnes > 0 {
			stack = append(stack, frame{top.remainOnes - 1, top.remainZeros, (top.cur << 1) | 1})
		}
	}

	return combos, nil
}

// Binomial returns C(n, k). GenerateAll(length, mismatchK) returns
// Binomial(length-1, mismatchK) combinations.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}
