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

// Package form implements the gapped sampling mask used to build the MCS:
// a BitSeq whose lowest and highest bits are both 1, which samples a
// fixed set of offsets from a position in a text or query.
package form

import (
	"errors"
	"sync"

	"github.com/shenwei356/kmismatch/bitseq"
)

// Placeholder is the byte written for every gap (0-bit) position when
// extracting a sampled substring.
const Placeholder = '_'

// ErrTooFewOnes means a form was asked to be generated with fewer than
// two sampled (one) positions, which can never distinguish a mismatch
// pattern from its neighbours.
var ErrTooFewOnes = errors.New("form: must have at least 2 one-bits")

// ErrOutOfBounds means the form doesn't fit in the text at pos.
var ErrOutOfBounds = errors.New("form: out of bounds")

// Form is a gapped sampling mask. Its size is the bit-length; its
// matches count is the pop-count; its gap count is size minus matches.
type Form struct {
	bitseq.Seq
}

// New validates and wraps v as a Form. Because bitseq.Seq's size is
// defined as the position of the highest set bit plus one, any valid
// Seq already has both its highest and lowest bit set to 1 — the only
// Form-specific invariant left to check is a minimum of two one-bits.
func New(v uint64) (Form, error) {
	s, err := bitseq.New(v)
	if err != nil {
		return Form{}, err
	}
	if s.PopCount() < 2 {
		return Form{}, ErrTooFewOnes
	}
	return Form{s}, nil
}

// Matches returns the number of sampled (one-bit) positions.
func (f Form) Matches() int {
	return f.PopCount()
}

// Gaps returns the number of ignored (zero-bit) positions.
func (f Form) Gaps() int {
	return f.Size() - f.PopCount()
}

var extractBufPool = sync.Pool{New: func() interface{} {
	buf := make([]byte, 0, 64)
	return &buf
}}

// Extract produces the sampled substring from text starting at pos:
// byte i is text[pos+i] where logical position i is set (see
// bitseq.Seq.Bit), else Placeholder. The
// returned slice is owned by the caller (a fresh copy, safe to use as a
// map key after conversion to string).
func (f Form) Extract(text []byte, pos int) ([]byte, error) {
	n := f.Size()
	if n == 0 {
		return nil, ErrOutOfBounds
	}
	if pos < 0 || pos+n > len(text) {
		return nil, ErrOutOfBounds
	}

	bufp := extractBufPool.Get().(*[]byte)
	buf := (*bufp)[:0]
	if cap(buf) < n {
		buf = make([]byte, n)
	} else {
		buf = buf[:n]
	}
	for i := 0; i < n; i++ {
		buf[i] = Placeholder
	}
	f.Positions(func(i int) bool {
		buf[i] = text[pos+i]
		return true
	})

	out := make([]byte, n)
	copy(out, buf)

	*bufp = buf
	extractBufPool.Put(bufp)

	return out, nil
}

// ExtractString is Extract, returning a string directly (handy as a map
// key without a separate conversion at the call site).
func (f Form) ExtractString(text []byte, pos int) (string, error) {
	b, err := f.Extract(text, pos)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GenerateAll returns the Forms with exactly two one-bits, one for each
// bit-length from 2 to length: 11, 101, 1001, ..., up to a 1, length-2
// zeros and a final 1. Forms with more than two one-bits are not
// generated. mismatchK is only checked, not used for the enumeration:
// GenerateAll returns ErrTooFewOnes when length-mismatchK < 2.
//
// Enumeration is iterative bit-lexicographic recursion via an explicit
// stack frame, not a self-capturing recursive closure.
func GenerateAll(length, mismatchK int) ([]Form, error) {
	if length < 2 {
		return nil, errors.New("form: length must be >= 2")
	}
	ones := 2
	if maxOnes := length - mismatchK; maxOnes < ones {
		ones = maxOnes
	}
	if ones < 2 {
		return nil, ErrTooFewOnes
	}
	maxZeros := length - ones

	var forms []Form

	// frame mirrors the original recursive generateForms(remainOnes,
	// remainZeros, curFormInt) lambda, made an explicit stack instead of
	// a self-capturing closure.
	type frame struct {
		remainOnes, remainZeros int
		cur                     uint64
	}
	stack := []frame{{ones - 2, maxZeros, 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.remainOnes == 0 {
			f, err := New((top.cur << 1) | 1)
			if err != nil {
				return nil, err
			}
			forms = append(forms, f)
		}
		// Emitting at remainOnes == 0 does not stop the walk: a zero may
		// still extend the gap run (the original's fall-through), and a
		// one may still be placed when remainOnes > 0. Both are pushed
		// independently, mirroring the original's two separate `if`s.
		if top.remainOnes > 0 {
			stack = append(stack, frame{top.remainOnes - 1, top.remainZeros, (top.cur << 1) | 1})
		}
		if top.remainZeros > 0 {
			stack = append(stack, frame{top.remainOnes, top.remainZeros - 1, top.cur << 1})
		}
	}

	return forms, nil
}
