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

package kmismatch

import "github.com/pkg/errors"

// ErrInvalidArgument covers bad caller input: a negative k, or a nil MCS
// or Index passed to a constructor that needs one.
var ErrInvalidArgument = errors.New("kmismatch: invalid argument")

// ErrIO covers failures opening, reading or writing a file.
var ErrIO = errors.New("kmismatch: I/O error")

// ErrParse covers a malformed persisted MCS or index file.
var ErrParse = errors.New("kmismatch: parse error")

// ErrInternalInvariant covers a state that the implementation's own
// invariants should have made impossible; it is never expected to
// surface in normal use.
var ErrInternalInvariant = errors.New("kmismatch: internal invariant violated")
