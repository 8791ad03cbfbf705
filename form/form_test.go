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

package form

import "testing"

func TestNewRejectsTooFewOnes(t *testing.T) {
	if _, err := New(0b1); err != ErrTooFewOnes {
		t.Errorf("expected ErrTooFewOnes for a single 1-bit, got %v", err)
	}
}

func TestExtract(t *testing.T) {
	f, err := New(0b10011) // length 5, ones at logical positions 0, 3, 4
	if err != nil {
		t.Fatal(err)
	}
	text := []byte("ABCDEFGH")
	got, err := f.Extract(text, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := "B__EF" // text[1],_,_,text[4],text[5]
	if string(got) != want {
		t.Errorf("extract: got %q, want %q", got, want)
	}
}

func TestExtractOutOfBounds(t *testing.T) {
	f, err := New(0b10011)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Extract([]byte("AB"), 0); err != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := f.Extract([]byte("ABCDEF"), -1); err != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestExtractDeterministic(t *testing.T) {
	f, _ := New(0b10101)
	text := []byte("ACGTACGTACGT")
	a, _ := f.Extract(text, 2)
	b, _ := f.Extract(text, 2)
	if string(a) != string(b) {
		t.Errorf("extract not deterministic: %q vs %q", a, b)
	}
}

func TestGenerateAll(t *testing.T) {
	forms, err := GenerateAll(4, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(forms) == 0 {
		t.Fatal("expected at least one form")
	}
	for _, f := range forms {
		if f.Size() > 4 {
			t.Errorf("form size %d exceeds length 4", f.Size())
		}
		if f.Matches() < 2 {
			t.Errorf("form %s has fewer than 2 matches", f.String())
		}
		// bit 0 and bit Size()-1 (first and last logical positions) must be 1
		if f.Bit(0) != 1 || f.Bit(f.Size()-1) != 1 {
			t.Errorf("form %s does not begin and end with 1", f.String())
		}
	}
}

func TestGenerateAllRejectsTooFewOnes(t *testing.T) {
	// length 2, mismatchK 1 leaves only 1 match position available
	if _, err := GenerateAll(2, 1); err != ErrTooFewOnes {
		t.Errorf("expected ErrTooFewOnes, got %v", err)
	}
}
