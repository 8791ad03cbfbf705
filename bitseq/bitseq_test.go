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

package bitseq

import "testing"

func TestNew(t *testing.T) {
	if _, err := New(0); err != ErrZero {
		t.Errorf("expected ErrZero, got %v", err)
	}
	if _, err := New(0b10); err != ErrLSBNotSet {
		t.Errorf("expected ErrLSBNotSet, got %v", err)
	}
	s, err := New(0b10011)
	if err != nil {
		t.Fatal(err)
	}
	if s.Size() != 5 {
		t.Errorf("size: got %d, want 5", s.Size())
	}
	if s.PopCount() != 3 {
		t.Errorf("popcount: got %d, want 3", s.PopCount())
	}
}

func TestBitPositions(t *testing.T) {
	// 0b10011, length 5, ones at logical positions 0, 3, 4 (from the left)
	s, err := New(0b10011)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 0, 0, 1, 1}
	for i, w := range want {
		if got := s.Bit(i); got != w {
			t.Errorf("bit(%d): got %d, want %d", i, got, w)
		}
	}

	var ones []int
	s.Positions(func(i int) bool {
		ones = append(ones, i)
		return true
	})
	if len(ones) != 3 || ones[0] != 0 || ones[1] != 3 || ones[2] != 4 {
		t.Errorf("positions: got %v, want [0 3 4]", ones)
	}
}

func TestString(t *testing.T) {
	s, err := New(0b10011)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.String(); got != "10011" {
		t.Errorf("string: got %q, want %q", got, "10011")
	}
}

func TestParseRoundTrip(t *testing.T) {
	cases := []string{"1", "101", "10011", "11111"}
	for _, c := range cases {
		s, err := Parse(c)
		if err != nil {
			t.Fatalf("parse(%q): %v", c, err)
		}
		if got := s.String(); got != c {
			t.Errorf("round trip: got %q, want %q", got, c)
		}
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Error("expected error on empty string")
	}
	if _, err := Parse("102"); err == nil {
		t.Error("expected error on non-binary character")
	}
	if _, err := Parse("10"); err == nil {
		t.Error("expected error on LSB not set")
	}
}

func TestCompare(t *testing.T) {
	a, _ := New(0b101)
	b, _ := New(0b1001)
	if a.Compare(b) >= 0 {
		t.Errorf("expected a < b")
	}
	if b.Compare(a) <= 0 {
		t.Errorf("expected b > a")
	}
	if a.Compare(a) != 0 {
		t.Errorf("expected a == a")
	}
}
