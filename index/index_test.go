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

package index

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shenwei356/kmismatch/form"
	"github.com/shenwei356/kmismatch/mcs"
)

func TestBuildRejectsEmptyText(t *testing.T) {
	m := &mcs.MCS{Length: 3, Forms: []form.Form{}}
	_, err := Build(nil, m)
	assert.Equal(t, ErrEmptyText, err)
}

func TestBuildFindsExactMatches(t *testing.T) {
	f, err := form.New(0b111) // length 3, no gaps
	if err != nil {
		t.Fatal(err)
	}
	m := &mcs.MCS{Length: 3, Forms: []form.Form{f}}

	text := []byte("ACGACGACG")
	idx, err := Build(text, m)
	if err != nil {
		t.Fatal(err)
	}

	positions, ok := idx.Get("ACG")
	if !ok {
		t.Fatal("expected key ACG to be present")
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i] < positions[j] })
	assert.Equal(t, []uint64{0, 3, 6}, positions)
}

func TestBuildRespectsFormGaps(t *testing.T) {
	f, err := form.New(0b101) // length 3, middle gap
	if err != nil {
		t.Fatal(err)
	}
	m := &mcs.MCS{Length: 3, Forms: []form.Form{f}}

	text := []byte("AXGAYG")
	idx, err := Build(text, m)
	if err != nil {
		t.Fatal(err)
	}

	positions, ok := idx.Get("A_G")
	if !ok {
		t.Fatal("expected key A_G to be present")
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i] < positions[j] })
	assert.Equal(t, []uint64{0, 3}, positions)
}
