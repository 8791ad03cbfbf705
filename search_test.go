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

import (
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resultPositions(r Result, q string) []int {
	var out []int
	for p := range r[q] {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

func TestMCSSearchMatchesExactOccurrences(t *testing.T) {
	text := []byte("ACGTACGTACGT")
	s, err := NewSearch(text, []string{"ACGT"})
	if err != nil {
		t.Fatal(err)
	}
	r, err := s.MCSSearch(0)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []int{0, 4, 8}, resultPositions(r, "ACGT"))
}

func TestMCSSearchHomopolymerText(t *testing.T) {
	text := []byte("AAAAA")
	s, err := NewSearch(text, []string{"AAA"})
	if err != nil {
		t.Fatal(err)
	}
	r, err := s.MCSSearch(0)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []int{0, 1, 2}, resultPositions(r, "AAA"))
}

func TestNewSearchAcceptsEmptyInputs(t *testing.T) {
	s, err := NewSearch(nil, []string{"A"})
	if err != nil {
		t.Fatalf("expected no error for empty text, got %v", err)
	}
	r, err := s.MCSSearch(0)
	if err != nil {
		t.Fatalf("expected no error searching empty text, got %v", err)
	}
	if got := resultPositions(r, "A"); len(got) != 0 {
		t.Errorf("expected no positions for empty text, got %v", got)
	}

	s, err = NewSearch([]byte("A"), nil)
	if err != nil {
		t.Fatalf("expected no error for empty queries, got %v", err)
	}
	r, err = s.MCSSearch(0)
	if err != nil {
		t.Fatalf("expected no error searching empty queries, got %v", err)
	}
	if len(r) != 0 {
		t.Errorf("expected an empty result for empty queries, got %v", r)
	}
}

func TestMCSSearchFullMismatchBudget(t *testing.T) {
	text := []byte("ACGTACGT")
	query := "TTTT"
	s, err := NewSearch(text, []string{query})
	if err != nil {
		t.Fatal(err)
	}
	r, err := s.MCSSearch(len(query))
	if err != nil {
		t.Fatal(err)
	}
	// with k == len(query) every window matches
	assert.Equal(t, len(text)-len(query)+1, len(resultPositions(r, query)))
}

func TestMCSSearchAgreesWithNaiveSearch(t *testing.T) {
	g := rand.New(rand.NewSource(42))
	alphabet := []byte("ACGT")
	randSeq := func(n int) []byte {
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[g.Intn(len(alphabet))]
		}
		return b
	}

	text := randSeq(200)
	queries := make([]string, 8)
	for i := range queries {
		queries[i] = string(randSeq(10))
	}

	for _, k := range []int{0, 1, 2} {
		s1, err := NewSearch(text, queries)
		if err != nil {
			t.Fatal(err)
		}
		mcsResult, err := s1.MCSSearch(k)
		if err != nil {
			t.Fatal(err)
		}

		s2, err := NewSearch(text, queries)
		if err != nil {
			t.Fatal(err)
		}
		naiveResult, err := s2.NaiveSearch(k)
		if err != nil {
			t.Fatal(err)
		}

		for _, q := range queries {
			assert.Equal(t, resultPositions(naiveResult, q), resultPositions(mcsResult, q), "k=%d query=%q", k, q)
		}
	}
}

func TestMCSSearchAgreesWithNaiveSearchSparseK(t *testing.T) {
	// Short queries (L=5) with k=2 admit combinations with non-adjacent
	// 1s (e.g. mismatch pattern "0101"), which exercises form coverage
	// beyond the always-adjacent case that longer queries/smaller k mask.
	g := rand.New(rand.NewSource(7))
	alphabet := []byte("ACGT")
	randSeq := func(n int) []byte {
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[g.Intn(len(alphabet))]
		}
		return b
	}

	text := randSeq(100)
	queries := make([]string, 6)
	for i := range queries {
		queries[i] = string(randSeq(5))
	}

	for _, k := range []int{2} {
		s1, err := NewSearch(text, queries)
		if err != nil {
			t.Fatal(err)
		}
		mcsResult, err := s1.MCSSearch(k)
		if err != nil {
			t.Fatal(err)
		}

		s2, err := NewSearch(text, queries)
		if err != nil {
			t.Fatal(err)
		}
		naiveResult, err := s2.NaiveSearch(k)
		if err != nil {
			t.Fatal(err)
		}

		for _, q := range queries {
			assert.Equal(t, resultPositions(naiveResult, q), resultPositions(mcsResult, q), "k=%d query=%q", k, q)
		}
	}
}

func TestMCSSearchMonotonicInK(t *testing.T) {
	text := []byte("ACGTACGTACGTACGT")
	query := "ACGTACGT"
	s, err := NewSearch(text, []string{query})
	if err != nil {
		t.Fatal(err)
	}

	prev := -1
	for k := 0; k <= len(query); k++ {
		s2, err := NewSearch(text, []string{query})
		if err != nil {
			t.Fatal(err)
		}
		r, err := s2.MCSSearch(k)
		if err != nil {
			t.Fatal(err)
		}
		n := len(resultPositions(r, query))
		if n < prev {
			t.Errorf("result count decreased from k=%d to k=%d: %d -> %d", k-1, k, prev, n)
		}
		prev = n
	}
	_ = s
}

func TestSaveLoadMCSAndIndexRoundTrip(t *testing.T) {
	text := []byte("ACGTACGTACGT")
	queries := []string{"ACGT", "CGTA"}

	s1, err := NewSearch(text, queries)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	mcsPath := filepath.Join(dir, "mcs.txt")
	idxPath := filepath.Join(dir, "index.txt")

	if err := s1.SaveMCS(mcsPath, 1); err != nil {
		t.Fatal(err)
	}
	if err := s1.SaveIndex(idxPath, 1); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(mcsPath); err != nil {
		t.Fatal(err)
	}

	s2, err := NewSearch(text, queries)
	if err != nil {
		t.Fatal(err)
	}
	if err := s2.LoadMCS(mcsPath); err != nil {
		t.Fatal(err)
	}
	if err := s2.LoadIndex(idxPath); err != nil {
		t.Fatal(err)
	}

	r1, err := s1.MCSSearch(1)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := s2.MCSSearch(1)
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range queries {
		assert.Equal(t, resultPositions(r1, q), resultPositions(r2, q))
	}
}
