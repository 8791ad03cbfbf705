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

// Package kmismatch implements approximate string matching under Hamming
// distance via a combinatorial Minimum Covering Set filter: build an
// index of sampled substrings once, then probe it per query instead of
// scanning the whole text for every query.
package kmismatch

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/shenwei356/kmismatch/index"
	"github.com/shenwei356/kmismatch/mcs"
	"github.com/shenwei356/kmismatch/verify"
)

// Threads is the maximum concurrency used by NaiveSearch's parallel
// fan-out over text positions. MCSSearch does not use it: it starts one
// goroutine per query.
var Threads = runtime.NumCPU()

// Search holds a text, its candidate queries, and the lazily-built MCS
// and Index used to accelerate repeated calls to MCSSearch.
type Search struct {
	text    []byte
	queries []string
	k       int

	mu    sync.Mutex
	mcs   *mcs.MCS
	index *index.Index
}

// NewSearch builds a Search that will derive its own MCS (from queries
// and k) the first time MCSSearch needs it. Empty text or queries are
// accepted: MCSSearch and NaiveSearch return an empty Result for them
// per spec, without attempting to build an MCS or Index.
func NewSearch(text []byte, queries []string) (*Search, error) {
	return &Search{text: text, queries: queries}, nil
}

// NewSearchWithMCS builds a Search using a caller-supplied MCS, skipping
// the greedy set-cover construction.
func NewSearchWithMCS(text []byte, queries []string, m *mcs.MCS) (*Search, error) {
	if m == nil {
		return nil, ErrInvalidArgument
	}
	return &Search{text: text, queries: queries, mcs: m}, nil
}

// NewSearchWithMCSAndIndex builds a Search using both a caller-supplied
// MCS and a caller-supplied Index built from that MCS, skipping both the
// set-cover construction and the index scan.
func NewSearchWithMCSAndIndex(text []byte, queries []string, m *mcs.MCS, idx *index.Index) (*Search, error) {
	if m == nil || idx == nil {
		return nil, ErrInvalidArgument
	}
	return &Search{text: text, queries: queries, mcs: m, index: idx}, nil
}

// ensureIndex builds the MCS (from queries and k, if not already set)
// and the Index (by scanning text, if not already set), reusing either
// across repeated calls. Mutex-guarded so concurrent MCSSearch calls on
// the same Search build the index exactly once.
func (s *Search) ensureIndex(k int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mcs == nil {
		s.k = k
		m, err := mcs.Build(s.queries, k)
		if err != nil {
			return err
		}
		s.mcs = m
	}
	if s.index == nil {
		idx, err := index.Build(s.text, s.mcs)
		if err != nil {
			return err
		}
		s.index = idx
	}
	return nil
}

// Result maps each query to the set of text positions where it matches
// within the mismatch budget.
type Result map[string]map[int]struct{}

// NaiveSearch implements spec.md §4.7's oracle baseline: for every text
// position, for every query, verify directly. No index is built or
// consulted. Parallel over text positions; each goroutine accumulates a
// local result buffer, merged into the shared map under a single mutex
// per chunk.
func (s *Search) NaiveSearch(k int) (Result, error) {
	if k < 0 {
		return nil, ErrInvalidArgument
	}

	result := make(Result, len(s.queries))
	for _, q := range s.queries {
		result[q] = make(map[int]struct{})
	}

	if len(s.text) == 0 || len(s.queries) == 0 {
		return result, nil
	}

	n := len(s.text)
	chunks := Threads
	if chunks > n {
		chunks = n
	}
	if chunks < 1 {
		chunks = 1
	}
	chunkSize := n/chunks + 1

	var mu sync.Mutex
	g, _ := errgroup.WithContext(context.Background())

	for start := 0; start < n; start += chunkSize {
		start, end := start, start+chunkSize
		if end > n {
			end = n
		}
		g.Go(func() error {
			local := make(map[string][]int)
			for p := start; p < end; p++ {
				for _, q := range s.queries {
					if verify.Verify(s.text, []byte(q), p, k) {
						local[q] = append(local[q], p)
					}
				}
			}
			mu.Lock()
			for q, positions := range local {
				for _, p := range positions {
					result[q][p] = struct{}{}
				}
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// MCSSearch implements spec.md §4.7's index-accelerated path: ensure the
// MCS and Index are built, then for each query and each form-window,
// probe the index and verify each candidate position. Parallel over
// queries; each goroutine owns its query's result set entirely, so no
// merge step is needed beyond writing it into the shared map under a
// per-query assignment (guarded by a mutex local to this call, held
// only for the final assignment).
func (s *Search) MCSSearch(k int) (Result, error) {
	if k < 0 {
		return nil, ErrInvalidArgument
	}

	result := make(Result, len(s.queries))
	if len(s.text) == 0 || len(s.queries) == 0 {
		return result, nil
	}

	if err := s.ensureIndex(k); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	g, _ := errgroup.WithContext(context.Background())

	for _, q := range s.queries {
		q := q
		g.Go(func() error {
			qb := []byte(q)
			local := make(map[int]struct{})

			for _, f := range s.mcs.Forms {
				size := f.Size()
				for qp := 0; qp+size <= len(qb); qp++ {
					key, err := f.ExtractString(qb, qp)
					if err != nil {
						continue
					}
					positions, ok := s.index.Get(key)
					if !ok {
						continue
					}
					for _, p64 := range positions {
						p := int(p64)
						if p < qp {
							continue
						}
						textPos := p - qp
						if verify.Verify(s.text, qb, textPos, k) {
							local[textPos] = struct{}{}
						}
					}
				}
			}

			mu.Lock()
			result[q] = local
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
