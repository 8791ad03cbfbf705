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

// Package index builds and persists the sampled-substring position index:
// a map from a Form-extracted substring (carrying '_' placeholders at gap
// positions) to every text position it was sampled from.
package index

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"

	"github.com/shenwei356/kmismatch/mcs"
)

// ErrEmptyText means Build was given a zero-length text to scan.
var ErrEmptyText = errors.New("index: text must be non-empty")

// Index maps a sampled substring to every starting position it was
// extracted from, for every Form in the MCS that built it.
type Index struct {
	buckets map[string][]uint64
}

// Threads is the maximum concurrency used by Build's position scan.
var Threads = runtime.NumCPU()

// New creates an empty Index.
func New() *Index {
	return &Index{buckets: make(map[string][]uint64)}
}

// Get returns the positions recorded for key, and whether the key was
// present.
func (idx *Index) Get(key string) ([]uint64, bool) {
	p, ok := idx.buckets[key]
	return p, ok
}

// Len returns the number of distinct keys.
func (idx *Index) Len() int {
	return len(idx.buckets)
}

// insert records pos under key, appending to any existing bucket.
func (idx *Index) insert(key string, pos uint64) {
	idx.buckets[key] = append(idx.buckets[key], pos)
}

// Build scans every starting position of text, extracting the sampled
// substring for every Form in m whose window fits, and records the
// position under that substring (spec.md §4.5). The outer loop over
// positions runs in parallel chunks; each goroutine accumulates into a
// thread-local bucket map, merged into the shared index under a single
// mutex per goroutine (not per position), matching the "local buffer +
// single merge" pattern used throughout this package's ancestor.
func Build(text []byte, m *mcs.MCS) (*Index, error) {
	if len(text) == 0 {
		return nil, ErrEmptyText
	}

	idx := New()
	n := len(text)

	chunks := Threads
	if chunks > n {
		chunks = n
	}
	if chunks < 1 {
		chunks = 1
	}
	chunkSize := n/chunks + 1

	var mu sync.Mutex
	var wg sync.WaitGroup
	tokens := make(chan struct{}, chunks)

	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		tokens <- struct{}{}
		go func(start, end int) {
			defer wg.Done()
			defer func() { <-tokens }()

			local := make(map[string][]uint64)
			for p := start; p < end; p++ {
				for _, f := range m.Forms {
					if p+f.Size() > n {
						continue
					}
					key, err := f.ExtractString(text, p)
					if err != nil {
						continue
					}
					local[key] = append(local[key], uint64(p))
				}
			}

			mu.Lock()
			for key, positions := range local {
				idx.buckets[key] = append(idx.buckets[key], positions...)
			}
			mu.Unlock()
		}(start, end)
	}
	wg.Wait()

	return idx, nil
}
