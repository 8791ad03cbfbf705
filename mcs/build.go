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

// Package mcs builds and persists a Minimum Covering Set: an ordered list
// of sampling Forms that collectively contain every mismatch-placement
// Combination for a given window length and mismatch budget.
package mcs

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"

	"github.com/shenwei356/kmismatch/combination"
	"github.com/shenwei356/kmismatch/form"
)

// ErrEmptyQueries means Build was called with no queries to size the MCS from.
var ErrEmptyQueries = errors.New("mcs: queries must be non-empty")

// ErrMismatchBudgetTooLarge means k exceeds the longest query length.
var ErrMismatchBudgetTooLarge = errors.New("mcs: mismatch budget exceeds query length")

// MCS is an ordered list of Forms: a greedy cover of every length-L,
// k-zero Combination, where L is the longest query length Build saw.
type MCS struct {
	Length int
	K      int
	Forms  []form.Form
}

// Threads is the maximum concurrency used by Build's per-form counting
// step. index.Build has its own index.Threads.
var Threads = runtime.NumCPU()

// Build implements the greedy set-cover of spec.md §4.4: enumerate every
// combination of length L (the longest query) with exactly k zeros and
// every candidate form, then repeatedly pick the form covering the most
// remaining combinations (ties broken toward the smaller underlying
// integer) until no combination remains uncovered.
func Build(queries []string, k int) (*MCS, error) {
	if len(queries) == 0 {
		return nil, ErrEmptyQueries
	}
	length := 0
	for _, q := range queries {
		if len(q) > length {
			length = len(q)
		}
	}
	if k > length {
		return nil, ErrMismatchBudgetTooLarge
	}

	combos, err := combination.GenerateAll(length, k)
	if err != nil {
		return nil, errors.Wrap(err, "mcs: generating combinations")
	}
	forms, err := form.GenerateAll(length, k)
	if err != nil {
		return nil, errors.Wrap(err, "mcs: generating forms")
	}

	remainingCombos := combos
	remainingForms := forms
	var cover []form.Form

	for len(remainingCombos) > 0 && len(remainingForms) > 0 {
		bestIdx, bestCount := pickBestForm(remainingForms, remainingCombos)
		if bestCount == 0 {
			// No remaining form contains any remaining combination: the
			// cover cannot proceed further.
			break
		}
		best := remainingForms[bestIdx]
		cover = append(cover, best)

		remainingForms = append(remainingForms[:bestIdx], remainingForms[bestIdx+1:]...)
		remainingCombos = removeContained(remainingCombos, best)
	}

	return &MCS{Length: length, K: k, Forms: cover}, nil
}

// pickBestForm counts, for every form, how many combos it contains, in
// parallel chunks of forms (per spec.md §4.4 step 5a / §5), then reduces
// to the max count with a deterministic tie-break on the smaller
// underlying integer.
func pickBestForm(forms []form.Form, combos []combination.Combination) (idx int, count int) {
	n := len(forms)
	counts := make([]int, n)

	chunks := Threads
	if chunks > n {
		chunks = n
	}
	if chunks < 1 {
		chunks = 1
	}
	chunkSize := n/chunks + 1

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
			for i := start; i < end; i++ {
				c := 0
				for _, cb := range combos {
					if cb.Contains(forms[i]) {
						c++
					}
				}
				counts[i] = c
			}
		}(start, end)
	}
	wg.Wait()

	bestIdx, bestCount := 0, -1
	for i, c := range counts {
		if c > bestCount {
			bestIdx, bestCount = i, c
			continue
		}
		if c == bestCount && forms[i].Uint64() < forms[bestIdx].Uint64() {
			bestIdx = i
		}
	}
	return bestIdx, bestCount
}

// removeContained filters out every combination contained by f, leaving
// the order of survivors unchanged.
func removeContained(combos []combination.Combination, f form.Form) []combination.Combination {
	out := combos[:0]
	for _, c := range combos {
		if !c.Contains(f) {
			out = append(out, c)
		}
	}
	return out
}
