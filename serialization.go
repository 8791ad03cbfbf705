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
	"github.com/shenwei356/kmismatch/index"
	"github.com/shenwei356/kmismatch/mcs"
)

// SaveMCS persists s's MCS to path, building it first (from queries and
// k) if it hasn't been built or supplied yet.
func (s *Search) SaveMCS(path string, k int) error {
	if err := s.ensureMCSOnly(k); err != nil {
		return err
	}
	return s.mcs.SaveToFile(path)
}

// LoadMCS replaces s's MCS with the one persisted at path, discarding
// any previously built or supplied Index (it was built from the old
// MCS and is no longer valid).
func (s *Search) LoadMCS(path string) error {
	m, err := mcs.NewFromFile(path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.mcs = m
	s.index = nil
	s.mu.Unlock()
	return nil
}

// SaveIndex persists s's Index to path, building the MCS and Index
// first if either hasn't been built or supplied yet.
func (s *Search) SaveIndex(path string, k int) error {
	if err := s.ensureIndex(k); err != nil {
		return err
	}
	return s.index.SaveToFile(path)
}

// LoadIndex replaces s's Index with the one persisted at path. The
// caller is responsible for ensuring the loaded index was built from
// s's current MCS; no cross-check is performed.
func (s *Search) LoadIndex(path string) error {
	idx, err := index.NewFromFile(path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.index = idx
	s.mu.Unlock()
	return nil
}

// ensureMCSOnly builds s's MCS if not already present, without
// triggering an Index scan.
func (s *Search) ensureMCSOnly(k int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mcs != nil {
		return nil
	}
	s.k = k
	m, err := mcs.Build(s.queries, k)
	if err != nil {
		return err
	}
	s.mcs = m
	return nil
}
